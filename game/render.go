package game

import (
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// Render draws the board with coloured stones and a column ruler below it.
// Colours are dropped automatically when the writer is not a terminal.
func Render(w io.Writer, b *Board) error {
	out := termenv.NewOutput(w)
	stoneA := out.String("A").Foreground(out.Color("1")).Bold()
	stoneB := out.String("B").Foreground(out.Color("4")).Bold()
	empty := out.String(".").Faint()

	var sb strings.Builder
	for row := Height - 1; row >= 0; row-- {
		for column := 0; column < Width; column++ {
			if column > 0 {
				sb.WriteByte(' ')
			}
			switch b[Index(column, row)] {
			case StoneA:
				sb.WriteString(stoneA.String())
			case StoneB:
				sb.WriteString(stoneB.String())
			default:
				sb.WriteString(empty.String())
			}
		}
		sb.WriteByte('\n')
	}
	for column := 0; column < Width; column++ {
		if column > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(column))
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

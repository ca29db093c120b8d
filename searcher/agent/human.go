package agent

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
)

type humanAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHumanAgent returns an agent that asks for a column on out and reads it from in.
func NewHumanAgent(in io.Reader, out io.Writer) Agent {
	return &humanAgent{in: bufio.NewScanner(in), out: out}
}

func (a *humanAgent) FindMove(board game.Board, player game.Player) (game.Move, metrics.SearchMetric, error) {
	if len(board.LegalMoves()) == 0 {
		return game.NoMove, metrics.SearchMetric{}, searcher.ErrNoMove
	}

	for {
		if err := game.Render(a.out, &board); err != nil {
			return game.NoMove, metrics.SearchMetric{}, err
		}
		fmt.Fprintf(a.out, "where to put the next %s? (0-%d): ", player, game.Width-1)

		if !a.in.Scan() {
			err := a.in.Err()
			if err == nil {
				err = io.ErrUnexpectedEOF
			}
			return game.NoMove, metrics.SearchMetric{}, fmt.Errorf("reading column: %w", err)
		}

		column, err := strconv.Atoi(strings.TrimSpace(a.in.Text()))
		if err != nil {
			fmt.Fprintln(a.out, "Invalid input.")
			continue
		}
		move, err := board.Drop(column)
		switch {
		case errors.Is(err, game.ErrColumnFull):
			fmt.Fprintln(a.out, "Column is full already.")
			continue
		case err != nil:
			fmt.Fprintln(a.out, "Invalid input.")
			continue
		}
		return move, metrics.SearchMetric{}, nil
	}
}

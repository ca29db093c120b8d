package game

import (
	"fmt"
	"strings"
	"unicode"
)

// Byte sentinels of the compact wire encoding.
const (
	ByteA     byte = 0
	ByteB     byte = 1
	ByteEmpty byte = 2
)

// Encode packs the board into one byte per cell, in index order.
func Encode(b *Board) []byte {
	out := make([]byte, Cells)
	for i, c := range b {
		switch c {
		case StoneA:
			out[i] = ByteA
		case StoneB:
			out[i] = ByteB
		default:
			out[i] = ByteEmpty
		}
	}
	return out
}

// Decode is the inverse of Encode.
func Decode(data []byte) (*Board, error) {
	if len(data) != Cells {
		return nil, fmt.Errorf("%w: got %d", ErrBoardSize, len(data))
	}
	b := NewBoard()
	for i, v := range data {
		switch v {
		case ByteA:
			b[i] = StoneA
		case ByteB:
			b[i] = StoneB
		case ByteEmpty:
			b[i] = Empty
		default:
			return nil, fmt.Errorf("%w: byte %d at %d", ErrInvalidCell, v, i)
		}
	}
	return b, nil
}

// EncodeString writes one character per cell in index order ('A', 'B' or '.').
func EncodeString(b *Board) string {
	var sb strings.Builder
	sb.Grow(Cells)
	for _, c := range b {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// DecodeString is the inverse of EncodeString.
func DecodeString(s string) (*Board, error) {
	if len(s) != Cells {
		return nil, fmt.Errorf("%w: got %d", ErrBoardSize, len(s))
	}
	b := NewBoard()
	for i := 0; i < len(s); i++ {
		c, err := parseCell(rune(s[i]))
		if err != nil {
			return nil, fmt.Errorf("at %d: %w", i, err)
		}
		b[i] = c
	}
	return b, nil
}

// Parse reads a board drawn top row first, as printed by String.
// Whitespace is ignored, so rows may be indented or split over lines.
func Parse(s string) (*Board, error) {
	var cells []Cell
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		c, err := parseCell(r)
		if err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
	if len(cells) != Cells {
		return nil, fmt.Errorf("%w: got %d", ErrBoardSize, len(cells))
	}

	b := NewBoard()
	for k, c := range cells {
		row := Height - 1 - k/Width
		b[Index(k%Width, row)] = c
	}
	return b, nil
}

// MustParse is Parse for fixtures known to be valid.
func MustParse(s string) *Board {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

func parseCell(r rune) (Cell, error) {
	switch r {
	case 'A', 'X':
		return StoneA, nil
	case 'B', 'O':
		return StoneB, nil
	case '.', '_':
		return Empty, nil
	}
	return Empty, fmt.Errorf("%w: %q", ErrInvalidCell, r)
}

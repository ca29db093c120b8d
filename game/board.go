package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPlayer = errors.New("invalid player")
	ErrInvalidCell   = errors.New("invalid cell value")
	ErrBoardSize     = errors.New("board must have 42 cells")
	ErrFloatingStone = errors.New("stone above an empty cell")
	ErrColumnFull    = errors.New("column is full")
	ErrColumnRange   = errors.New("column out of range")
)

// Board is a flat 7x6 grid, addressed by Index(column, row) with row 0 at the bottom.
//
//	35 36 37 38 39 40 41
//	28 29 30 31 32 33 34
//	21 22 23 24 25 26 27
//	14 15 16 17 18 19 20
//	 7  8  9 10 11 12 13
//	 0  1  2  3  4  5  6
type Board [Cells]Cell

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Place puts the player's stone on the move's cell. Gravity is not checked.
func (b *Board) Place(m Move, p Player) {
	b[m] = p.Stone()
}

// Undo empties the move's cell.
func (b *Board) Undo(m Move) {
	b[m] = Empty
}

// Drop returns the lowest empty cell of the column.
func (b *Board) Drop(column int) (Move, error) {
	if column < 0 || column >= Width {
		return NoMove, fmt.Errorf("%w: %d", ErrColumnRange, column)
	}
	for row := 0; row < Height; row++ {
		if i := Index(column, row); b[i] == Empty {
			return Move(i), nil
		}
	}
	return NoMove, fmt.Errorf("%w: %d", ErrColumnFull, column)
}

// LegalMoves returns the lowest empty cell of every column that is not full,
// columns scanned left to right. The order decides ties during search.
func (b *Board) LegalMoves() []Move {
	moves := make([]Move, 0, Width)
	for column := 0; column < Width; column++ {
		for row := 0; row < Height; row++ {
			if i := Index(column, row); b[i] == Empty {
				moves = append(moves, Move(i))
				break
			}
		}
	}
	return moves
}

// IsFull reports whether no cell is empty.
func (b *Board) IsFull() bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

// Count returns the number of stones the player has on the board.
func (b *Board) Count(p Player) int {
	n := 0
	for _, c := range b {
		if c == p.Stone() {
			n++
		}
	}
	return n
}

// Turn infers the player to move, assuming PlayerA moved first.
func (b *Board) Turn() Player {
	if b.Count(PlayerA) > b.Count(PlayerB) {
		return PlayerB
	}
	return PlayerA
}

// Validate checks cell values and the gravity invariant. The search never calls it.
func (b *Board) Validate() error {
	for i, c := range b {
		if c != Empty && c != StoneA && c != StoneB {
			return fmt.Errorf("%w: %d at %d", ErrInvalidCell, c, i)
		}
	}
	for column := 0; column < Width; column++ {
		for row := 1; row < Height; row++ {
			if b[Index(column, row)] != Empty && b[Index(column, row-1)] == Empty {
				return fmt.Errorf("%w: column %d row %d", ErrFloatingStone, column, row)
			}
		}
	}
	return nil
}

// String prints the board top row first, the way it is seen when playing.
func (b *Board) String() string {
	var sb strings.Builder
	for row := Height - 1; row >= 0; row-- {
		for column := 0; column < Width; column++ {
			sb.WriteString(b[Index(column, row)].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

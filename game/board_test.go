package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegalMoves(t *testing.T) {
	t.Run("empty board yields the bottom row left to right", func(t *testing.T) {
		b := NewBoard()
		require.Equal(t, []Move{0, 1, 2, 3, 4, 5, 6}, b.LegalMoves(), "expected the bottom row")
	})

	t.Run("moves sit on top of the stack of each column", func(t *testing.T) {
		b := MustParse(`
			.......
			.......
			.......
			.......
			A......
			B.A....`)
		moves := b.LegalMoves()
		require.Equal(t, Move(Index(0, 2)), moves[0], "expected column 0 to be played on row 2")
		require.Equal(t, Move(Index(2, 1)), moves[2], "expected column 2 to be played on row 1")
	})

	t.Run("full column contributes nothing", func(t *testing.T) {
		b := MustParse(`
			...A...
			...B...
			...A...
			...B...
			...A...
			...B...`)
		moves := b.LegalMoves()
		require.Len(t, moves, Width-1, "expected one move per open column")
		for _, m := range moves {
			require.NotEqual(t, 3, m.Column(), "expected no move in the full column")
		}
	})

	t.Run("full board has no moves", func(t *testing.T) {
		b := MustParse(`
			ABABABA
			ABABABA
			BABABAB
			BABABAB
			ABABABA
			ABABABA`)
		require.Empty(t, b.LegalMoves(), "expected no legal moves")
		require.True(t, b.IsFull(), "expected a full board")
	})
}

func TestDrop(t *testing.T) {
	b := MustParse(`
		..A....
		..B....
		..A....
		..B....
		..A....
		..B....`)

	move, err := b.Drop(1)
	require.NoError(t, err)
	require.Equal(t, Move(1), move, "expected the bottom cell of column 1")
	require.Equal(t, Empty, b[move], "expected Drop to leave the board untouched")

	_, err = b.Drop(2)
	require.ErrorIs(t, err, ErrColumnFull)

	_, err = b.Drop(-1)
	require.ErrorIs(t, err, ErrColumnRange)
	_, err = b.Drop(Width)
	require.ErrorIs(t, err, ErrColumnRange)
}

func TestPlaceUndo(t *testing.T) {
	b := NewBoard()
	before := *b

	move := b.LegalMoves()[3]
	b.Place(move, PlayerB)
	require.Equal(t, StoneB, b[move])
	require.Equal(t, 1, b.Count(PlayerB))
	require.Equal(t, PlayerA, b.Turn(), "expected an extra B stone to leave A to move")

	b.Undo(move)
	require.Equal(t, before, *b, "expected the board to be restored")
}

func TestTurn(t *testing.T) {
	b := NewBoard()
	require.Equal(t, PlayerA, b.Turn())
	b.Place(0, PlayerA)
	require.Equal(t, PlayerB, b.Turn())
	b.Place(1, PlayerB)
	require.Equal(t, PlayerA, b.Turn())
}

func TestValidate(t *testing.T) {
	t.Run("valid board", func(t *testing.T) {
		require.NoError(t, MustParse(`
			.......
			.......
			.......
			...A...
			...B...
			.AAB.B.`).Validate())
	})

	t.Run("floating stone", func(t *testing.T) {
		b := NewBoard()
		b[Index(4, 2)] = StoneA
		require.ErrorIs(t, b.Validate(), ErrFloatingStone)
	})

	t.Run("unknown cell value", func(t *testing.T) {
		b := NewBoard()
		b[0] = Cell(7)
		require.ErrorIs(t, b.Validate(), ErrInvalidCell)
	})
}

func TestPlayer(t *testing.T) {
	require.Equal(t, PlayerB, PlayerA.Opponent())
	require.Equal(t, PlayerA, PlayerB.Opponent())
	require.Equal(t, "A", PlayerA.String())
	require.Equal(t, "B", PlayerB.String())

	p, err := ParsePlayer("b")
	require.NoError(t, err)
	require.Equal(t, PlayerB, p)
	_, err = ParsePlayer("C")
	require.ErrorIs(t, err, ErrInvalidPlayer)
}

func TestMoveCoordinates(t *testing.T) {
	m := Move(Index(5, 3))
	require.Equal(t, 5, m.Column())
	require.Equal(t, 3, m.Row())
}

package game

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var fixture = `
	.......
	.......
	.......
	...A...
	..BB...
	.AAB.B.`

func TestEncode(t *testing.T) {
	b := MustParse(fixture)

	t.Run("bytes use the bridge sentinels", func(t *testing.T) {
		data := Encode(b)
		require.Len(t, data, Cells)
		require.Equal(t, ByteEmpty, data[0])
		require.Equal(t, ByteA, data[1])
		require.Equal(t, ByteB, data[3])

		decoded, err := Decode(data)
		require.NoError(t, err)
		require.Equal(t, *b, *decoded, "expected a lossless round trip")
	})

	t.Run("string is in index order", func(t *testing.T) {
		s := EncodeString(b)
		require.Equal(t, ".AAB.B.", s[:Width], "expected the bottom row first")

		decoded, err := DecodeString(s)
		require.NoError(t, err)
		require.Equal(t, *b, *decoded, "expected a lossless round trip")
	})
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode(make([]byte, Cells-1))
	require.ErrorIs(t, err, ErrBoardSize)

	data := Encode(NewBoard())
	data[5] = 3
	_, err = Decode(data)
	require.ErrorIs(t, err, ErrInvalidCell)

	_, err = DecodeString(strings.Repeat(".", Cells+1))
	require.ErrorIs(t, err, ErrBoardSize)
	_, err = DecodeString(strings.Repeat(".", Cells-1) + "Z")
	require.ErrorIs(t, err, ErrInvalidCell)
}

func TestParse(t *testing.T) {
	t.Run("accepts X and O", func(t *testing.T) {
		b, err := Parse(strings.Repeat("_", Cells-Width) + "XO_____")
		require.NoError(t, err)
		require.Equal(t, StoneA, b[0])
		require.Equal(t, StoneB, b[1])
	})

	t.Run("round trips through String", func(t *testing.T) {
		b := MustParse(fixture)
		again, err := Parse(b.String())
		require.NoError(t, err)
		require.Equal(t, *b, *again)
	})

	t.Run("wrong size", func(t *testing.T) {
		_, err := Parse("AB")
		require.ErrorIs(t, err, ErrBoardSize)
	})

	t.Run("MustParse panics", func(t *testing.T) {
		require.Panics(t, func() { MustParse("?") })
	})
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, MustParse(fixture)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, Height+1, "expected one line per row and the ruler")
	require.Equal(t, ". A A B . B .", lines[Height-1], "expected the bottom row above the ruler")
	require.Equal(t, "0 1 2 3 4 5 6", lines[Height], "expected the column ruler")
}

package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsWinning(t *testing.T) {
	tests := []struct {
		name  string
		board string
		a, b  bool
	}{
		{"empty", `
			.......
			.......
			.......
			.......
			.......
			.......`, false, false},
		{"horizontal", `
			.......
			.......
			.......
			.......
			BBB....
			...AAAA`, true, false},
		{"vertical", `
			.......
			.......
			B......
			B.....A
			B.....A
			B.A...A`, false, true},
		{"rising diagonal", `
			.......
			.......
			...A...
			..AB...
			.ABB...
			ABBA...`, true, false},
		{"falling diagonal", `
			.......
			.......
			B......
			AB.....
			AAB....
			AABB...`, false, true},
		{"three is not enough", `
			.......
			.......
			.......
			A......
			A......
			A.BBB..`, false, false},
		{"line across the edge does not wrap", `
			.......
			.......
			.......
			.......
			.......
			AA...AA`, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := MustParse(tt.board)
			require.Equal(t, tt.a, IsWinning(b, PlayerA), "unexpected result for A")
			require.Equal(t, tt.b, IsWinning(b, PlayerB), "unexpected result for B")

			a, bWins := Winners(b)
			require.Equal(t, tt.a, a, "expected Winners to agree with IsWinning for A")
			require.Equal(t, tt.b, bWins, "expected Winners to agree with IsWinning for B")
		})
	}
}

func TestWindowCount(t *testing.T) {
	// 24 horizontal, 21 vertical, 12 per diagonal.
	require.Len(t, lines, 69)
}

func TestResult(t *testing.T) {
	t.Run("in progress", func(t *testing.T) {
		status, _ := Result(NewBoard())
		require.Equal(t, InProgress, status)
	})

	t.Run("won", func(t *testing.T) {
		status, winner := Result(MustParse(`
			.......
			.......
			.......
			.......
			AAA....
			BBBB...`))
		require.Equal(t, Won, status)
		require.Equal(t, PlayerB, winner)
	})

	t.Run("draw", func(t *testing.T) {
		status, _ := Result(MustParse(`
			ABABABA
			ABABABA
			BABABAB
			BABABAB
			ABABABA
			ABABABA`))
		require.Equal(t, Draw, status)
	})
}

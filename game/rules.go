package game

// Direction steps for the four line orientations: horizontal, vertical and both diagonals.
var directions = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// lines holds the cell indexes of every four-in-a-row window on the board.
var lines = buildLines()

func buildLines() [][4]int {
	var all [][4]int
	for _, d := range directions {
		for column := 0; column < Width; column++ {
			for row := 0; row < Height; row++ {
				endColumn, endRow := column+3*d[0], row+3*d[1]
				if endColumn < 0 || endColumn >= Width || endRow < 0 || endRow >= Height {
					continue
				}
				var line [4]int
				for k := range line {
					line[k] = Index(column+k*d[0], row+k*d[1])
				}
				all = append(all, line)
			}
		}
	}
	return all
}

// IsWinning reports whether the player has four in a row anywhere on the board.
func IsWinning(b *Board, p Player) bool {
	stone := p.Stone()
	for _, l := range lines {
		if b[l[0]] == stone && b[l[1]] == stone && b[l[2]] == stone && b[l[3]] == stone {
			return true
		}
	}
	return false
}

// Winners checks both players in a single pass.
func Winners(b *Board) (a, bWins bool) {
	for _, l := range lines {
		first := b[l[0]]
		if first == Empty || b[l[1]] != first || b[l[2]] != first || b[l[3]] != first {
			continue
		}
		if first == StoneA {
			a = true
		} else {
			bWins = true
		}
		if a && bWins {
			break
		}
	}
	return a, bWins
}

// Result evaluates the board. The winner is only meaningful when status is Won.
// A board where both players have a line is reported as won by PlayerA.
func Result(b *Board) (Status, Player) {
	a, bWins := Winners(b)
	switch {
	case a:
		return Won, PlayerA
	case bWins:
		return Won, PlayerB
	case b.IsFull():
		return Draw, 0
	}
	return InProgress, 0
}

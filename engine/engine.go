package engine

import (
	"errors"

	"connect4/experiments/metrics"
	"connect4/game"
)

// MaxMoves bounds a game: every move fills one cell.
const MaxMoves = game.Cells

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
)

type Result struct {
	Status game.Status
	Winner game.Player // 0 unless Status is game.Won
	Game   metrics.GameMetric
	Moves  []metrics.MoveMetric
}

package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
)

type Agent interface {
	// FindMove returns the move to play and, for searching agents, the metrics of the search.
	// The board is a copy, agents are free to modify it.
	FindMove(board game.Board, player game.Player) (game.Move, metrics.SearchMetric, error)
}

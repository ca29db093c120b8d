package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
)

type greedyAgent struct{}

// NewGreedyAgent returns an agent that looks a single ply ahead: it takes an
// immediate win, otherwise blocks an immediate loss, otherwise plays the
// leftmost legal move.
func NewGreedyAgent() Agent {
	return greedyAgent{}
}

func (greedyAgent) FindMove(board game.Board, player game.Player) (game.Move, metrics.SearchMetric, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, metrics.SearchMetric{}, searcher.ErrNoMove
	}

	if move, ok := completesLine(&board, moves, player); ok {
		return move, metrics.SearchMetric{}, nil
	}
	if move, ok := completesLine(&board, moves, player.Opponent()); ok {
		return move, metrics.SearchMetric{}, nil
	}
	return moves[0], metrics.SearchMetric{}, nil
}

// completesLine finds the first move that gives the player four in a row.
func completesLine(board *game.Board, moves []game.Move, player game.Player) (game.Move, bool) {
	for _, move := range moves {
		board.Place(move, player)
		won := game.IsWinning(board, player)
		board.Undo(move)
		if won {
			return move, true
		}
	}
	return game.NoMove, false
}

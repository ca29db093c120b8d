package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rand *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
// Agents built with the same seed play the same games.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rand: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(board game.Board, player game.Player) (game.Move, metrics.SearchMetric, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, metrics.SearchMetric{}, searcher.ErrNoMove
	}
	return moves[a.rand.Intn(len(moves))], metrics.SearchMetric{}, nil
}

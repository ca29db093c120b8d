package searcher

import (
	"math"

	"connect4/experiments/metrics"
	"connect4/game"

	"github.com/rs/zerolog/log"
)

// Searcher picks moves with a depth-limited negamax and alpha-beta pruning.
// It only holds configuration, so it can be shared as long as every call
// gets its own board.
type Searcher struct {
	maxDepth     int
	pruning      bool
	oracle       Oracle
	newCollector func() metrics.Collector
}

func New(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		maxDepth:     MaxDepth,
		pruning:      true,
		oracle:       game.IsWinning,
		newCollector: metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) MaxDepth() int {
	return s.maxDepth
}

func (s *Searcher) Pruning() bool {
	return s.pruning
}

// ChooseMove returns the best move for the player. The board is modified
// during the search and restored before returning.
func (s *Searcher) ChooseMove(b *game.Board, p game.Player) (game.Move, error) {
	move, _, err := s.Search(b, p)
	return move, err
}

// Search is ChooseMove that also reports the root score and the search metrics.
func (s *Searcher) Search(b *game.Board, p game.Player) (game.Move, metrics.SearchMetric, error) {
	f := &frame{
		Searcher: s,
		board:    b,
		best:     game.NoMove,
		metrics:  s.newCollector(),
	}

	f.metrics.Start(s.maxDepth, s.pruning)
	var score int
	if s.pruning {
		score = f.negamax(p, Lost, Won, 0)
	} else {
		score = f.minmax(p, 0)
	}
	metric := f.metrics.Complete(score)

	if f.best == game.NoMove {
		// Either no move exists or every move loses, the latter never beats Lost
		moves := b.LegalMoves()
		if len(moves) == 0 {
			log.Debug().Msgf("player %s has no legal move", p)
			return game.NoMove, metric, ErrNoMove
		}
		f.best = moves[0]
	}

	log.Debug().
		Stringer("player", p).
		Int("move", int(f.best)).
		Int("score", score).
		Int("nodes", metric.Nodes).
		Dur("duration", metric.Duration).
		Msg("search complete")

	return f.best, metric, nil
}

// frame is the state of a single search call.
type frame struct {
	*Searcher
	board   *game.Board
	best    game.Move // Recorded at depth 0 only
	metrics metrics.Collector
}

func (f *frame) negamax(p game.Player, alpha, beta, depth int) int {
	f.metrics.AddNode()

	if depth >= f.maxDepth {
		f.metrics.AddLeaf()
		return Neutral
	}
	if f.oracle(f.board, p) {
		return Won
	}
	if f.oracle(f.board, p.Opponent()) {
		return Lost
	}

	moves := f.board.LegalMoves()
	if len(moves) == 0 { // Full board
		return Neutral
	}

	// alpha is the best score our side is already guaranteed higher up the tree
	best := alpha
	for _, move := range moves {
		value := -f.play(move, p, func() int {
			return f.negamax(p.Opponent(), -beta, -best, depth+1)
		})

		if value > best {
			best = value
			if depth == 0 {
				f.best = move
			}
			// The opponent already has a reply elsewhere that keeps us below this
			if best >= beta {
				f.metrics.AddCutoff()
				break
			}
		}
	}
	return best
}

// minmax is negamax without the window. It visits every node up to the horizon.
func (f *frame) minmax(p game.Player, depth int) int {
	f.metrics.AddNode()

	if depth >= f.maxDepth {
		f.metrics.AddLeaf()
		return Neutral
	}
	if f.oracle(f.board, p) {
		return Won
	}
	if f.oracle(f.board, p.Opponent()) {
		return Lost
	}

	moves := f.board.LegalMoves()
	if len(moves) == 0 {
		return Neutral
	}

	best := math.MinInt
	for _, move := range moves {
		value := -f.play(move, p, func() int {
			return f.minmax(p.Opponent(), depth+1)
		})

		if value > best {
			best = value
			if depth == 0 {
				f.best = move
			}
		}
	}
	return best
}

// play places the stone, evaluates the child and always takes the stone back.
func (f *frame) play(move game.Move, p game.Player, child func() int) int {
	f.board.Place(move, p)
	defer f.board.Undo(move)
	return child()
}

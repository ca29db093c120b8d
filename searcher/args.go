package searcher

import "connect4/experiments/metrics"

type Option func(s *Searcher)

// WithMaxDepth sets the horizon in plies. Non-positive values are ignored.
func WithMaxDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

// WithOracle replaces the win detection used at every node.
func WithOracle(oracle Oracle) Option {
	return func(s *Searcher) {
		if oracle != nil {
			s.oracle = oracle
		}
	}
}

// WithoutPruning switches to a plain minmax over the full tree.
// It picks the same move as the pruned search and exists for comparison.
func WithoutPruning() Option {
	return func(s *Searcher) {
		s.pruning = false
	}
}

// WithMetrics makes every search count its nodes, cutoffs and leaves.
func WithMetrics() Option {
	return func(s *Searcher) {
		s.newCollector = metrics.NewCollector
	}
}

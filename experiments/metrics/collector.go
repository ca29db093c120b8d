package metrics

import (
	"time"

	"connect4/game"
)

type SearchMetric struct {
	MaxDepth int
	Pruning  bool
	Duration time.Duration
	Nodes    int
	Cutoffs  int // Beta cutoffs
	Leaves   int // Nodes stopped by the depth limit
	Score    int
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   game.Move
	SearchMetric
}

type GameMetric struct {
	Starter    game.Player
	Winner     game.Player // 0 on a draw
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Collector accumulates the counters of a single search call. A search is
// single-threaded, so implementations need no synchronization.
type Collector interface {
	Start(maxDepth int, pruning bool)
	AddNode()
	AddCutoff()
	AddLeaf()
	Complete(score int) SearchMetric
}

type collector struct {
	maxDepth  int
	pruning   bool
	startTime time.Time
	nodes     int
	cutoffs   int
	leaves    int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(maxDepth int, pruning bool) {
	*m = collector{maxDepth: maxDepth, pruning: pruning, startTime: time.Now()}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) Complete(score int) SearchMetric {
	return SearchMetric{
		MaxDepth: m.maxDepth,
		Pruning:  m.pruning,
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes,
		Cutoffs:  m.cutoffs,
		Leaves:   m.leaves,
		Score:    score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(maxDepth int, pruning bool) {}
func (m *dummyCollector) AddNode()                         {}
func (m *dummyCollector) AddCutoff()                       {}
func (m *dummyCollector) AddLeaf()                         {}
func (m *dummyCollector) Complete(score int) SearchMetric  { return SearchMetric{Score: score} }

package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one search: the configured budget and what the
// search actually did within it.
type SearchMetric struct {
	MaxDepth     int
	Budget       time.Duration
	Duration     time.Duration
	DepthReached int
	States       int
	Leaves       int
	TableHits    int
}

type MoveMetric struct {
	Step int
	Side string
	SearchMetric
}

type GameMetric struct {
	Variant    string
	Winner     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(maxDepth int, budget time.Duration)
	SetDepth(depth int)
	AddState()
	AddLeaf()
	AddTableHit()
	Complete() SearchMetric
}

type collector struct {
	maxDepth  int
	budget    time.Duration
	startTime time.Time
	depth     atomic.Int32
	states    atomic.Int64
	leaves    atomic.Int64
	tableHits atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(maxDepth int, budget time.Duration) {
	c.startTime = time.Now()
	c.maxDepth = maxDepth
	c.budget = budget
	c.depth.Store(0)
	c.states.Store(0)
	c.leaves.Store(0)
	c.tableHits.Store(0)
}

func (c *collector) SetDepth(depth int) {
	c.depth.Store(int32(depth))
}

func (c *collector) AddState() {
	c.states.Add(1)
}

func (c *collector) AddLeaf() {
	c.leaves.Add(1)
}

func (c *collector) AddTableHit() {
	c.tableHits.Add(1)
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		MaxDepth:     c.maxDepth,
		Budget:       c.budget,
		Duration:     time.Since(c.startTime),
		DepthReached: int(c.depth.Load()),
		States:       int(c.states.Load()),
		Leaves:       int(c.leaves.Load()),
		TableHits:    int(c.tableHits.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(maxDepth int, budget time.Duration) {}
func (c *dummyCollector) SetDepth(depth int)                      {}
func (c *dummyCollector) AddState()                               {}
func (c *dummyCollector) AddLeaf()                                {}
func (c *dummyCollector) AddTableHit()                            {}
func (c *dummyCollector) Complete() SearchMetric                  { return SearchMetric{} }

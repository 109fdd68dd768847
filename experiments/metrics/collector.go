package metrics

import (
	"sync/atomic"
	"time"
)

// RunMetric summarizes one budgeted search on one instance.
type RunMetric struct {
	Iterations int
	Answer     int
	Elapsed    time.Duration
	Closed     bool // the tree ran out of expandable nodes before the budget did
}

// Collector gathers counters while an engine runs.
type Collector interface {
	Start()
	AddIteration()
	Complete(answer int, closed bool) RunMetric
}

type collector struct {
	startTime  time.Time
	iterations atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.iterations.Store(0)
}

func (c *collector) AddIteration() {
	c.iterations.Add(1)
}

func (c *collector) Complete(answer int, closed bool) RunMetric {
	return RunMetric{
		Iterations: int(c.iterations.Load()),
		Answer:     answer,
		Elapsed:    time.Since(c.startTime),
		Closed:     closed,
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start()        {}
func (dummyCollector) AddIteration() {}
func (dummyCollector) Complete(answer int, closed bool) RunMetric {
	return RunMetric{Answer: answer, Closed: closed}
}

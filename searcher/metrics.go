package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetrics summarizes the work done between Start and Complete.
type SearchMetrics struct {
	Duration       time.Duration
	Iterations     int64
	RolloutSteps   int64
	GeneratorCalls int64
}

// Collector counts the work a search performs. The tree reports into
// whichever collector was installed at construction; the default
// discards everything.
type Collector interface {
	Start()
	AddIteration()
	AddRolloutStep()
	AddGeneratorCall()
	Complete() SearchMetrics
}

type collector struct {
	startTime      time.Time
	iterations     atomic.Int64
	rolloutSteps   atomic.Int64
	generatorCalls atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.iterations.Store(0)
	c.rolloutSteps.Store(0)
	c.generatorCalls.Store(0)
}

func (c *collector) AddIteration() {
	c.iterations.Add(1)
}

func (c *collector) AddRolloutStep() {
	c.rolloutSteps.Add(1)
}

func (c *collector) AddGeneratorCall() {
	c.generatorCalls.Add(1)
}

func (c *collector) Complete() SearchMetrics {
	return SearchMetrics{
		Duration:       time.Since(c.startTime),
		Iterations:     c.iterations.Load(),
		RolloutSteps:   c.rolloutSteps.Load(),
		GeneratorCalls: c.generatorCalls.Load(),
	}
}

type noCollector struct{}

func NewNoCollector() Collector {
	return &noCollector{}
}

func (noCollector) Start()            {}
func (noCollector) AddIteration()     {}
func (noCollector) AddRolloutStep()   {}
func (noCollector) AddGeneratorCall() {}

func (noCollector) Complete() SearchMetrics { return SearchMetrics{} }

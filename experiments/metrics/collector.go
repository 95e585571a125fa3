package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one experiment run: how many deals were
// played, how many simulations the searchers spent, and how long the
// whole run took.
type SearchMetric struct {
	Deals       int
	Simulations int
	Duration    time.Duration
}

// GameRecord is one finished deal with its settlement, dealer first.
type GameRecord struct {
	ID           string
	Coin         int
	DealerScore  float64
	GuesserScore float64
	Simulations  int
	Duration     time.Duration
}

// Collector accumulates run counters. Counters are atomic so games may
// be played on separate goroutines; each game still runs its own
// searches sequentially.
type Collector interface {
	Start()
	AddDeal()
	AddSimulations(n int)
	Complete() SearchMetric
}

type collector struct {
	startTime   time.Time
	deals       atomic.Int64
	simulations atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
}

func (c *collector) AddDeal() {
	c.deals.Add(1)
}

func (c *collector) AddSimulations(n int) {
	c.simulations.Add(int64(n))
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Deals:       int(c.deals.Load()),
		Simulations: int(c.simulations.Load()),
		Duration:    time.Since(c.startTime),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (*dummyCollector) Start()                 {}
func (*dummyCollector) AddDeal()               {}
func (*dummyCollector) AddSimulations(int)     {}
func (*dummyCollector) Complete() SearchMetric { return SearchMetric{} }

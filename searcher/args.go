package searcher

import (
	"time"

	"golang.org/x/exp/rand"
)

type Option func(c *config)

type config struct {
	rng        *rand.Rand
	maxDepth   int
	goroutines int
	metrics    MetricsCollector
	last       SearchMetric
}

func newConfig(options []Option) config {
	c := config{ // Default values
		rng:        rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		goroutines: 1,
		metrics:    NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

// WithRand sets the source used to break ties between equally good moves.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxDepth fails a search with ErrDepthExceeded once it reaches a position more than
// depth moves away from the root. Zero means unlimited.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth >= 0 {
			c.maxDepth = depth
		}
	}
}

// WithGoroutines scores the moves of the root position concurrently.
func WithGoroutines(goroutines int) Option {
	return func(c *config) {
		if goroutines > 0 {
			c.goroutines = goroutines
		}
	}
}

func WithMetrics(metrics MetricsCollector) Option {
	return func(c *config) {
		if metrics != nil {
			c.metrics = metrics
		}
	}
}

func (c config) tooDeep(depth int) bool {
	return c.maxDepth > 0 && depth > c.maxDepth
}

// LastSearch reports the work done by the most recent FindMove, Score or BuildTree. It is
// empty unless a collector was set with WithMetrics.
func (c *config) LastSearch() SearchMetric {
	return c.last
}

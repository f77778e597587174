package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Engine        string
	StartTime     time.Time
	Duration      time.Duration
	Nodes         int64
	TerminalNodes int64
}

// MetricsCollector is safe for concurrent use by the goroutines of a single search.
type MetricsCollector interface {
	Start(engine string)
	AddNode(terminal bool)
	Complete() SearchMetric
}

type metricsCollector struct {
	engine        string
	startTime     time.Time
	nodes         atomic.Int64
	terminalNodes atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(engine string) {
	m.engine = engine
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.terminalNodes.Store(0)
}

func (m *metricsCollector) AddNode(terminal bool) {
	m.nodes.Add(1)
	if terminal {
		m.terminalNodes.Add(1)
	}
}

func (m *metricsCollector) Complete() SearchMetric {
	return SearchMetric{
		Engine:        m.engine,
		StartTime:     m.startTime,
		Duration:      time.Since(m.startTime),
		Nodes:         m.nodes.Load(),
		TerminalNodes: m.terminalNodes.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(engine string)    {}
func (m *noMetricsCollector) AddNode(terminal bool)  {}
func (m *noMetricsCollector) Complete() SearchMetric { return SearchMetric{} }

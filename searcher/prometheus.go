package searcher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type prometheusCollector struct {
	MetricsCollector
	nodes         *prometheus.CounterVec
	terminalNodes *prometheus.CounterVec
	duration      *prometheus.HistogramVec
}

// NewPrometheusCollector counts search work locally and publishes the totals of every
// completed search to reg, labelled by engine. A nil reg leaves the metrics unregistered.
func NewPrometheusCollector(reg prometheus.Registerer) MetricsCollector {
	factory := promauto.With(reg)
	return &prometheusCollector{
		MetricsCollector: NewMetricsCollector(),
		nodes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "searcher_nodes_total",
			Help: "Positions visited by minimax searches",
		}, []string{"engine"}),
		terminalNodes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "searcher_terminal_nodes_total",
			Help: "Finished positions visited by minimax searches",
		}, []string{"engine"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "searcher_search_duration_seconds",
			Help:    "Wall time of a single minimax search",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"engine"}),
	}
}

func (p *prometheusCollector) Complete() SearchMetric {
	metric := p.MetricsCollector.Complete()
	p.nodes.WithLabelValues(metric.Engine).Add(float64(metric.Nodes))
	p.terminalNodes.WithLabelValues(metric.Engine).Add(float64(metric.TerminalNodes))
	p.duration.WithLabelValues(metric.Engine).Observe(metric.Duration.Seconds())
	return metric
}

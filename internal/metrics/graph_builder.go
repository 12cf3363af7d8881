package metrics

import (
	"time"

	"github.com/goodnatureofminers/shieldtrace/internal/shielded/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	builderLoadTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "graph_builder",
		Name:      "load_total",
		Help:      "Count of event log loads.",
	}, []string{"pool", "network", "status"})

	builderLoadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "graph_builder",
		Name:      "load_duration_seconds",
		Help:      "Duration of loading the event log.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"pool", "network", "status"})

	builderBuildTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "graph_builder",
		Name:      "build_total",
		Help:      "Count of graph builds.",
	}, []string{"pool", "network", "status"})

	builderBuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "graph_builder",
		Name:      "build_duration_seconds",
		Help:      "Duration of folding the event log into a graph.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"pool", "network", "status"})

	builderBuildEvents = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "graph_builder",
		Name:      "build_events",
		Help:      "Number of events applied per build.",
		Buckets:   prometheus.ExponentialBuckets(16, 2, 14), // 16..131072
	}, []string{"pool", "network"})

	builderPublishTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "graph_builder",
		Name:      "publish_total",
		Help:      "Count of graph publications per publisher.",
	}, []string{"pool", "network", "publisher", "status"})

	builderHighestBlock = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "graph_builder",
		Name:      "highest_block",
		Help:      "Highest synced block of the last published graph.",
	}, []string{"pool", "network"})
)

// GraphBuilder tracks metrics of the graph build loop.
type GraphBuilder struct {
	pool    string
	network string
}

// NewGraphBuilder creates a GraphBuilder metrics collector.
func NewGraphBuilder(pool model.Pool, network model.Network) *GraphBuilder {
	return &GraphBuilder{pool: poolLabel(pool), network: networkLabel(network)}
}

func (m GraphBuilder) ObserveLoad(err error, started time.Time) {
	s := status(err)
	builderLoadTotal.WithLabelValues(m.pool, m.network, s).Inc()
	builderLoadDuration.WithLabelValues(m.pool, m.network, s).Observe(time.Since(started).Seconds())
}

func (m GraphBuilder) ObserveBuild(err error, events int, started time.Time) {
	s := status(err)
	builderBuildTotal.WithLabelValues(m.pool, m.network, s).Inc()
	builderBuildDuration.WithLabelValues(m.pool, m.network, s).Observe(time.Since(started).Seconds())
	builderBuildEvents.WithLabelValues(m.pool, m.network).Observe(float64(events))
}

func (m GraphBuilder) ObservePublish(publisher string, err error) {
	builderPublishTotal.WithLabelValues(m.pool, m.network, publisher, status(err)).Inc()
}

func (m GraphBuilder) SetHighestBlock(height uint64) {
	builderHighestBlock.WithLabelValues(m.pool, m.network).Set(float64(height))
}

package metrics

import (
	"time"

	"github.com/goodnatureofminers/shieldtrace/internal/shielded/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	importerChunkTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "event_importer",
		Name:      "chunks_total",
		Help:      "Count of imported record chunks.",
	}, []string{"pool", "network", "status"})

	importerChunkDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "event_importer",
		Name:      "chunk_duration_seconds",
		Help:      "Duration of importing one chunk.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"pool", "network", "status"})

	importerRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "event_importer",
		Name:      "records_total",
		Help:      "Count of records written to the event store.",
	}, []string{"pool", "network"})
)

// EventImporter tracks metrics of the cache to ClickHouse import.
type EventImporter struct {
	pool    string
	network string
}

// NewEventImporter creates an EventImporter metrics collector.
func NewEventImporter(pool model.Pool, network model.Network) *EventImporter {
	return &EventImporter{pool: poolLabel(pool), network: networkLabel(network)}
}

func (m EventImporter) ObserveChunk(err error, records int, started time.Time) {
	s := status(err)
	importerChunkTotal.WithLabelValues(m.pool, m.network, s).Inc()
	importerChunkDuration.WithLabelValues(m.pool, m.network, s).Observe(time.Since(started).Seconds())
	if err == nil {
		importerRecordsTotal.WithLabelValues(m.pool, m.network).Add(float64(records))
	}
}

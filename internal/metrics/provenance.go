package metrics

import (
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	provenanceEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "provenance",
		Name:      "events_total",
		Help:      "Count of processed pool events by kind.",
	}, []string{"pool", "network", "kind", "status"})

	provenanceCandidates = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "provenance",
		Name:      "candidates",
		Help:      "Size of the effective anonymity set per event.",
		Buckets:   []float64{0, 1, 2, 4, 8, 16, 32, 64},
	}, []string{"pool", "network", "kind"})

	provenanceSourceMass = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "provenance",
		Name:      "source_mass",
		Help:      "Sum of source chances of an account after a deposit credit.",
		Buckets:   []float64{0.25, 0.5, 0.75, 0.9, 1, 1.1, 1.5, 2, 4},
	}, []string{"pool", "network"})
)

// Provenance tracks metrics of the event processor.
type Provenance struct {
	pool    string
	network string
}

// NewProvenance creates a Provenance metrics collector.
func NewProvenance(pool model.Pool, network model.Network) *Provenance {
	return &Provenance{pool: poolLabel(pool), network: networkLabel(network)}
}

func (m Provenance) ObserveEvent(kind model.Kind, err error) {
	provenanceEventsTotal.WithLabelValues(m.pool, m.network, kindLabel(kind), status(err)).Inc()
}

func (m Provenance) ObserveCandidates(kind model.Kind, candidates int) {
	provenanceCandidates.WithLabelValues(m.pool, m.network, kindLabel(kind)).Observe(float64(candidates))
}

func (m Provenance) ObserveSourceMass(mass float64) {
	provenanceSourceMass.WithLabelValues(m.pool, m.network).Observe(mass)
}

// kindLabel folds unrecognised event names into one label value.
func kindLabel(kind model.Kind) string {
	switch kind {
	case model.KindRegister, model.KindDeposit, model.KindWithdrawal, model.KindTransfer:
		return string(kind)
	default:
		return "unknown"
	}
}

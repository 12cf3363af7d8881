package provenance

import "github.com/goodnatureofminers/shieldtrace/internal/shielded/model"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		ObserveEvent(kind model.Kind, err error)
		ObserveCandidates(kind model.Kind, candidates int)
		ObserveSourceMass(mass float64)
	}
)

// Mode selects how a deposit blends into existing provenance.
type Mode string

const (
	// ModeWeighted dilutes existing sources and spreads the deposit over the anonymity set.
	ModeWeighted Mode = "weighted"
	// ModeLatestDeposit attributes a candidate's whole balance to its most recent deposit.
	ModeLatestDeposit Mode = "latest-deposit"
)

type nopMetrics struct{}

func (nopMetrics) ObserveEvent(model.Kind, error)   {}
func (nopMetrics) ObserveCandidates(model.Kind, int) {}
func (nopMetrics) ObserveSourceMass(float64)         {}

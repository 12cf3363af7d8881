// Package provenance propagates deposit taint through a shielded pool's anonymity sets.
package provenance

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/ledger"
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/model"
	"go.uber.org/zap"
)

// Processor folds pool events into a ledger and yields the graph fragment of each event.
// It owns its ledger exclusively; events must be fed strictly in log order.
type Processor struct {
	ledger  *ledger.Ledger
	mode    Mode
	metrics Metrics
	logger  *zap.Logger
}

// NewProcessor builds a Processor over l. A nil metrics collector disables observation.
func NewProcessor(l *ledger.Ledger, mode Mode, metrics Metrics, logger *zap.Logger) (*Processor, error) {
	switch mode {
	case ModeWeighted, ModeLatestDeposit:
	case "":
		mode = ModeWeighted
	default:
		return nil, fmt.Errorf("unknown provenance mode %q", mode)
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{
		ledger:  l,
		mode:    mode,
		metrics: metrics,
		logger:  logger,
	}, nil
}

// Ledger exposes the ledger the processor writes to.
func (p *Processor) Ledger() *ledger.Ledger {
	return p.ledger
}

// Fold applies every event of log in order and passes each fragment to emit. It stops at the
// first error; events after it are neither applied nor emitted. The context is checked between
// events only, so an event is never half applied. It returns the number of events applied.
func (p *Processor) Fold(ctx context.Context, log model.EventLog, emit func(model.Fragment) error) (int, error) {
	applied := 0
	for _, block := range log.Blocks {
		for _, tx := range block.Txs {
			for _, ev := range tx.Events {
				if err := ctx.Err(); err != nil {
					return applied, err
				}
				frag, err := p.Process(ev)
				if err != nil {
					return applied, err
				}
				applied++
				if frag.Empty() {
					continue
				}
				if err := emit(frag); err != nil {
					return applied, fmt.Errorf("emit fragment at height %d: %w", ev.Pos().Height, err)
				}
			}
		}
	}
	return applied, nil
}

// Process applies a single event.
func (p *Processor) Process(ev model.Event) (frag model.Fragment, err error) {
	if ev == nil {
		return model.Fragment{}, fmt.Errorf("nil event: %w", model.ErrMalformedEvent)
	}
	defer func() {
		p.metrics.ObserveEvent(ev.Kind(), err)
	}()

	switch e := ev.(type) {
	case model.Register:
		return p.register(e), nil
	case model.Deposit:
		return p.deposit(e), nil
	case model.Withdrawal:
		return p.withdrawal(e), nil
	default:
		p.logger.Error("unsupported event",
			zap.String("kind", string(ev.Kind())),
			zap.Uint64("height", ev.Pos().Height),
			zap.String("tx", ev.Pos().TxHash.Hex()))
		return model.Fragment{}, &model.EventError{Position: ev.Pos(), Kind: ev.Kind(), Err: model.ErrUnsupportedEvent}
	}
}

func (p *Processor) register(e model.Register) model.Fragment {
	if e.Amount == 0 {
		if !p.ledger.Has(e.Account) {
			p.ledger.Append(e.Account, model.AccountState{Height: e.Height, TxHash: e.TxHash})
		}
		return model.Fragment{Nodes: []model.Node{{
			ID:    model.RegisterNodeID(e.Height, e.TxHash, e.Account),
			Label: "register " + model.ShortHex(e.Account),
			Fill:  model.FillRegister,
		}}}
	}

	// A funded registration pays the account directly: a deposit whose only candidate is known.
	d := model.DepositRecord{Height: e.Height, TxHash: e.TxHash, Source: e.Sender, Amount: e.Amount}
	p.credit(e.Position, d, []common.Hash{e.Account})
	return depositFragment(d)
}

func (p *Processor) deposit(e model.Deposit) model.Fragment {
	d := model.DepositRecord{Height: e.Height, TxHash: e.TxHash, Source: e.Source, Amount: e.Amount}
	candidates := withoutBurn(e.Recipients)
	p.metrics.ObserveCandidates(model.KindDeposit, len(candidates))
	if len(candidates) == 0 {
		p.logger.Debug("deposit without candidates", zap.Uint64("height", e.Height), zap.String("tx", e.TxHash.Hex()))
	} else {
		p.credit(e.Position, d, candidates)
	}
	return depositFragment(d)
}

func (p *Processor) credit(pos model.Position, d model.DepositRecord, candidates []common.Hash) {
	n := float64(len(candidates))
	chance := 1 / n
	if p.mode == ModeLatestDeposit {
		chance = 1
	}
	for _, account := range candidates {
		old := p.ledger.Current(account)
		sources := p.dilute(old.Sources, len(candidates))
		sources = model.AddSource(sources, model.FundSource{Deposit: d, Chance: chance})
		next := model.AccountState{
			Height:  pos.Height,
			TxHash:  pos.TxHash,
			Balance: old.Balance + float64(d.Amount)/n,
			Sources: sources,
		}
		p.ledger.Append(account, next)
		p.ledger.CreditCumulativeDeposited(account, d.Amount)
		p.metrics.ObserveSourceMass(next.SourceMass())
	}
}

// dilute returns a fresh copy of sources rescaled for a deposit split over n candidates.
func (p *Processor) dilute(sources []model.FundSource, n int) []model.FundSource {
	if p.mode == ModeLatestDeposit {
		return make([]model.FundSource, 0, 1)
	}
	out := make([]model.FundSource, 0, len(sources)+1)
	if n == 1 {
		// (1/(n-1))*n has no value here; a sole candidate keeps its sources as they are.
		return append(out, sources...)
	}
	divisor := (1 / float64(n-1)) * float64(n)
	for _, src := range sources {
		out = model.AddSource(out, model.FundSource{Deposit: src.Deposit, Chance: src.Chance / divisor})
	}
	return out
}

func (p *Processor) withdrawal(e model.Withdrawal) model.Fragment {
	eligible := p.eligible(e.Senders, e.Amount)
	p.metrics.ObserveCandidates(model.KindWithdrawal, len(eligible))
	if len(eligible) == 0 {
		p.logger.Debug("withdrawal without eligible senders", zap.Uint64("height", e.Height), zap.String("tx", e.TxHash.Hex()))
		return model.Fragment{}
	}

	n := float64(len(eligible))
	attribution := newAttribution()
	for _, account := range eligible {
		old := p.ledger.Current(account)
		for _, src := range old.Sources {
			attribution.add(src.Deposit, src.Chance*(1/n))
		}
		p.ledger.Append(account, model.AccountState{
			Height:  e.Height,
			TxHash:  e.TxHash,
			Balance: old.Balance - float64(e.Amount)/n,
			Sources: old.Sources,
		})
	}

	destination := model.AddressNodeID(e.Destination)
	frag := model.Fragment{Edges: make([]model.Edge, 0, len(attribution.order))}
	for _, d := range attribution.order {
		frag.Edges = append(frag.Edges, weightedEdge(model.DepositNodeID(d.Height, d.TxHash), destination, attribution.chance[d]))
	}
	return frag
}

// eligible drops the burn address and every account whose lifetime deposits cannot cover amount.
func (p *Processor) eligible(senders []common.Hash, amount uint64) []common.Hash {
	out := make([]common.Hash, 0, len(senders))
	for _, account := range senders {
		if account == model.BurnAddress {
			continue
		}
		if p.ledger.CumulativeDeposited(account) < amount {
			continue
		}
		out = append(out, account)
	}
	return out
}

func withoutBurn(accounts []common.Hash) []common.Hash {
	out := make([]common.Hash, 0, len(accounts))
	for _, account := range accounts {
		if account != model.BurnAddress {
			out = append(out, account)
		}
	}
	return out
}

func depositFragment(d model.DepositRecord) model.Fragment {
	node := model.DepositNodeID(d.Height, d.TxHash)
	return model.Fragment{
		Nodes: []model.Node{{ID: node, Label: strconv.FormatUint(d.Amount, 10), Fill: model.FillDeposit}},
		Edges: []model.Edge{{From: model.AddressNodeID(d.Source), To: node}},
	}
}

func weightedEdge(from, to string, probability float64) model.Edge {
	weight := max(1, int(math.Round(probability*20)))
	return model.Edge{
		From:        from,
		To:          to,
		Probability: probability,
		Weight:      weight,
		PenWidth:    weight,
		Length:      10 - max(1, int(math.Round(probability*10))),
	}
}

// attribution accumulates withdrawal probability per deposit in first-seen order.
type attribution struct {
	chance map[model.DepositRecord]float64
	order  []model.DepositRecord
}

func newAttribution() *attribution {
	return &attribution{chance: make(map[model.DepositRecord]float64)}
}

func (a *attribution) add(d model.DepositRecord, chance float64) {
	if _, ok := a.chance[d]; !ok {
		a.order = append(a.order, d)
	}
	a.chance[d] += chance
}

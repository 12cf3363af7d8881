// Package builder runs the provenance pipeline: load the event log, fold it into a graph and
// publish the result.
package builder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/shieldtrace/internal/clock"
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/graph"
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/ledger"
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/model"
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/provenance"
	"go.uber.org/zap"
)

// Config selects what a Builder analyses and how often.
type Config struct {
	Pool    model.Pool
	Network model.Network
	Mode    provenance.Mode
	// WatchInterval enables polling; zero builds once.
	WatchInterval time.Duration
}

// Result summarises one successful build.
type Result struct {
	HighestBlock uint64
	Events       int
	Nodes        int
	Edges        int
	Accounts     int
}

type Builder struct {
	source            EventSource
	publishers        []Publisher
	metrics           BuilderMetrics
	provenanceMetrics provenance.Metrics
	cfg               Config
	logger            *zap.Logger
	sleep             func(context.Context, time.Duration) error
	backoff           clock.Backoff

	built       bool
	lastHighest uint64
}

func NewBuilder(
	source EventSource,
	publishers []Publisher,
	metrics BuilderMetrics,
	provenanceMetrics provenance.Metrics,
	cfg Config,
	logger *zap.Logger,
) (*Builder, error) {
	if source == nil {
		return nil, errors.New("event source is required")
	}
	if metrics == nil {
		return nil, errors.New("builder metrics is required")
	}
	if _, err := provenance.NewProcessor(ledger.New(), cfg.Mode, nil, nil); err != nil {
		return nil, err
	}

	return &Builder{
		source:            source,
		publishers:        publishers,
		metrics:           metrics,
		provenanceMetrics: provenanceMetrics,
		cfg:               cfg,
		logger: logger.With(
			zap.String("pool", string(cfg.Pool)),
			zap.String("network", string(cfg.Network)),
		),
		sleep:   clock.SleepWithContext,
		backoff: clock.Backoff{Min: time.Second, Max: time.Minute},
	}, nil
}

// Build loads the whole log and folds it through a fresh ledger. The graph reaches the
// publishers only when every event was applied.
func (b *Builder) Build(ctx context.Context) (Result, error) {
	started := time.Now()
	log, err := b.source.Load(ctx)
	b.metrics.ObserveLoad(err, started)
	if err != nil {
		return Result{}, fmt.Errorf("load event log: %w", err)
	}

	started = time.Now()
	l := ledger.New()
	processor, err := provenance.NewProcessor(l, b.cfg.Mode, b.provenanceMetrics, b.logger.Named("processor"))
	if err != nil {
		return Result{}, err
	}
	g := graph.New(string(b.cfg.Pool), log.HighestBlock)
	applied, err := processor.Fold(ctx, log, g.Add)
	b.metrics.ObserveBuild(err, applied, started)
	if err != nil {
		b.logger.Error("graph build aborted", zap.Int("applied", applied), zap.Error(err))
		return Result{}, fmt.Errorf("build graph: %w", err)
	}

	for _, p := range b.publishers {
		err := p.Publish(ctx, g)
		b.metrics.ObservePublish(p.Name(), err)
		if err != nil {
			return Result{}, fmt.Errorf("publish %s: %w", p.Name(), err)
		}
	}
	b.metrics.SetHighestBlock(log.HighestBlock)

	res := Result{
		HighestBlock: log.HighestBlock,
		Events:       applied,
		Nodes:        len(g.Nodes()),
		Edges:        len(g.Edges()),
		Accounts:     len(l.Accounts()),
	}
	b.logger.Info("graph built",
		zap.Uint64("highest_block", res.HighestBlock),
		zap.Int("events", res.Events),
		zap.Int("nodes", res.Nodes),
		zap.Int("edges", res.Edges),
		zap.Int("accounts", res.Accounts))
	return res, nil
}

// Run builds once, or keeps rebuilding whenever the source advances when a watch interval is
// set. Data errors stop the loop; other failures back off and retry.
func (b *Builder) Run(ctx context.Context) error {
	if b.cfg.WatchInterval <= 0 {
		_, err := b.Build(ctx)
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := b.poll(ctx); err != nil {
			if model.IsFatal(err) {
				return err
			}
			delay := b.backoff.Next()
			b.logger.Warn("build iteration failed, backing off", zap.Error(err), zap.Duration("sleep", delay))
			if sleepErr := b.sleep(ctx, delay); sleepErr != nil {
				return sleepErr
			}
			continue
		}
		b.backoff.Reset()
		if err := b.sleep(ctx, b.cfg.WatchInterval); err != nil {
			return err
		}
	}
}

func (b *Builder) poll(ctx context.Context) error {
	highest, err := b.source.HighestBlock(ctx)
	if errors.Is(err, model.ErrMissingInput) {
		b.logger.Info("no events yet; waiting", zap.Duration("sleep", b.cfg.WatchInterval))
		return nil
	}
	if err != nil {
		return fmt.Errorf("highest block: %w", err)
	}
	if b.built && highest <= b.lastHighest {
		b.logger.Debug("no new blocks", zap.Uint64("highest_block", highest))
		return nil
	}

	res, err := b.Build(ctx)
	if errors.Is(err, model.ErrMissingInput) {
		b.logger.Info("source has no events yet; waiting", zap.Duration("sleep", b.cfg.WatchInterval))
		return nil
	}
	if err != nil {
		return err
	}
	b.built = true
	b.lastHighest = res.HighestBlock
	return nil
}

package publisher

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/shieldtrace/internal/shielded/graph"
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/model"
	"github.com/goodnatureofminers/shieldtrace/pkg/batcher"
	"github.com/goodnatureofminers/shieldtrace/pkg/safe"
	"go.uber.org/zap"
)

const (
	edgeBatchSize     = 5000
	edgeFlushInterval = time.Second
	edgeFlushRPS      = 10
)

// Edges persists the attribution edges of every build, keyed by the build's highest block.
type Edges struct {
	repo          EdgeRepository
	pool          model.Pool
	network       model.Network
	logger        *zap.Logger
	batchSize     int
	flushInterval time.Duration
	rps           int
}

func NewEdges(repo EdgeRepository, pool model.Pool, network model.Network, logger *zap.Logger) *Edges {
	return &Edges{
		repo:          repo,
		pool:          pool,
		network:       network,
		logger:        logger,
		batchSize:     edgeBatchSize,
		flushInterval: edgeFlushInterval,
		rps:           edgeFlushRPS,
	}
}

func (p *Edges) Name() string {
	return "clickhouse_edges"
}

// Publish streams the weighted edges through a batcher and reports every failed flush.
func (p *Edges) Publish(ctx context.Context, g *graph.Graph) error {
	b := batcher.New(p.logger.Named("edgeBatcher"), p.repo.InsertEdges, p.batchSize, p.flushInterval, p.rps)
	b.Start(ctx)

	edges := g.WeightedEdges()
	var addErr error
	for i, e := range edges {
		seq, err := safe.Uint32(i)
		if err != nil {
			addErr = err
			break
		}
		if err := b.Add(ctx, model.EdgeRecord{
			Pool:        p.pool,
			Network:     p.network,
			BuildHeight: g.HighestBlock(),
			Seq:         seq,
			Edge:        e,
		}); err != nil {
			addErr = err
			break
		}
	}

	if err := errors.Join(addErr, b.Stop()); err != nil {
		return err
	}
	p.logger.Info("edges persisted", zap.Uint64("build_height", g.HighestBlock()), zap.Int("edges", len(edges)))
	return nil
}

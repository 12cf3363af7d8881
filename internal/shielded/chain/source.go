package chain

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/shieldtrace/internal/shielded/model"
)

// RepositorySource reads the event log of one pool deployment from the event store.
type RepositorySource struct {
	repo    EventRepository
	pool    model.Pool
	network model.Network
}

// NewRepositorySource constructs a RepositorySource.
func NewRepositorySource(repo EventRepository, pool model.Pool, network model.Network) *RepositorySource {
	return &RepositorySource{
		repo:    repo,
		pool:    pool,
		network: network,
	}
}

// HighestBlock returns the highest synced block of the store.
func (s *RepositorySource) HighestBlock(ctx context.Context) (uint64, error) {
	height, err := s.repo.MaxBlockHeight(ctx, s.pool, s.network)
	if err != nil {
		return 0, fmt.Errorf("max block height: %w", err)
	}
	return height, nil
}

// Load reads every stored event and assembles the ordered log.
func (s *RepositorySource) Load(ctx context.Context) (model.EventLog, error) {
	highest, err := s.HighestBlock(ctx)
	if err != nil {
		return model.EventLog{}, err
	}
	records, err := s.repo.EventRecords(ctx, s.pool, s.network)
	if err != nil {
		return model.EventLog{}, fmt.Errorf("event records: %w", err)
	}
	if len(records) == 0 {
		return model.EventLog{}, fmt.Errorf("no %s events stored for %s: %w", s.pool, s.network, model.ErrMissingInput)
	}
	return Assemble(highest, records)
}

package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/shieldtrace/internal/shielded/model"
)

// InsertEvents stores raw event records. Re-inserting a record replaces the stored copy.
func (r *Repository) InsertEvents(ctx context.Context, records []model.EventRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_events", firstPool(records), firstNetwork(records), err, start)
	}()

	if len(records) == 0 {
		return nil
	}

	const query = `
INSERT INTO shielded_events (
	pool,
	network,
	block_height,
	tx_hash,
	tx_index,
	log_index,
	event,
	args
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare events batch: %w", err)
	}

	for _, rec := range records {
		if err = batch.Append(
			string(rec.Pool),
			string(rec.Network),
			rec.BlockHeight,
			rec.TxHash.Hex(),
			rec.TxIndex,
			rec.LogIndex,
			rec.Event,
			string(rec.Args),
		); err != nil {
			return fmt.Errorf("append event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert events: %w", err)
	}
	return nil
}

func firstPool[T any](items []T) model.Pool {
	if len(items) == 0 {
		return ""
	}

	switch v := any(items[0]).(type) {
	case model.EventRecord:
		return v.Pool
	case model.EdgeRecord:
		return v.Pool
	default:
		return ""
	}
}

func firstNetwork[T any](items []T) model.Network {
	if len(items) == 0 {
		return ""
	}

	switch v := any(items[0]).(type) {
	case model.EventRecord:
		return v.Network
	case model.EdgeRecord:
		return v.Network
	default:
		return ""
	}
}

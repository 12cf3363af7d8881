package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/shieldtrace/internal/shielded/model"
)

// MaxBlockHeight returns the highest block with a stored event, or zero for an empty store.
func (r *Repository) MaxBlockHeight(ctx context.Context, pool model.Pool, network model.Network) (height uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_block_height", pool, network, err, start)
	}()

	const query = `
SELECT coalesce(max(block_height), toUInt64(0)) AS max_height
FROM shielded_events
WHERE pool = ? AND network = ?`

	rows, err := r.conn.Query(ctx, query, string(pool), string(network))
	if err != nil {
		return 0, fmt.Errorf("query max block height: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return 0, fmt.Errorf("max block height not found")
	}
	if err = rows.Scan(&height); err != nil {
		return 0, fmt.Errorf("scan max block height: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate max block height: %w", err)
	}
	return height, nil
}

package clickhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/model"
)

// EventRecords returns every stored record of a pool deployment in log order.
func (r *Repository) EventRecords(ctx context.Context, pool model.Pool, network model.Network) (records []model.EventRecord, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("event_records", pool, network, err, start)
	}()

	const query = `
SELECT
	block_height,
	tx_hash,
	tx_index,
	log_index,
	event,
	args
FROM shielded_events FINAL
WHERE pool = ? AND network = ?
ORDER BY block_height, tx_index, log_index`

	rows, err := r.conn.Query(ctx, query, string(pool), string(network))
	if err != nil {
		return nil, fmt.Errorf("query event records: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var (
			rec    = model.EventRecord{Pool: pool, Network: network}
			txHash string
			args   string
		)
		if err = rows.Scan(&rec.BlockHeight, &txHash, &rec.TxIndex, &rec.LogIndex, &rec.Event, &args); err != nil {
			return nil, fmt.Errorf("scan event record: %w", err)
		}
		rec.TxHash = common.HexToHash(txHash)
		rec.Args = json.RawMessage(args)
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event records: %w", err)
	}
	return records, nil
}

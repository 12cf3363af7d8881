package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/shieldtrace/internal/shielded/model"
)

// InsertEdges stores weighted graph edges of a build.
func (r *Repository) InsertEdges(ctx context.Context, edges []model.EdgeRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_edges", firstPool(edges), firstNetwork(edges), err, start)
	}()

	if len(edges) == 0 {
		return nil
	}

	const query = `
INSERT INTO provenance_edges (
	pool,
	network,
	build_height,
	seq,
	from_node,
	to_node,
	probability,
	weight,
	penwidth,
	len
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare edges batch: %w", err)
	}

	for _, rec := range edges {
		if err = batch.Append(
			string(rec.Pool),
			string(rec.Network),
			rec.BuildHeight,
			rec.Seq,
			rec.Edge.From,
			rec.Edge.To,
			rec.Edge.Probability,
			int32(rec.Edge.Weight),
			int32(rec.Edge.PenWidth),
			int32(rec.Edge.Length),
		); err != nil {
			return fmt.Errorf("append edge: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert edges: %w", err)
	}
	return nil
}

package builder

import (
	"context"
	"time"

	"github.com/goodnatureofminers/shieldtrace/internal/shielded/graph"
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	EventSource interface {
		HighestBlock(ctx context.Context) (uint64, error)
		Load(ctx context.Context) (model.EventLog, error)
	}
	Publisher interface {
		Name() string
		Publish(ctx context.Context, g *graph.Graph) error
	}
	BuilderMetrics interface {
		ObserveLoad(err error, started time.Time)
		ObserveBuild(err error, events int, started time.Time)
		ObservePublish(publisher string, err error)
		SetHighestBlock(height uint64)
	}
)

package chain

import (
	"context"

	"github.com/goodnatureofminers/shieldtrace/internal/shielded/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	EventRepository interface {
		MaxBlockHeight(ctx context.Context, pool model.Pool, network model.Network) (uint64, error)
		EventRecords(ctx context.Context, pool model.Pool, network model.Network) ([]model.EventRecord, error)
	}
)

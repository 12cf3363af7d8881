package publisher

import (
	"context"

	"github.com/goodnatureofminers/shieldtrace/internal/shielded/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	EdgeRepository interface {
		InsertEdges(ctx context.Context, edges []model.EdgeRecord) error
	}
)

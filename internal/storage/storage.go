package storage

import (
	"context"

	"hamsterpocket/internal/model"
)

// Store defines a sink for decoded pocket events.
type Store interface {
	PutEventBatch(ctx context.Context, events []model.PocketEvent) error
}

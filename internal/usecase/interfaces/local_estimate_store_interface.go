package interfaces

import (
	"context"

	"github.com/kaosom/zipquote/internal/domain/entities"
)

// ILocalEstimateStore is the on-device keyed collection of estimates.
//
// Contract:
//   - LoadAll returns an empty slice when nothing was ever stored
//   - ReplaceAll overwrites atomically; readers never observe a partial write
//   - Upsert replaces by id in place or appends, leaving other records untouched
//   - DeleteByID on a missing id is a no-op
//   - every write is durable before the call returns
type ILocalEstimateStore interface {
	LoadAll(ctx context.Context) ([]entities.Estimate, error)
	ReplaceAll(ctx context.Context, list []entities.Estimate) error
	Upsert(ctx context.Context, e entities.Estimate) error
	DeleteByID(ctx context.Context, id string) error
}

package interfaces

import (
	"context"

	"github.com/kaosom/zipquote/internal/domain/entities"
)

// IAccountEstimateStore is the server-side view of the remote collection: the
// device contract plus the single-record lookups the HTTP API needs.
//
// Get returns found=false when the id does not exist. Lookups of an id owned by
// another account fail with a RemoteError of kind unauthorized.
type IAccountEstimateStore interface {
	FetchAll(ctx context.Context, userID string) ([]entities.Estimate, error)
	Upsert(ctx context.Context, userID string, e entities.Estimate) error
	DeleteByID(ctx context.Context, userID string, id string) error
	Get(ctx context.Context, userID, id string) (entities.Estimate, bool, error)
	Count(ctx context.Context, userID string) (int, error)
	Exists(ctx context.Context, userID, id string) (bool, error)
}

package interfaces

import (
	"context"

	"github.com/kaosom/zipquote/internal/domain/entities"
)

// IRemoteEstimateStore is the account-scoped estimate collection.
//
// Every call requires a resolved user id; an empty one is a programming error.
// Failures are *entities.RemoteError.
type IRemoteEstimateStore interface {
	FetchAll(ctx context.Context, userID string) ([]entities.Estimate, error)
	Upsert(ctx context.Context, userID string, e entities.Estimate) error
	DeleteByID(ctx context.Context, userID string, id string) error
}

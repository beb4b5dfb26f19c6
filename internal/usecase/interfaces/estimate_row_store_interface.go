package interfaces

import (
	"context"

	"github.com/kaosom/zipquote/internal/domain/entities"
)

// EstimateHeader is an estimate row without its items plus the owning account.
type EstimateHeader struct {
	OwnerID  string
	Estimate entities.Estimate
}

// IEstimateRowStore abstracts the row-level CRUD surface backing the remote store:
// an estimates collection plus a child items collection keyed by estimate id.
//
// GetHeader returns found=false (and no error) when the id does not exist.
// Delete operations treat missing rows as success.
type IEstimateRowStore interface {
	ListHeadersByOwner(ctx context.Context, ownerID string) ([]EstimateHeader, error)
	GetHeader(ctx context.Context, id string) (EstimateHeader, bool, error)
	UpsertHeader(ctx context.Context, h EstimateHeader) error
	DeleteHeader(ctx context.Context, id string) error
	ListItems(ctx context.Context, estimateID string) ([]entities.LineItem, error)
	DeleteItemsByEstimate(ctx context.Context, estimateID string) error
	InsertItems(ctx context.Context, estimateID string, items []entities.LineItem) error
}

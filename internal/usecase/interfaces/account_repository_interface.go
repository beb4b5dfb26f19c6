package interfaces

import (
	"context"

	"github.com/kaosom/zipquote/internal/domain/entities"
)

// IAccountRepository abstracts persistence for account profiles.
// GetByID returns a zero Account (empty ID) when not found.
type IAccountRepository interface {
	Create(ctx context.Context, a entities.Account) (entities.Account, error)
	GetByID(ctx context.Context, id string) (entities.Account, error)
	SetPremium(ctx context.Context, id string, premium bool) (entities.Account, error)
}

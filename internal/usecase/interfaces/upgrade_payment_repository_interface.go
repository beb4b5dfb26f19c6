package interfaces

import (
	"context"

	"github.com/kaosom/zipquote/internal/domain/entities"
)

// IUpgradePaymentRepository abstracts persistence for premium upgrade payments.
type IUpgradePaymentRepository interface {
	Create(ctx context.Context, p entities.UpgradePayment) (entities.UpgradePayment, error)
	ListByAccountID(ctx context.Context, accountID string) ([]entities.UpgradePayment, error)
}

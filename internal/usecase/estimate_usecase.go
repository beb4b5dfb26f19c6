package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/kaosom/zipquote/internal/domain/entities"
	"github.com/kaosom/zipquote/internal/infrastructure/logging"
	"github.com/kaosom/zipquote/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound  = errors.New("estimate not found")
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
)

// IEstimateUseCase exposes the account-scoped estimate operations behind the
// HTTP API. Every call is made on behalf of the authenticated userID.
type IEstimateUseCase interface {
	ListByUser(ctx context.Context, userID string) ([]entities.Estimate, error)
	GetByID(ctx context.Context, userID, id string) (entities.Estimate, error)
	Save(ctx context.Context, userID string, e entities.Estimate) (saved entities.Estimate, created bool, err error)
	Delete(ctx context.Context, userID, id string) error
	Quota(ctx context.Context, userID string) (entities.QuotaStatus, error)
}

type EstimateUseCase struct {
	store    interfaces.IAccountEstimateStore
	accounts interfaces.IAccountRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(store interfaces.IAccountEstimateStore, accounts interfaces.IAccountRepository) *EstimateUseCase {
	return &EstimateUseCase{store: store, accounts: accounts}
}

func (u *EstimateUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Estimate, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.store.FetchAll(ctx, userID)
}

func (u *EstimateUseCase) GetByID(ctx context.Context, userID, id string) (entities.Estimate, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Estimate{}, ErrInvalidUserID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, found, err := u.store.Get(ctx, userID, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if !found {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

// Save upserts the estimate. New ids go through the quota gate with the
// account's premium flag; updates are never limited.
func (u *EstimateUseCase) Save(ctx context.Context, userID string, e entities.Estimate) (entities.Estimate, bool, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Estimate{}, false, ErrInvalidUserID
	}

	e = e.Clone()
	e.Normalize()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if err := entities.Validate(e); err != nil {
		return entities.Estimate{}, false, err
	}

	exists, err := u.store.Exists(ctx, userID, e.ID)
	if err != nil {
		return entities.Estimate{}, false, err
	}
	if !exists {
		status, err := u.Quota(ctx, userID)
		if err != nil {
			return entities.Estimate{}, false, err
		}
		if !status.CanCreate {
			logging.Component("estimates").WithField("user_id", userID).WithField("count", status.Count).
				Info("quota gate denied new estimate")
			return entities.Estimate{}, false, entities.ErrFreeQuotaExceeded
		}
	}

	if err := u.store.Upsert(ctx, userID, e); err != nil {
		return entities.Estimate{}, false, err
	}
	return e, !exists, nil
}

func (u *EstimateUseCase) Delete(ctx context.Context, userID, id string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrInvalidUserID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEstimateID
	}
	return u.store.DeleteByID(ctx, userID, id)
}

// Quota counts the caller's estimates; accounts without a profile row are free.
func (u *EstimateUseCase) Quota(ctx context.Context, userID string) (entities.QuotaStatus, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.QuotaStatus{}, ErrInvalidUserID
	}

	count, err := u.store.Count(ctx, userID)
	if err != nil {
		return entities.QuotaStatus{}, err
	}
	premium := false
	if u.accounts != nil {
		acct, err := u.accounts.GetByID(ctx, userID)
		if err != nil {
			return entities.QuotaStatus{}, err
		}
		premium = acct.Premium
	}
	return entities.NewQuotaStatus(count, premium), nil
}

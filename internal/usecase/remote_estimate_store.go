package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/kaosom/zipquote/internal/domain/entities"
	"github.com/kaosom/zipquote/internal/infrastructure/logging"
	"github.com/kaosom/zipquote/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// RemoteEstimateStore is the account-scoped estimate collection built on top of
// the row-level store (an estimates table plus a child items table).
//
// Upsert is three independent writes: header, delete items, insert items. A
// failure after the header write leaves the estimate with fewer (or zero)
// items until the next successful upsert, which repairs it. Delete removes the
// items before the header, so a failed header delete leaves an empty header
// that a repeated delete removes.
type RemoteEstimateStore struct {
	rows interfaces.IEstimateRowStore
	log  *logrus.Entry
}

var (
	_ interfaces.IRemoteEstimateStore  = (*RemoteEstimateStore)(nil)
	_ interfaces.IAccountEstimateStore = (*RemoteEstimateStore)(nil)
)

func NewRemoteEstimateStore(rows interfaces.IEstimateRowStore) *RemoteEstimateStore {
	return &RemoteEstimateStore{rows: rows, log: logging.Component("remote_store")}
}

// FetchAll returns the caller's estimates oldest first, with items in display
// order. Totals that do not match the items are recomputed.
func (s *RemoteEstimateStore) FetchAll(ctx context.Context, userID string) ([]entities.Estimate, error) {
	mustUserID(userID)

	headers, err := s.rows.ListHeadersByOwner(ctx, userID)
	if err != nil {
		return nil, asRemoteError("fetch_all", err)
	}

	out := make([]entities.Estimate, 0, len(headers))
	for _, h := range headers {
		e, err := s.assemble(ctx, h)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Get returns a single estimate owned by userID; found is false when the id does
// not exist.
func (s *RemoteEstimateStore) Get(ctx context.Context, userID, id string) (entities.Estimate, bool, error) {
	mustUserID(userID)

	h, found, err := s.rows.GetHeader(ctx, id)
	if err != nil {
		return entities.Estimate{}, false, asRemoteError("get", err)
	}
	if !found {
		return entities.Estimate{}, false, nil
	}
	if h.OwnerID != userID {
		return entities.Estimate{}, false, notOwned("get", id)
	}
	e, err := s.assemble(ctx, h)
	if err != nil {
		return entities.Estimate{}, false, err
	}
	return e, true, nil
}

// Count returns how many estimates userID owns without loading items.
// The owner listing is eventually consistent, so a header written moments ago
// may not be counted yet; the quota gate can briefly admit one extra create
// under concurrent saves from several devices. Exists reads consistently.
func (s *RemoteEstimateStore) Count(ctx context.Context, userID string) (int, error) {
	mustUserID(userID)

	headers, err := s.rows.ListHeadersByOwner(ctx, userID)
	if err != nil {
		return 0, asRemoteError("count", err)
	}
	return len(headers), nil
}

// Exists reports whether id is already stored for userID. An id owned by
// another account is reported as unauthorized.
func (s *RemoteEstimateStore) Exists(ctx context.Context, userID, id string) (bool, error) {
	mustUserID(userID)

	h, found, err := s.rows.GetHeader(ctx, id)
	if err != nil {
		return false, asRemoteError("exists", err)
	}
	if found && h.OwnerID != userID {
		return false, notOwned("exists", id)
	}
	return found, nil
}

func (s *RemoteEstimateStore) Upsert(ctx context.Context, userID string, e entities.Estimate) error {
	mustUserID(userID)
	log := s.log.WithFields(logrus.Fields{"user_id": userID, "estimate_id": e.ID})

	existing, found, err := s.rows.GetHeader(ctx, e.ID)
	if err != nil {
		return asRemoteError("upsert", err)
	}
	if found && existing.OwnerID != userID {
		return notOwned("upsert", e.ID)
	}

	e = e.Clone()
	if !e.HasConsistentTotals() {
		e.Recompute()
	}

	header := e
	header.Items = nil
	if err := s.rows.UpsertHeader(ctx, interfaces.EstimateHeader{OwnerID: userID, Estimate: header}); err != nil {
		log.WithError(err).Error("upsert header failed")
		return asRemoteError("upsert", err)
	}
	if err := s.rows.DeleteItemsByEstimate(ctx, e.ID); err != nil {
		log.WithError(err).Error("clearing items failed, previous items kept")
		return asRemoteError("upsert", err)
	}
	if len(e.Items) == 0 {
		return nil
	}
	if err := s.rows.InsertItems(ctx, e.ID, e.Items); err != nil {
		log.WithError(err).Error("inserting items failed, estimate stored without items")
		return asRemoteError("upsert", err)
	}
	return nil
}

// DeleteByID treats an unknown id as success.
func (s *RemoteEstimateStore) DeleteByID(ctx context.Context, userID string, id string) error {
	mustUserID(userID)

	existing, found, err := s.rows.GetHeader(ctx, id)
	if err != nil {
		return asRemoteError("delete", err)
	}
	if found && existing.OwnerID != userID {
		return notOwned("delete", id)
	}

	if err := s.rows.DeleteItemsByEstimate(ctx, id); err != nil {
		return asRemoteError("delete", err)
	}
	if !found {
		return nil
	}
	if err := s.rows.DeleteHeader(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{"user_id": userID, "estimate_id": id}).WithError(err).
			Error("items deleted but header delete failed")
		return asRemoteError("delete", err)
	}
	return nil
}

func (s *RemoteEstimateStore) assemble(ctx context.Context, h interfaces.EstimateHeader) (entities.Estimate, error) {
	items, err := s.rows.ListItems(ctx, h.Estimate.ID)
	if err != nil {
		return entities.Estimate{}, asRemoteError("fetch_items", err)
	}
	e := h.Estimate
	e.Items = items
	if !e.HasConsistentTotals() {
		e.Recompute()
	}
	return e, nil
}

func mustUserID(userID string) {
	if userID == "" {
		panic("remote estimate store called without a user id")
	}
}

func notOwned(op, id string) error {
	return entities.NewRemoteError(entities.RemoteUnauthorized, op, fmt.Errorf("estimate %s belongs to another account", id))
}

func asRemoteError(op string, err error) error {
	var re *entities.RemoteError
	if errors.As(err, &re) {
		return err
	}
	return entities.NewRemoteError(entities.RemoteServerFault, op, err)
}

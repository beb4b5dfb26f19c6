package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/kaosom/zipquote/internal/domain/entities"
	"github.com/kaosom/zipquote/internal/infrastructure/logging"
	"github.com/kaosom/zipquote/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrMigrationInProgress = errors.New("migration already in progress")
	ErrNotAuthenticated    = errors.New("not authenticated")
)

// MigrationOffer tells the UI that local estimates can be uploaded after login.
type MigrationOffer struct {
	Available  bool
	LocalCount int
	Session    entities.Session
}

// MigrationResult reports how many local estimates reached the account.
type MigrationResult struct {
	Migrated int
	Total    int
}

// IEstimateSyncUseCase routes estimate operations to the device or the account
// depending on the session in effect when the operation starts.
type IEstimateSyncUseCase interface {
	List(ctx context.Context) ([]entities.Estimate, error)
	Get(ctx context.Context, id string) (entities.Estimate, error)
	Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	Delete(ctx context.Context, id string) error
	Quota(ctx context.Context) (entities.QuotaStatus, error)
	MigrateLocalToRemote(ctx context.Context) (MigrationResult, error)
	OnSessionChanged(ctx context.Context, ev entities.SessionChanged) (MigrationOffer, error)
}

type EstimateSyncUseCase struct {
	sessions ISessionResolver
	local    interfaces.ILocalEstimateStore
	remote   interfaces.IRemoteEstimateStore
	renderer interfaces.IDocumentRenderer

	migrating sync.Mutex
	log       *logrus.Entry
}

var _ IEstimateSyncUseCase = (*EstimateSyncUseCase)(nil)

// NewEstimateSyncUseCase wires the orchestrator; renderer may be nil.
func NewEstimateSyncUseCase(
	sessions ISessionResolver,
	local interfaces.ILocalEstimateStore,
	remote interfaces.IRemoteEstimateStore,
	renderer interfaces.IDocumentRenderer,
) *EstimateSyncUseCase {
	return &EstimateSyncUseCase{
		sessions: sessions,
		local:    local,
		remote:   remote,
		renderer: renderer,
		log:      logging.Component("sync"),
	}
}

func (u *EstimateSyncUseCase) List(ctx context.Context) ([]entities.Estimate, error) {
	s := u.sessions.CurrentSession(ctx)
	return u.load(ctx, s)
}

func (u *EstimateSyncUseCase) Get(ctx context.Context, id string) (entities.Estimate, error) {
	list, err := u.List(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	for _, e := range list {
		if e.ID == id {
			return e, nil
		}
	}
	return entities.Estimate{}, ErrEstimateNotFound
}

// Save normalizes and validates, applies the quota gate to new ids,
// renders the document and persists to the scope of the current session.
func (u *EstimateSyncUseCase) Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	e = e.Clone()
	e.Normalize()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if err := entities.Validate(e); err != nil {
		return entities.Estimate{}, err
	}

	s := u.sessions.CurrentSession(ctx)
	log := u.scopedLog(s).WithField("estimate_id", e.ID)

	existing, err := u.load(ctx, s)
	if err != nil {
		return entities.Estimate{}, err
	}
	if !containsID(existing, e.ID) {
		if d := entities.CanCreate(len(existing), s.Premium); !d.Allowed {
			log.WithField("count", len(existing)).Info("quota gate denied new estimate")
			return entities.Estimate{}, entities.ErrFreeQuotaExceeded
		}
	}

	if u.renderer != nil {
		doc, err := u.renderer.Render(ctx, e)
		if err != nil {
			log.WithError(err).Error("render document failed")
			return entities.Estimate{}, fmt.Errorf("render document: %w", err)
		}
		e.RenderedDocument = doc
	}

	if s.IsAnonymous() {
		if err := u.local.Upsert(ctx, e); err != nil {
			log.WithError(err).Error("local save failed")
			return entities.Estimate{}, err
		}
		return e, nil
	}
	if err := u.remote.Upsert(ctx, s.UserID, e); err != nil {
		log.WithError(err).Error("remote save failed")
		return entities.Estimate{}, err
	}
	return e, nil
}

func (u *EstimateSyncUseCase) Delete(ctx context.Context, id string) error {
	s := u.sessions.CurrentSession(ctx)
	log := u.scopedLog(s).WithField("estimate_id", id)

	if s.IsAnonymous() {
		if err := u.local.DeleteByID(ctx, id); err != nil {
			log.WithError(err).Error("local delete failed")
			return err
		}
		return nil
	}
	if err := u.remote.DeleteByID(ctx, s.UserID, id); err != nil {
		log.WithError(err).Error("remote delete failed")
		return err
	}
	return nil
}

func (u *EstimateSyncUseCase) Quota(ctx context.Context) (entities.QuotaStatus, error) {
	s := u.sessions.CurrentSession(ctx)
	list, err := u.load(ctx, s)
	if err != nil {
		return entities.QuotaStatus{}, err
	}
	return entities.NewQuotaStatus(len(list), s.Premium), nil
}

// MigrateLocalToRemote uploads every local estimate to the signed-in account in
// order and clears the device only after all of them were stored. The first
// failure stops the run and leaves the device untouched; running it again is
// safe because uploads are upserts.
func (u *EstimateSyncUseCase) MigrateLocalToRemote(ctx context.Context) (MigrationResult, error) {
	if !u.migrating.TryLock() {
		return MigrationResult{}, ErrMigrationInProgress
	}
	defer u.migrating.Unlock()

	s := u.sessions.CurrentSession(ctx)
	if s.IsAnonymous() {
		return MigrationResult{}, ErrNotAuthenticated
	}
	log := u.scopedLog(s)

	list, err := u.local.LoadAll(ctx)
	if err != nil {
		return MigrationResult{}, err
	}
	res := MigrationResult{Total: len(list)}
	if len(list) == 0 {
		return res, nil
	}

	for _, e := range list {
		e.Normalize()
		if err := u.remote.Upsert(ctx, s.UserID, e); err != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"estimate_id": e.ID,
				"migrated":    res.Migrated,
				"total":       res.Total,
			}).Error("migration halted, local estimates kept")
			return res, fmt.Errorf("migrate estimate %s: %w", e.ID, err)
		}
		res.Migrated++
	}

	if err := u.local.ReplaceAll(ctx, nil); err != nil {
		log.WithError(err).Error("estimates uploaded but local store could not be cleared")
		return res, err
	}
	log.WithField("migrated", res.Migrated).Info("local estimates migrated")
	return res, nil
}

// OnSessionChanged produces a migration offer on sign-in when the device holds
// estimates. It never migrates by itself, and signing out copies nothing back.
func (u *EstimateSyncUseCase) OnSessionChanged(ctx context.Context, ev entities.SessionChanged) (MigrationOffer, error) {
	if !ev.SignedIn() {
		return MigrationOffer{}, nil
	}
	list, err := u.local.LoadAll(ctx)
	if err != nil {
		return MigrationOffer{}, err
	}
	if len(list) == 0 {
		return MigrationOffer{}, nil
	}
	return MigrationOffer{Available: true, LocalCount: len(list), Session: ev.Current}, nil
}

// WatchSessions feeds provider events through OnSessionChanged until ctx is
// done or the channel closes. handle is called for every available offer.
func (u *EstimateSyncUseCase) WatchSessions(ctx context.Context, events <-chan entities.SessionChanged, handle func(MigrationOffer)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			offer, err := u.OnSessionChanged(ctx, ev)
			if err != nil {
				u.log.WithError(err).Warn("could not evaluate migration offer")
				continue
			}
			if offer.Available {
				handle(offer)
			}
		}
	}
}

func (u *EstimateSyncUseCase) load(ctx context.Context, s entities.Session) ([]entities.Estimate, error) {
	if s.IsAnonymous() {
		list, err := u.local.LoadAll(ctx)
		if err != nil {
			u.log.WithError(err).Error("local load failed")
			return nil, err
		}
		return list, nil
	}
	list, err := u.remote.FetchAll(ctx, s.UserID)
	if err != nil {
		u.scopedLog(s).WithError(err).Error("remote fetch failed")
		return nil, err
	}
	return list, nil
}

func (u *EstimateSyncUseCase) scopedLog(s entities.Session) *logrus.Entry {
	if s.IsAnonymous() {
		return u.log.WithField("scope", "local")
	}
	return u.log.WithFields(logrus.Fields{"scope": "remote", "user_id": s.UserID})
}

func containsID(list []entities.Estimate, id string) bool {
	for _, e := range list {
		if e.ID == id {
			return true
		}
	}
	return false
}

package usecase

import (
	"context"

	"github.com/kaosom/zipquote/internal/domain/entities"
	"github.com/kaosom/zipquote/internal/infrastructure/logging"
	"github.com/kaosom/zipquote/internal/usecase/interfaces"
)

// ISessionResolver answers "who is the current user" for the orchestrator.
type ISessionResolver interface {
	CurrentSession(ctx context.Context) entities.Session
}

// SessionResolver never caches: the provider is asked on every call so a login
// or logout is visible to the very next operation.
type SessionResolver struct {
	provider interfaces.ISessionProvider
}

var _ ISessionResolver = (*SessionResolver)(nil)

func NewSessionResolver(provider interfaces.ISessionProvider) *SessionResolver {
	return &SessionResolver{provider: provider}
}

// CurrentSession degrades to the anonymous session when the provider fails or
// reports an authenticated session without a user id.
func (r *SessionResolver) CurrentSession(ctx context.Context) entities.Session {
	if r.provider == nil {
		return entities.Anonymous()
	}

	s, err := r.provider.GetCurrentSession(ctx)
	if err != nil {
		logging.Component("session").WithError(err).Warn("session provider failed, continuing anonymously")
		return entities.Anonymous()
	}
	if s.IsAnonymous() {
		return entities.Anonymous()
	}
	return s
}

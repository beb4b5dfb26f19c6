package interfaces

import (
	"context"

	"github.com/kaosom/zipquote/internal/domain/entities"
)

// ISessionProvider is the external authentication provider as seen by the core.
// Login and logout happen outside the core; Subscribe delivers the transitions
// until ctx is cancelled, then closes the channel.
type ISessionProvider interface {
	GetCurrentSession(ctx context.Context) (entities.Session, error)
	Subscribe(ctx context.Context) (<-chan entities.SessionChanged, error)
}

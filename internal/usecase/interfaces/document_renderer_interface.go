package interfaces

import (
	"context"

	"github.com/kaosom/zipquote/internal/domain/entities"
)

// IDocumentRenderer turns a finalized estimate into an opaque artifact
// (stored as Estimate.RenderedDocument and never inspected by the core).
type IDocumentRenderer interface {
	Render(ctx context.Context, e entities.Estimate) (string, error)
}

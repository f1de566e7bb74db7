package driving

import (
	"context"

	"github.com/helicon-labs/minuta-cli/internal/core/domain"
)

// DocumentService serves direct by-id lookups with no filtering or
// scoring. Unknown ids surface domain.ErrNotFound, never a panic.
type DocumentService interface {
	// Get retrieves one document record by id.
	Get(ctx context.Context, documentID string) (*domain.Document, error)

	// List returns all loaded documents.
	List(ctx context.Context) ([]domain.Document, error)

	// Metadata returns the raw on-disk metadata record for a document.
	Metadata(ctx context.Context, documentID string) ([]byte, error)

	// Transcript returns the rendered transcript text.
	Transcript(ctx context.Context, documentID string) (string, error)

	// Notes returns the rendered notes text.
	Notes(ctx context.Context, documentID string) (string, error)
}

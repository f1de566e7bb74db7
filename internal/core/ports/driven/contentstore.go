package driven

import "context"

// ContentStore provides lazy reads of per-document content that is too
// large to hold in the catalog: rendered notes, rendered transcripts, and
// the raw metadata record. Implementations read from the sync directory
// and may cache.
type ContentStore interface {
	// Notes returns the rendered notes text, or domain.ErrNotFound when
	// the document has none.
	Notes(ctx context.Context, documentID string) (string, error)

	// Transcript returns the rendered transcript text, or
	// domain.ErrNotFound when the document has none.
	Transcript(ctx context.Context, documentID string) (string, error)

	// RawMetadata returns the document's metadata record bytes as stored
	// on disk, or domain.ErrNotFound.
	RawMetadata(ctx context.Context, documentID string) ([]byte, error)
}

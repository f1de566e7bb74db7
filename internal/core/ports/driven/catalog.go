package driven

import (
	"context"

	"github.com/helicon-labs/minuta-cli/internal/core/domain"
	"github.com/helicon-labs/minuta-cli/internal/core/index"
)

// Catalog is the single owned holder of the loaded document map and the
// five indexes. Lookup methods return fresh set snapshots; implementations
// must guarantee that a query never observes documents and indexes from
// different refresh generations.
type Catalog interface {
	// Document returns one document by id, or domain.ErrNotFound.
	Document(ctx context.Context, id string) (*domain.Document, error)

	// Documents returns a snapshot copy of all loaded documents.
	Documents(ctx context.Context) []domain.Document

	// Universe returns the full loaded document-id set.
	Universe() index.Set

	// AttendeeMatches unions the id sets of attendee emails containing
	// the substring (case-insensitive).
	AttendeeMatches(substr string) index.Set

	// Workspace returns the id set for an exact workspace id.
	Workspace(id string) index.Set

	// FolderMatches unions the id sets of folder names containing the
	// substring (case-insensitive).
	FolderMatches(substr string) index.Set

	// TitleTokenMatches unions the id sets of title tokens containing
	// the substring (case-insensitive).
	TitleTokenMatches(substr string) index.Set

	// ReplaceEnrichment overwrites every document's enrichment attachment
	// from the mapping (documents with no entry revert to empty) and
	// rebuilds the attendee index, atomically with respect to queries.
	// The four enrichment-independent indexes are left untouched.
	ReplaceEnrichment(ctx context.Context, data map[string]domain.Enrichment) domain.RefreshStats

	// Stats returns the current aggregate counts.
	Stats() domain.RefreshStats
}

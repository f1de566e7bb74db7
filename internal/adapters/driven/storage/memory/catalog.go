// Package memory holds the in-memory catalog: the loaded document map
// plus the five indexes, behind a single RWMutex. The index lives only
// for the process lifetime and is rebuilt from disk on startup.
package memory

import (
	"context"
	"sync"

	"github.com/helicon-labs/minuta-cli/internal/core/domain"
	"github.com/helicon-labs/minuta-cli/internal/core/index"
	"github.com/helicon-labs/minuta-cli/internal/core/ports/driven"
)

// Ensure Catalog implements the interface.
var _ driven.Catalog = (*Catalog)(nil)

// Catalog is the in-memory implementation of driven.Catalog.
//
// One mutex guards both the document map and the index, so a refresh's
// attachment overwrite and attendee-index rebuild are observed together:
// queries see the pre-refresh state in full or the post-refresh state in
// full, never a mix.
type Catalog struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
	idx       *index.Index
}

// NewCatalog builds a catalog and its indexes from the loaded document
// set in a single pass.
func NewCatalog(docs []domain.Document) *Catalog {
	documents := make(map[string]domain.Document, len(docs))
	for i := range docs {
		documents[docs[i].ID] = docs[i]
	}
	return &Catalog{
		documents: documents,
		idx:       index.Build(docs),
	}
}

// Document retrieves a document by ID.
func (c *Catalog) Document(_ context.Context, id string) (*domain.Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	doc, ok := c.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// Documents returns a snapshot copy of all loaded documents.
func (c *Catalog) Documents(_ context.Context) []domain.Document {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

// Universe returns the full loaded document-id set.
func (c *Catalog) Universe() index.Set {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.idx.Universe()
}

// AttendeeMatches unions the id sets of attendee emails containing substr.
func (c *Catalog) AttendeeMatches(substr string) index.Set {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.idx.AttendeeMatches(substr)
}

// Workspace returns the id set for an exact workspace id.
func (c *Catalog) Workspace(id string) index.Set {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.idx.Workspace(id)
}

// FolderMatches unions the id sets of folder names containing substr.
func (c *Catalog) FolderMatches(substr string) index.Set {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.idx.FolderMatches(substr)
}

// TitleTokenMatches unions the id sets of title tokens containing substr.
func (c *Catalog) TitleTokenMatches(substr string) index.Set {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.idx.TitleTokenMatches(substr)
}

// ReplaceEnrichment overwrites every document's enrichment attachment
// from data and rebuilds the attendee index under the write lock.
// Documents without an entry revert to an empty attachment. The document
// set itself never changes here: ids added to or removed from disk since
// the initial load are not picked up.
func (c *Catalog) ReplaceEnrichment(_ context.Context, data map[string]domain.Enrichment) domain.RefreshStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, doc := range c.documents {
		doc.Enrichment = data[id]
		c.documents[id] = doc
	}
	c.idx.RebuildAttendees(c.snapshotLocked())

	return c.statsLocked()
}

// Stats returns the current aggregate counts.
func (c *Catalog) Stats() domain.RefreshStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.statsLocked()
}

func (c *Catalog) snapshotLocked() []domain.Document {
	docs := make([]domain.Document, 0, len(c.documents))
	for id := range c.documents {
		docs = append(docs, c.documents[id])
	}
	return docs
}

func (c *Catalog) statsLocked() domain.RefreshStats {
	stats := domain.RefreshStats{TotalDocuments: len(c.documents)}
	unique := make(map[string]struct{})
	for id := range c.documents {
		doc := c.documents[id]
		if doc.HasAttendees() {
			stats.DocumentsWithAttendees++
		}
		for _, a := range doc.Enrichment.Attendees {
			if a.Email != "" {
				unique[a.Email] = struct{}{}
			}
		}
	}
	stats.UniqueAttendees = len(unique)
	return stats
}

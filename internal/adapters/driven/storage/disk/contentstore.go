// Package disk reads lazily-loaded per-document content (rendered notes,
// rendered transcripts, raw metadata) from the sync directory.
//
// Content is only touched at query time, so reads go through a small TTL
// cache: a content query can fan out over many candidates and would
// otherwise hit the disk once per candidate per query.
package disk

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/helicon-labs/minuta-cli/internal/core/domain"
	"github.com/helicon-labs/minuta-cli/internal/core/ports/driven"
	"github.com/helicon-labs/minuta-cli/internal/syncdir"
)

// Ensure ContentStore implements the interface.
var _ driven.ContentStore = (*ContentStore)(nil)

// DefaultCacheTTL is the cache lifetime applied when none is configured.
const DefaultCacheTTL = 5 * time.Minute

// ContentStore is a disk-backed driven.ContentStore rooted at the sync
// directory.
type ContentStore struct {
	root  string
	cache *gocache.Cache
}

// NewContentStore creates a content store over the sync root. ttl bounds
// how long file contents are served from memory; values at or below zero
// use DefaultCacheTTL.
func NewContentStore(root string, ttl time.Duration) *ContentStore {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ContentStore{
		root:  root,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Notes returns the rendered notes text for a document.
func (s *ContentStore) Notes(_ context.Context, documentID string) (string, error) {
	return s.readText(documentID, syncdir.NotesFile)
}

// Transcript returns the rendered transcript text for a document.
func (s *ContentStore) Transcript(_ context.Context, documentID string) (string, error) {
	return s.readText(documentID, syncdir.TranscriptFile)
}

// RawMetadata returns the document's metadata record bytes.
func (s *ContentStore) RawMetadata(_ context.Context, documentID string) ([]byte, error) {
	text, err := s.readText(documentID, syncdir.MetadataFile)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// readText loads one per-document file through the cache. Absent files
// map to domain.ErrNotFound; absence is cached too, since repeated
// content queries probe the same missing transcripts.
func (s *ContentStore) readText(documentID, file string) (string, error) {
	key := documentID + "/" + file
	if cached, ok := s.cache.Get(key); ok {
		if cached == nil {
			return "", fmt.Errorf("%s for %s: %w", file, documentID, domain.ErrNotFound)
		}
		return cached.(string), nil
	}

	raw, err := os.ReadFile(filepath.Join(s.root, documentID, file))
	if err != nil {
		if os.IsNotExist(err) {
			s.cache.SetDefault(key, nil)
			return "", fmt.Errorf("%s for %s: %w", file, documentID, domain.ErrNotFound)
		}
		return "", fmt.Errorf("read %s for %s: %w", file, documentID, err)
	}

	text := string(raw)
	s.cache.SetDefault(key, text)
	return text, nil
}

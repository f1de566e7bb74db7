// Package syncdir loads the in-memory document set from the local sync
// directory. Each immediate subdirectory of the root is one document; the
// subdirectory name is the document id.
//
// Per-record failures are isolated: a missing metadata file skips the
// subdirectory silently, a malformed one skips it with a warning. Only a
// root that cannot be enumerated aborts the load, since no documents can
// be served without it.
package syncdir

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/helicon-labs/minuta-cli/internal/core/domain"
	"github.com/helicon-labs/minuta-cli/internal/core/ports/driven"
	"github.com/helicon-labs/minuta-cli/internal/logger"
)

// Loader reads per-document metadata records and merges in enrichment
// data from the external cache.
type Loader struct {
	root        string
	enrichment  driven.EnrichmentSource
	concurrency int
}

// NewLoader creates a loader over the sync root. concurrency bounds the
// metadata-read fan-out; values below 1 default to half the CPU count,
// minimum 1. Index construction is order-independent, so the parallel
// load does not affect correctness.
func NewLoader(root string, enrichment driven.EnrichmentSource, concurrency int) *Loader {
	if concurrency < 1 {
		concurrency = runtime.NumCPU() / 2
		if concurrency < 1 {
			concurrency = 1
		}
	}
	return &Loader{root: root, enrichment: enrichment, concurrency: concurrency}
}

// Load enumerates the sync root and produces the full document set.
// It fails only when the root itself cannot be enumerated
// (domain.ErrSyncDirUnavailable); everything else degrades per record.
func (l *Loader) Load(ctx context.Context) ([]domain.Document, error) {
	logger.Section("Document Load")

	entries, err := os.ReadDir(l.root)
	if err != nil {
		return nil, fmt.Errorf("%w: enumerating %s: %v", domain.ErrSyncDirUnavailable, l.root, err)
	}

	enrich := l.loadEnrichment(ctx)

	pool, err := ants.NewPool(l.concurrency)
	if err != nil {
		return nil, fmt.Errorf("create loader pool: %w", err)
	}
	defer pool.Release()

	var (
		mu   sync.Mutex
		docs []domain.Document
		wg   sync.WaitGroup
	)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id := entry.Name()

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			doc := l.loadOne(id)
			if doc == nil {
				return
			}
			doc.Enrichment = enrich[id]
			mu.Lock()
			docs = append(docs, *doc)
			mu.Unlock()
		})
		if submitErr != nil {
			// Pool rejected the task (released or overloaded); fall back
			// to loading inline.
			wg.Done()
			if doc := l.loadOne(id); doc != nil {
				doc.Enrichment = enrich[id]
				mu.Lock()
				docs = append(docs, *doc)
				mu.Unlock()
			}
		}
	}

	wg.Wait()

	logger.Info("Loaded %d documents from %s", len(docs), l.root)
	return docs, nil
}

// loadEnrichment reads the external cache, degrading to no enrichment on
// a recoverable parse failure.
func (l *Loader) loadEnrichment(ctx context.Context) map[string]domain.Enrichment {
	if l.enrichment == nil {
		return map[string]domain.Enrichment{}
	}
	enrich, err := l.enrichment.Load(ctx)
	if err != nil {
		logger.Warn("Continuing without enrichment: %v", err)
		return map[string]domain.Enrichment{}
	}
	logger.Debug("Enrichment entries available: %d", len(enrich))
	return enrich
}

// loadOne reads a single document's metadata record. Returns nil when
// the subdirectory should be skipped.
func (l *Loader) loadOne(id string) *domain.Document {
	raw, err := os.ReadFile(filepath.Join(l.root, id, MetadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			// Not every subdirectory is a document.
			logger.Debug("No metadata record in %s, skipping", id)
			return nil
		}
		logger.Warn("Skipping %s: %v", id, err)
		return nil
	}

	doc, err := decodeMetadata(raw, id)
	if err != nil {
		logger.Warn("Skipping %s: %v", id, err)
		return nil
	}

	if doc.MeetingDate == nil {
		doc.MeetingDate = l.meetingDateFromTranscript(id)
	}

	return doc
}

// meetingDateFromTranscript derives the meeting instant from the first
// transcript utterance when the metadata record does not carry one.
// Returns nil when there is no usable transcript; the document then
// falls back to its creation instant.
func (l *Loader) meetingDateFromTranscript(id string) *time.Time {
	raw, err := os.ReadFile(filepath.Join(l.root, id, UtterancesFile))
	if err != nil {
		return nil
	}
	return firstUtteranceStart(raw)
}

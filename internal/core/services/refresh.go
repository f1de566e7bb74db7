package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/helicon-labs/minuta-cli/internal/core/domain"
	"github.com/helicon-labs/minuta-cli/internal/core/ports/driven"
	"github.com/helicon-labs/minuta-cli/internal/core/ports/driving"
	"github.com/helicon-labs/minuta-cli/internal/logger"
)

// Ensure RefreshService implements the interface.
var _ driving.RefreshService = (*RefreshService)(nil)

// RefreshService re-derives enrichment data without reloading documents
// from disk. It is the sole mutator of shared state after initialization.
type RefreshService struct {
	mu      sync.Mutex
	catalog driven.Catalog
	source  driven.EnrichmentSource
}

// NewRefreshService creates a new refresh coordinator.
func NewRefreshService(catalog driven.Catalog, source driven.EnrichmentSource) *RefreshService {
	return &RefreshService{catalog: catalog, source: source}
}

// Refresh re-reads the enrichment cache, overwrites every document's
// enrichment attachment, and rebuilds the attendee index. The date,
// workspace, folder, and token indexes do not depend on enrichment and
// stay untouched. Documents added to or removed from disk since the last
// full load are not reflected.
//
// A cache parse failure keeps prior state intact and reports
// domain.ErrRefreshFailed. A refresh racing another returns
// domain.ErrRefreshInProgress.
func (s *RefreshService) Refresh(ctx context.Context) (domain.RefreshStats, error) {
	if !s.mu.TryLock() {
		return domain.RefreshStats{}, domain.ErrRefreshInProgress
	}
	defer s.mu.Unlock()

	logger.Section("Enrichment Refresh")

	data, err := s.source.Load(ctx)
	if err != nil {
		logger.Warn("Refresh aborted, keeping existing enrichment: %v", err)
		return s.catalog.Stats(), fmt.Errorf("%w: %v", domain.ErrRefreshFailed, err)
	}

	stats := s.catalog.ReplaceEnrichment(ctx, data)
	logger.Info("Refresh complete: %d documents, %d with attendees, %d unique attendees",
		stats.TotalDocuments, stats.DocumentsWithAttendees, stats.UniqueAttendees)
	return stats, nil
}

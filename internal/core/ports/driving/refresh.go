package driving

import (
	"context"

	"github.com/helicon-labs/minuta-cli/internal/core/domain"
)

// RefreshService re-derives enrichment data and the attendee index
// without reloading documents from disk.
type RefreshService interface {
	// Refresh re-reads the enrichment cache and swaps every document's
	// enrichment attachment in one atomic step. On a cache parse failure
	// the prior state is kept and domain.ErrRefreshFailed is returned.
	// Concurrent refreshes are serialized.
	Refresh(ctx context.Context) (domain.RefreshStats, error)
}

package driving

import (
	"context"

	"github.com/helicon-labs/minuta-cli/internal/core/domain"
)

// SearchService resolves structured queries against the loaded corpus.
type SearchService interface {
	// Search intersects the query's filters, scores the surviving
	// candidates, and returns a ranked, bounded result.
	Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResult, error)
}

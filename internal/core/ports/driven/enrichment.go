package driven

import (
	"context"

	"github.com/helicon-labs/minuta-cli/internal/core/domain"
)

// EnrichmentSource re-reads the external participant cache.
//
// A non-nil error means the cache could not be read or parsed; the
// mapping is then empty. Callers decide whether that is recoverable (the
// initial load continues without enrichment) or a failure (a refresh
// keeps prior state).
type EnrichmentSource interface {
	Load(ctx context.Context) (map[string]domain.Enrichment, error)
}

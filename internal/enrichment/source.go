package enrichment

import (
	"context"

	"github.com/helicon-labs/minuta-cli/internal/core/domain"
	"github.com/helicon-labs/minuta-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.EnrichmentSource = (*Source)(nil)

// Source is a file-backed driven.EnrichmentSource reading the cache at a
// fixed path.
type Source struct {
	path string
}

// NewSource creates an enrichment source for the cache file at path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Load re-reads and parses the cache file.
func (s *Source) Load(_ context.Context) (map[string]domain.Enrichment, error) {
	return ParseFile(s.path)
}

// Path returns the watched cache file path.
func (s *Source) Path() string {
	return s.path
}

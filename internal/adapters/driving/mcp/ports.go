package mcp

import (
	"github.com/helicon-labs/minuta-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search resolves structured queries.
	Search driving.SearchService

	// Document serves direct by-id lookups.
	Document driving.DocumentService

	// Refresh re-derives enrichment data. Optional; without it the
	// refresh tool is not registered.
	Refresh driving.RefreshService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Document == nil {
		return ErrMissingDocumentService
	}
	return nil
}

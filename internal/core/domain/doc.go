// Package domain defines the core business entities for Minuta.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A synced meeting document with metadata and enrichment
//   - Enrichment: Participant and conference data merged from the cache
//   - SearchQuery / SearchResult: The query surface value objects
//   - RefreshStats: Aggregate counts returned by a refresh
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Catalog: The owned in-memory document map plus the five indexes
//   - ContentStore: Lazy reads of rendered notes, transcripts, and raw metadata
//   - EnrichmentSource: Re-reads of the external participant cache
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain and index packages only
//   - Cannot Import: Any adapter package
package driven

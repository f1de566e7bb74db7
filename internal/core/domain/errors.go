package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested document, transcript, or notes
	// file does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSyncDirUnavailable indicates the sync root directory cannot be
	// enumerated. This is the one fatal initialization failure: no
	// documents can be served without it.
	ErrSyncDirUnavailable = errors.New("sync directory unavailable")

	// ErrRefreshInProgress indicates a refresh is already running.
	ErrRefreshInProgress = errors.New("refresh in progress")

	// ErrRefreshFailed indicates the enrichment cache could not be
	// re-parsed. Existing documents and indexes are left untouched.
	ErrRefreshFailed = errors.New("refresh failed")

	// ErrUnsupportedDateExpr indicates a date expression the resolver
	// does not understand.
	ErrUnsupportedDateExpr = errors.New("unsupported date expression")
)

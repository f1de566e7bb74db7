// Package index builds and queries the five in-memory lookup structures
// derived from the loaded document set: attendee email, calendar day,
// workspace id, folder name, and title token.
//
// Each index maps a normalized key to the set of document ids matching
// that key. Lookup methods return fresh Set values so callers can
// intersect and union without affecting the index or other queries.
//
// The index is not internally synchronized. The owning catalog guards it
// together with the document map behind a single RWMutex so queries never
// observe a half-rebuilt attendee index during a refresh.
package index

// Package enrichment parses the external, loosely-structured cache file
// that carries participant and conference data per document.
//
// The file is produced by a third party and its schema drifts between
// versions, so the parser is deliberately tolerant: it accepts several
// top-level shapes and tries an ordered list of alias names for each
// logical field, first present value winning. A malformed entry is
// skipped without aborting the rest of the parse.
package enrichment

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/helicon-labs/minuta-cli/internal/core/domain"
	"github.com/helicon-labs/minuta-cli/internal/logger"
)

// Ordered alias tables, tried in sequence per logical field.
var (
	idAliases         = []string{"id", "document_id", "documentId", "meeting_id", "meetingId", "doc_id"}
	attendeesAliases  = []string{"attendees", "participants", "invitees", "people"}
	emailAliases      = []string{"email", "email_address", "emailAddress"}
	nameAliases       = []string{"display_name", "displayName", "name", "full_name", "fullName"}
	organizerAliases  = []string{"organizer", "is_organizer", "isOrganizer", "self"}
	rsvpAliases       = []string{"response_status", "responseStatus", "rsvp", "status"}
	conferenceAliases = []string{"conference_data", "conferenceData", "conference", "entry_points", "entryPoints", "entry_point"}
	entryPointAliases = []string{"entry_points", "entryPoints", "entry_point"}
	uriAliases        = []string{"uri", "url", "link", "join_url", "joinUrl"}
	platformAliases   = []string{"platform", "label", "conference_solution", "conferenceSolution"}
	calendarAliases   = []string{"calendar_id", "calendarId", "calendar"}

	// Top-level field names an entry collection may be nested under.
	collectionAliases = []string{"documents", "meetings", "events", "entries", "items", "results", "data", "state"}
)

// ParseFile reads the cache file and extracts a mapping from document id
// to enrichment data.
//
// The returned error is a recoverable diagnostic, set when the file is
// absent, unreadable, or not valid JSON; the mapping is then empty. The
// initial load logs it and continues with no enrichment, while a refresh
// treats it as a failed refresh and keeps prior state.
func ParseFile(path string) (map[string]domain.Enrichment, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return map[string]domain.Enrichment{}, fmt.Errorf("read enrichment cache %s: %w", path, err)
	}

	var root any
	if err := json.Unmarshal(raw, &root); err != nil {
		return map[string]domain.Enrichment{}, fmt.Errorf("parse enrichment cache %s: %w", path, err)
	}

	out := make(map[string]domain.Enrichment)
	collectEntries(root, out, 0)
	logger.Debug("Enrichment cache %s: %d entries", path, len(out))
	return out, nil
}

// collectEntries walks a decoded JSON value looking for enrichment
// entries. depth bounds recursion into named collection fields.
func collectEntries(node any, out map[string]domain.Enrichment, depth int) {
	switch v := node.(type) {
	case []any:
		for _, item := range v {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			addEntry(entry, "", out)
		}

	case map[string]any:
		// An object may itself be a map from document id to entry.
		if looksLikeEntryMap(v) {
			for key, item := range v {
				entry, ok := item.(map[string]any)
				if !ok {
					continue
				}
				addEntry(entry, key, out)
			}
			return
		}

		// Otherwise the collection may hang off a named field.
		if depth >= 2 {
			return
		}
		for _, alias := range collectionAliases {
			if nested, ok := v[alias]; ok {
				collectEntries(nested, out, depth+1)
			}
		}
	}
}

// looksLikeEntryMap reports whether every value of the map is an object,
// i.e. the map is keyed by document id rather than being a wrapper with
// named fields.
func looksLikeEntryMap(m map[string]any) bool {
	if len(m) == 0 {
		return false
	}
	for key, v := range m {
		if _, ok := v.(map[string]any); !ok {
			return false
		}
		// Wrapper objects reuse known collection field names.
		for _, alias := range collectionAliases {
			if key == alias {
				return false
			}
		}
	}
	return true
}

// addEntry parses a single entry. fallbackID is the map key the entry was
// found under, used when the entry carries no id field of its own.
func addEntry(entry map[string]any, fallbackID string, out map[string]domain.Enrichment) {
	id := stringField(entry, idAliases)
	if id == "" {
		id = fallbackID
	}
	if id == "" {
		logger.Debug("Skipping enrichment entry with no document id")
		return
	}

	e := domain.Enrichment{
		CalendarID: stringField(entry, calendarAliases),
	}

	if rawList, ok := listField(entry, attendeesAliases); ok {
		for _, item := range rawList {
			attendee, ok := item.(map[string]any)
			if !ok {
				continue
			}
			a := domain.Attendee{
				Email:     strings.ToLower(stringField(attendee, emailAliases)),
				Name:      stringField(attendee, nameAliases),
				Organizer: boolField(attendee, organizerAliases),
				RSVP:      stringField(attendee, rsvpAliases),
			}
			if a.Email == "" && a.Name == "" {
				continue
			}
			e.Attendees = append(e.Attendees, a)
		}
	}

	e.Conference = parseConference(entry)

	out[id] = e
}

// parseConference extracts the first usable conference entry point, if any.
func parseConference(entry map[string]any) *domain.Conference {
	for _, alias := range conferenceAliases {
		raw, ok := entry[alias]
		if !ok {
			continue
		}
		if c := conferenceFrom(raw); c != nil {
			return c
		}
	}
	return nil
}

func conferenceFrom(raw any) *domain.Conference {
	switch v := raw.(type) {
	case map[string]any:
		// Either a direct {url, platform} object or a wrapper holding an
		// entry-point list.
		if url := stringField(v, uriAliases); url != "" {
			return &domain.Conference{
				URL:      url,
				Platform: stringField(v, platformAliases),
			}
		}
		if points, ok := listField(v, entryPointAliases); ok {
			return conferenceFrom(points)
		}
	case []any:
		for _, item := range v {
			point, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if url := stringField(point, uriAliases); url != "" {
				return &domain.Conference{
					URL:      url,
					Platform: stringField(point, platformAliases),
				}
			}
		}
	}
	return nil
}

// stringField returns the first alias present with a non-empty string
// value.
func stringField(m map[string]any, aliases []string) string {
	for _, alias := range aliases {
		if v, ok := m[alias]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// boolField returns the first alias present with a usable boolean value.
// String renderings of booleans are tolerated.
func boolField(m map[string]any, aliases []string) bool {
	for _, alias := range aliases {
		v, ok := m[alias]
		if !ok {
			continue
		}
		switch b := v.(type) {
		case bool:
			return b
		case string:
			return strings.EqualFold(b, "true")
		}
	}
	return false
}

// listField returns the first alias present with a list value.
func listField(m map[string]any, aliases []string) ([]any, bool) {
	for _, alias := range aliases {
		if v, ok := m[alias]; ok {
			if list, ok := v.([]any); ok {
				return list, true
			}
		}
	}
	return nil, false
}

package index

import (
	"strings"
	"time"
	"unicode"

	"github.com/helicon-labs/minuta-cli/internal/core/domain"
)

// dayLayout is the calendar-day key format, always in UTC.
const dayLayout = "2006-01-02"

// Index holds the five inverted lookup structures over the loaded
// document set. Keys are normalized: emails and folder names lowercased,
// title tokens lowercased and word-split, days formatted as UTC
// calendar dates.
type Index struct {
	attendees   map[string]Set
	days        map[string]Set
	workspaces  map[string]Set
	folders     map[string]Set
	titleTokens map[string]Set
	universe    Set
}

// Build constructs all five indexes from the document set in a single
// pass. The build is idempotent and insensitive to document order: only
// set membership matters.
func Build(docs []domain.Document) *Index {
	ix := &Index{
		attendees:   make(map[string]Set),
		days:        make(map[string]Set),
		workspaces:  make(map[string]Set),
		folders:     make(map[string]Set),
		titleTokens: make(map[string]Set),
		universe:    make(Set, len(docs)),
	}

	for i := range docs {
		doc := &docs[i]
		ix.universe[doc.ID] = struct{}{}
		ix.indexAttendees(doc)

		// A document with no usable date is simply absent from the day
		// index.
		if day := DayKey(doc.EffectiveDate()); day != "" {
			add(ix.days, day, doc.ID)
		}

		if doc.WorkspaceID != "" {
			add(ix.workspaces, doc.WorkspaceID, doc.ID)
		}

		for _, f := range doc.Folders {
			if name := strings.ToLower(f.Name); name != "" {
				add(ix.folders, name, doc.ID)
			}
		}

		for _, tok := range Tokenize(doc.Title) {
			add(ix.titleTokens, tok, doc.ID)
		}
	}

	return ix
}

// RebuildAttendees replaces the attendee index from scratch. The other
// four indexes do not depend on enrichment data and are left untouched.
func (ix *Index) RebuildAttendees(docs []domain.Document) {
	ix.attendees = make(map[string]Set)
	for i := range docs {
		ix.indexAttendees(&docs[i])
	}
}

func (ix *Index) indexAttendees(doc *domain.Document) {
	for _, a := range doc.Enrichment.Attendees {
		if email := strings.ToLower(a.Email); email != "" {
			add(ix.attendees, email, doc.ID)
		}
	}
}

// Universe returns a copy of the full loaded document-id set.
func (ix *Index) Universe() Set {
	return ix.universe.Clone()
}

// AttendeeMatches unions the id sets of every attendee email containing
// the given substring (case-insensitive).
func (ix *Index) AttendeeMatches(substr string) Set {
	return matchKeys(ix.attendees, substr)
}

// Workspace returns the id set for an exact workspace id.
func (ix *Index) Workspace(id string) Set {
	return ix.workspaces[id].Clone()
}

// FolderMatches unions the id sets of every folder name containing the
// given substring (case-insensitive).
func (ix *Index) FolderMatches(substr string) Set {
	return matchKeys(ix.folders, substr)
}

// TitleTokenMatches unions the id sets of every title token containing
// the given substring (case-insensitive).
func (ix *Index) TitleTokenMatches(substr string) Set {
	return matchKeys(ix.titleTokens, substr)
}

// Day returns the id set for an exact UTC calendar day key.
func (ix *Index) Day(key string) Set {
	return ix.days[key].Clone()
}

// AttendeeKeys returns the number of distinct indexed attendee emails.
func (ix *Index) AttendeeKeys() int {
	return len(ix.attendees)
}

func matchKeys(m map[string]Set, substr string) Set {
	needle := strings.ToLower(substr)
	out := make(Set)
	for key, ids := range m {
		if !strings.Contains(key, needle) {
			continue
		}
		for id := range ids {
			out[id] = struct{}{}
		}
	}
	return out
}

func add(m map[string]Set, key, id string) {
	s, ok := m[key]
	if !ok {
		s = make(Set)
		m[key] = s
	}
	s[id] = struct{}{}
}

// Tokenize lowercases a title and splits it on any run of
// non-alphanumeric characters, discarding empty tokens.
func Tokenize(title string) []string {
	fields := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return fields
}

// DayKey formats an instant as its UTC calendar day. Returns "" for the
// zero time.
func DayKey(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dayLayout)
}

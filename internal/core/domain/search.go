package domain

import "time"

// DefaultSearchLimit is the result limit applied when a query does not
// specify one.
const DefaultSearchLimit = 10

// SearchQuery is a stateless, per-call query value. All fields are
// optional; zero values mean "no filter on this dimension".
type SearchQuery struct {
	// AttendeeEmail filters by substring match against indexed attendee
	// emails.
	AttendeeEmail string

	// StartDate is a date expression bounding the range from below.
	StartDate string

	// EndDate is a date expression bounding the range from above. The
	// resolved bound covers the whole calendar day.
	EndDate string

	// WorkspaceID filters by exact workspace id.
	WorkspaceID string

	// FolderName filters by substring match against indexed folder names.
	FolderName string

	// Content filters by title-token and transcript substring match, and
	// drives relevance scoring.
	Content string

	// Limit caps the number of returned matches. Defaults to
	// DefaultSearchLimit when zero or negative.
	Limit int

	// IncludeTranscript attaches the full rendered transcript to each
	// match.
	IncludeTranscript bool
}

// IsEmpty reports whether no filter is set on any dimension.
func (q SearchQuery) IsEmpty() bool {
	return q.AttendeeEmail == "" && q.StartDate == "" && q.EndDate == "" &&
		q.WorkspaceID == "" && q.FolderName == "" && q.Content == ""
}

// SearchMatch is a single ranked hit.
type SearchMatch struct {
	// DocumentID is the matched document's id.
	DocumentID string `json:"document_id"`

	// Title is the meeting title.
	Title string `json:"title"`

	// MeetingDate is the effective meeting instant, if any.
	MeetingDate *time.Time `json:"meeting_date,omitempty"`

	// WorkspaceName is the owning workspace's display name.
	WorkspaceName string `json:"workspace_name,omitempty"`

	// Folders lists folder display names.
	Folders []string `json:"folders,omitempty"`

	// Attendees lists the enrichment attendees.
	Attendees []Attendee `json:"attendees,omitempty"`

	// Snippet is a short extract of the rendered notes.
	Snippet string `json:"snippet,omitempty"`

	// Score is the relevance score used for ranking.
	Score float64 `json:"relevance_score"`

	// Transcript is the full rendered transcript, present only when the
	// query requested it.
	Transcript string `json:"transcript,omitempty"`
}

// SearchResult is the ranked, bounded outcome of a query.
type SearchResult struct {
	// Matches are the kept hits, ranked by score descending then by
	// document id for determinism.
	Matches []SearchMatch `json:"matches"`

	// TotalMatches is the candidate count before truncation to the limit.
	TotalMatches int `json:"total_matches"`

	// QuerySummary is a human-readable description of the applied filters.
	QuerySummary string `json:"query_summary"`
}

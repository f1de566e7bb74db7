package domain

// Enrichment is the participant and conference data merged into a
// Document from the external cache file. It is the only part of a
// Document that a refresh may overwrite after the initial load.
type Enrichment struct {
	// Attendees lists the meeting participants.
	Attendees []Attendee

	// Conference describes the video-conference entry, if any.
	Conference *Conference

	// CalendarID identifies the source calendar event, if known.
	CalendarID string
}

// Attendee is a single meeting participant.
type Attendee struct {
	// Email is the attendee's email address, lowercased. May be empty.
	Email string `json:"email,omitempty"`

	// Name is the display name. May be empty.
	Name string `json:"name,omitempty"`

	// Organizer is true for the meeting organizer.
	Organizer bool `json:"organizer,omitempty"`

	// RSVP is the invitation response status ("accepted", "declined",
	// "tentative", ...). May be empty.
	RSVP string `json:"rsvp,omitempty"`
}

// Conference is a video-conference entry point.
type Conference struct {
	// URL is the join link.
	URL string `json:"url"`

	// Platform labels the conferencing product ("meet", "zoom", ...).
	Platform string `json:"platform,omitempty"`
}

// RefreshStats are the aggregate counts returned by a refresh.
type RefreshStats struct {
	// TotalDocuments is the number of documents currently loaded.
	TotalDocuments int `json:"totalDocuments"`

	// DocumentsWithAttendees counts documents with at least one attendee.
	DocumentsWithAttendees int `json:"documentsWithAttendees"`

	// UniqueAttendees counts distinct attendee emails across all documents.
	UniqueAttendees int `json:"uniqueAttendees"`
}

package domain

import "time"

// Document represents one synced meeting document.
// It is built once by the loader and read-only afterwards, except for
// the Enrichment attachment which a refresh may overwrite in place.
type Document struct {
	// ID is the unique identifier, taken from the sync directory name.
	ID string

	// Title is the human-readable meeting title.
	Title string

	// CreatedAt is when the document was created upstream.
	CreatedAt time.Time

	// UpdatedAt is when the document was last updated upstream.
	UpdatedAt time.Time

	// WorkspaceID identifies the owning workspace, if any.
	WorkspaceID string

	// WorkspaceName is the display name of the owning workspace.
	WorkspaceName string

	// Folders lists folder memberships in upstream order.
	// A document may belong to zero or many folders.
	Folders []Folder

	// MeetingDate is the instant the meeting took place, when known.
	// Derived from the first transcript utterance when the metadata
	// record does not carry it.
	MeetingDate *time.Time

	// AudioSources lists the audio source kinds present ("microphone",
	// "system", ...).
	AudioSources []string

	// Enrichment holds participant and conference data merged from the
	// external cache. Empty when the cache has no entry for this document.
	Enrichment Enrichment
}

// Folder is a single folder membership.
type Folder struct {
	// ID is the folder identifier.
	ID string

	// Name is the folder display name.
	Name string
}

// EffectiveDate returns the meeting instant when known, otherwise the
// creation instant. This is the instant used for date filtering, the date
// index, and recency scoring.
func (d *Document) EffectiveDate() time.Time {
	if d.MeetingDate != nil && !d.MeetingDate.IsZero() {
		return *d.MeetingDate
	}
	return d.CreatedAt
}

// HasAttendees reports whether any enrichment attendee is attached.
func (d *Document) HasAttendees() bool {
	return len(d.Enrichment.Attendees) > 0
}

// FolderNames returns the folder display names in membership order.
func (d *Document) FolderNames() []string {
	if len(d.Folders) == 0 {
		return nil
	}
	names := make([]string, len(d.Folders))
	for i, f := range d.Folders {
		names[i] = f.Name
	}
	return names
}

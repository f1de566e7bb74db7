package syncdir

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/helicon-labs/minuta-cli/internal/core/domain"
)

// Per-document file names under <root>/<document-id>/.
const (
	MetadataFile   = "metadata.json"
	NotesFile      = "notes.md"
	TranscriptFile = "transcript.md"
	UtterancesFile = "transcript.json"
)

// metadataRecord is the on-disk metadata shape written by the sync layer.
type metadataRecord struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	WorkspaceID   string         `json:"workspace_id,omitempty"`
	WorkspaceName string         `json:"workspace_name,omitempty"`
	Folders       []folderRecord `json:"folders,omitempty"`
	MeetingDate   *time.Time     `json:"meeting_date,omitempty"`
	AudioSources  []string       `json:"audio_sources,omitempty"`
}

type folderRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// utterance is one transcript segment in transcript.json.
type utterance struct {
	Source     string     `json:"source"`
	Text       string     `json:"text"`
	Start      *time.Time `json:"start_timestamp"`
	End        *time.Time `json:"end_timestamp"`
	Confidence float64    `json:"confidence"`
}

// decodeMetadata parses a metadata record and converts it into a
// document. The directory name is the authoritative id; a record id that
// disagrees is ignored.
func decodeMetadata(raw []byte, dirID string) (*domain.Document, error) {
	var rec metadataRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	if rec.Title == "" {
		return nil, fmt.Errorf("%w: missing title", domain.ErrInvalidInput)
	}
	if rec.CreatedAt.IsZero() || rec.UpdatedAt.IsZero() {
		return nil, fmt.Errorf("%w: missing creation or update instant", domain.ErrInvalidInput)
	}

	doc := &domain.Document{
		ID:            dirID,
		Title:         rec.Title,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
		WorkspaceID:   rec.WorkspaceID,
		WorkspaceName: rec.WorkspaceName,
		MeetingDate:   rec.MeetingDate,
		AudioSources:  rec.AudioSources,
	}
	for _, f := range rec.Folders {
		doc.Folders = append(doc.Folders, domain.Folder{ID: f.ID, Name: f.Name})
	}
	return doc, nil
}

// firstUtteranceStart returns the start instant of the first utterance,
// or nil when the transcript is absent, malformed, or carries no
// timestamps.
func firstUtteranceStart(raw []byte) *time.Time {
	var utterances []utterance
	if err := json.Unmarshal(raw, &utterances); err != nil {
		return nil
	}
	for _, u := range utterances {
		if u.Start != nil && !u.Start.IsZero() {
			return u.Start
		}
	}
	return nil
}

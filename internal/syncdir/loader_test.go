package syncdir

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helicon-labs/minuta-cli/internal/core/domain"
)

// --- Helpers ---

type stubEnrichment struct {
	entries map[string]domain.Enrichment
	err     error
}

func (s *stubEnrichment) Load(_ context.Context) (map[string]domain.Enrichment, error) {
	if s.err != nil {
		return map[string]domain.Enrichment{}, s.err
	}
	return s.entries, nil
}

func writeDoc(t *testing.T, root, id, metadata string) {
	t.Helper()
	dir := filepath.Join(root, id)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	if metadata != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, MetadataFile), []byte(metadata), 0o644))
	}
}

const validMetadata = `{
	"id": "ignored",
	"title": "Budget Review",
	"created_at": "2026-03-10T14:30:00Z",
	"updated_at": "2026-03-10T15:30:00Z",
	"workspace_id": "ws-1",
	"workspace_name": "Finance",
	"folders": [{"id": "f1", "name": "Quarterly"}]
}`

func docByID(docs []domain.Document, id string) *domain.Document {
	for i := range docs {
		if docs[i].ID == id {
			return &docs[i]
		}
	}
	return nil
}

// --- Tests ---

func TestLoad_ValidDocument(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "d1", validMetadata)

	docs, err := NewLoader(root, nil, 2).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 1)
	doc := docs[0]
	// The directory name wins over the record id.
	assert.Equal(t, "d1", doc.ID)
	assert.Equal(t, "Budget Review", doc.Title)
	assert.Equal(t, "ws-1", doc.WorkspaceID)
	assert.Equal(t, []string{"Quarterly"}, doc.FolderNames())
}

func TestLoad_MissingRootFails(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "absent"), nil, 1)

	_, err := loader.Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrSyncDirUnavailable)
}

func TestLoad_SkipsDirWithoutMetadata(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "d1", validMetadata)
	writeDoc(t, root, "assets", "")

	docs, err := NewLoader(root, nil, 1).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "d1", docs[0].ID)
}

func TestLoad_SkipsMalformedMetadata(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "d1", validMetadata)
	writeDoc(t, root, "broken", `{not json`)
	writeDoc(t, root, "untitled", `{"created_at": "2026-03-10T14:30:00Z", "updated_at": "2026-03-10T15:30:00Z"}`)
	writeDoc(t, root, "untimed", `{"title": "No timestamps"}`)

	docs, err := NewLoader(root, nil, 1).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "d1", docs[0].ID)
}

func TestLoad_IgnoresPlainFilesInRoot(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "d1", validMetadata)
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.txt"), []byte("hi"), 0o644))

	docs, err := NewLoader(root, nil, 1).Load(context.Background())

	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestLoad_MergesEnrichment(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "d1", validMetadata)
	writeDoc(t, root, "d2", validMetadata)

	source := &stubEnrichment{entries: map[string]domain.Enrichment{
		"d1": {Attendees: []domain.Attendee{{Email: "joe@example.com"}}},
	}}

	docs, err := NewLoader(root, source, 2).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 2)
	require.NotNil(t, docByID(docs, "d1"))
	assert.True(t, docByID(docs, "d1").HasAttendees())
	assert.False(t, docByID(docs, "d2").HasAttendees())
}

func TestLoad_EnrichmentFailureDegrades(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "d1", validMetadata)

	source := &stubEnrichment{err: os.ErrNotExist}

	docs, err := NewLoader(root, source, 1).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.False(t, docs[0].HasAttendees())
}

func TestLoad_MeetingDateFromTranscript(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "d1", validMetadata)
	transcript := `[
		{"source": "mic", "text": "hello", "start_timestamp": "2026-03-09T09:00:00Z"},
		{"source": "mic", "text": "world", "start_timestamp": "2026-03-09T09:00:05Z"}
	]`
	require.NoError(t, os.WriteFile(filepath.Join(root, "d1", UtterancesFile), []byte(transcript), 0o644))

	docs, err := NewLoader(root, nil, 1).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.NotNil(t, docs[0].MeetingDate)
	assert.Equal(t, time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC), docs[0].MeetingDate.UTC())
}

func TestLoad_MetadataMeetingDateWins(t *testing.T) {
	root := t.TempDir()
	withDate := `{
		"title": "Budget Review",
		"created_at": "2026-03-10T14:30:00Z",
		"updated_at": "2026-03-10T15:30:00Z",
		"meeting_date": "2026-03-08T10:00:00Z"
	}`
	writeDoc(t, root, "d1", withDate)
	transcript := `[{"source": "mic", "text": "hello", "start_timestamp": "2026-03-09T09:00:00Z"}]`
	require.NoError(t, os.WriteFile(filepath.Join(root, "d1", UtterancesFile), []byte(transcript), 0o644))

	docs, err := NewLoader(root, nil, 1).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.NotNil(t, docs[0].MeetingDate)
	assert.Equal(t, time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC), docs[0].MeetingDate.UTC())
}

func TestLoad_EmptyRoot(t *testing.T) {
	docs, err := NewLoader(t.TempDir(), nil, 1).Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestFirstUtteranceStart(t *testing.T) {
	start := `[
		{"text": "no timestamp"},
		{"text": "first timed", "start_timestamp": "2026-03-09T09:00:00Z"}
	]`
	got := firstUtteranceStart([]byte(start))
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC), got.UTC())

	assert.Nil(t, firstUtteranceStart([]byte(`not json`)))
	assert.Nil(t, firstUtteranceStart([]byte(`[]`)))
	assert.Nil(t, firstUtteranceStart([]byte(`[{"text": "untimed"}]`)))
}

package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helicon-labs/minuta-cli/internal/core/domain"
)

// --- Helpers ---

func testDocs() []domain.Document {
	created := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	return []domain.Document{
		{
			ID:          "d1",
			Title:       "Budget Review",
			CreatedAt:   created,
			UpdatedAt:   created,
			WorkspaceID: "ws-1",
			Folders:     []domain.Folder{{ID: "f1", Name: "Finance"}},
			Enrichment: domain.Enrichment{
				Attendees: []domain.Attendee{{Email: "joe@example.com"}},
			},
		},
		{
			ID:        "d2",
			Title:     "Daily Standup",
			CreatedAt: created,
			UpdatedAt: created,
		},
	}
}

// --- Tests ---

func TestDocument_Found(t *testing.T) {
	c := NewCatalog(testDocs())

	doc, err := c.Document(context.Background(), "d1")

	require.NoError(t, err)
	assert.Equal(t, "Budget Review", doc.Title)
}

func TestDocument_NotFound(t *testing.T) {
	c := NewCatalog(testDocs())

	_, err := c.Document(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocuments_SnapshotIsIndependent(t *testing.T) {
	c := NewCatalog(testDocs())

	snapshot := c.Documents(context.Background())
	require.Len(t, snapshot, 2)
	snapshot[0].Title = "mutated"

	for _, id := range []string{"d1", "d2"} {
		doc, err := c.Document(context.Background(), id)
		require.NoError(t, err)
		assert.NotEqual(t, "mutated", doc.Title)
	}
}

func TestIndexLookups(t *testing.T) {
	c := NewCatalog(testDocs())

	assert.Equal(t, []string{"d1", "d2"}, c.Universe().IDs())
	assert.Equal(t, []string{"d1"}, c.AttendeeMatches("joe").IDs())
	assert.Equal(t, []string{"d1"}, c.Workspace("ws-1").IDs())
	assert.Equal(t, []string{"d1"}, c.FolderMatches("fin").IDs())
	assert.Equal(t, []string{"d2"}, c.TitleTokenMatches("standup").IDs())
}

func TestReplaceEnrichment_OverwritesAndRebuilds(t *testing.T) {
	c := NewCatalog(testDocs())

	stats := c.ReplaceEnrichment(context.Background(), map[string]domain.Enrichment{
		"d2": {Attendees: []domain.Attendee{{Email: "ana@example.com"}}},
	})

	// d1 had no entry in the new data, so its attendees are gone.
	assert.Empty(t, c.AttendeeMatches("joe"))
	assert.Equal(t, []string{"d2"}, c.AttendeeMatches("ana").IDs())

	doc, err := c.Document(context.Background(), "d1")
	require.NoError(t, err)
	assert.False(t, doc.HasAttendees())

	assert.Equal(t, 2, stats.TotalDocuments)
	assert.Equal(t, 1, stats.DocumentsWithAttendees)
	assert.Equal(t, 1, stats.UniqueAttendees)
}

func TestReplaceEnrichment_DocumentSetUnchanged(t *testing.T) {
	c := NewCatalog(testDocs())

	c.ReplaceEnrichment(context.Background(), map[string]domain.Enrichment{
		"d9": {Attendees: []domain.Attendee{{Email: "ghost@example.com"}}},
	})

	// Unknown ids never create documents.
	assert.Equal(t, []string{"d1", "d2"}, c.Universe().IDs())
	_, err := c.Document(context.Background(), "d9")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, c.AttendeeMatches("ghost"))
}

func TestReplaceEnrichment_OtherIndexesUntouched(t *testing.T) {
	c := NewCatalog(testDocs())

	c.ReplaceEnrichment(context.Background(), map[string]domain.Enrichment{})

	assert.Equal(t, []string{"d1"}, c.Workspace("ws-1").IDs())
	assert.Equal(t, []string{"d1"}, c.FolderMatches("finance").IDs())
	assert.Equal(t, []string{"d1"}, c.TitleTokenMatches("budget").IDs())
}

func TestStats(t *testing.T) {
	c := NewCatalog(testDocs())

	stats := c.Stats()

	assert.Equal(t, 2, stats.TotalDocuments)
	assert.Equal(t, 1, stats.DocumentsWithAttendees)
	assert.Equal(t, 1, stats.UniqueAttendees)
}

func TestStats_UniqueAttendeesAcrossDocuments(t *testing.T) {
	docs := testDocs()
	docs[1].Enrichment = domain.Enrichment{
		Attendees: []domain.Attendee{
			{Email: "joe@example.com"},
			{Email: "ana@example.com"},
		},
	}
	c := NewCatalog(docs)

	stats := c.Stats()

	assert.Equal(t, 2, stats.DocumentsWithAttendees)
	// joe appears in both documents but counts once.
	assert.Equal(t, 2, stats.UniqueAttendees)
}

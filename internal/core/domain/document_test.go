package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveDate(t *testing.T) {
	created := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	meeting := time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)

	t.Run("meeting date wins", func(t *testing.T) {
		doc := Document{CreatedAt: created, MeetingDate: &meeting}
		assert.Equal(t, meeting, doc.EffectiveDate())
	})

	t.Run("falls back to creation instant", func(t *testing.T) {
		doc := Document{CreatedAt: created}
		assert.Equal(t, created, doc.EffectiveDate())
	})

	t.Run("zero meeting date ignored", func(t *testing.T) {
		zero := time.Time{}
		doc := Document{CreatedAt: created, MeetingDate: &zero}
		assert.Equal(t, created, doc.EffectiveDate())
	})
}

func TestHasAttendees(t *testing.T) {
	assert.False(t, (&Document{}).HasAttendees())
	doc := Document{Enrichment: Enrichment{Attendees: []Attendee{{Email: "joe@example.com"}}}}
	assert.True(t, doc.HasAttendees())
}

func TestFolderNames(t *testing.T) {
	assert.Nil(t, (&Document{}).FolderNames())
	doc := Document{Folders: []Folder{{ID: "f1", Name: "Finance"}, {ID: "f2", Name: "Q1"}}}
	assert.Equal(t, []string{"Finance", "Q1"}, doc.FolderNames())
}

func TestSearchQuery_IsEmpty(t *testing.T) {
	assert.True(t, SearchQuery{}.IsEmpty())
	assert.True(t, SearchQuery{Limit: 5, IncludeTranscript: true}.IsEmpty())
	assert.False(t, SearchQuery{AttendeeEmail: "joe"}.IsEmpty())
	assert.False(t, SearchQuery{Content: "budget"}.IsEmpty())
	assert.False(t, SearchQuery{StartDate: "yesterday"}.IsEmpty())
}

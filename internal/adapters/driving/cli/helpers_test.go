package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/helicon-labs/minuta-cli/internal/adapters/driven/storage/memory"
	"github.com/helicon-labs/minuta-cli/internal/core/domain"
	"github.com/helicon-labs/minuta-cli/internal/core/services"
	"github.com/helicon-labs/minuta-cli/internal/daterange"
)

// testContentStore serves canned notes and transcripts for CLI tests.
type testContentStore struct {
	notes       map[string]string
	transcripts map[string]string
	metadata    map[string][]byte
}

func (s *testContentStore) Notes(_ context.Context, id string) (string, error) {
	if text, ok := s.notes[id]; ok {
		return text, nil
	}
	return "", fmt.Errorf("notes for %s: %w", id, domain.ErrNotFound)
}

func (s *testContentStore) Transcript(_ context.Context, id string) (string, error) {
	if text, ok := s.transcripts[id]; ok {
		return text, nil
	}
	return "", fmt.Errorf("transcript for %s: %w", id, domain.ErrNotFound)
}

func (s *testContentStore) RawMetadata(_ context.Context, id string) ([]byte, error) {
	if raw, ok := s.metadata[id]; ok {
		return raw, nil
	}
	return nil, fmt.Errorf("metadata for %s: %w", id, domain.ErrNotFound)
}

// testEnrichmentSource feeds the refresh service a fixed mapping.
type testEnrichmentSource struct {
	entries map[string]domain.Enrichment
}

func (s *testEnrichmentSource) Load(_ context.Context) (map[string]domain.Enrichment, error) {
	return s.entries, nil
}

// setupTestServices wires the package-level services against a small
// in-memory corpus and returns a cleanup function restoring the
// uninitialized state.
func setupTestServices() func() {
	meeting := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	docs := []domain.Document{
		{
			ID:            "d1",
			Title:         "Budget Review",
			CreatedAt:     meeting,
			UpdatedAt:     meeting,
			MeetingDate:   &meeting,
			WorkspaceID:   "ws-1",
			WorkspaceName: "Finance",
			Folders:       []domain.Folder{{ID: "f1", Name: "Planning"}},
			Enrichment: domain.Enrichment{
				Attendees: []domain.Attendee{{Email: "joe@example.com", Name: "Joe"}},
			},
		},
		{
			ID:        "d2",
			Title:     "Daily Standup",
			CreatedAt: meeting.AddDate(0, 0, -20),
			UpdatedAt: meeting.AddDate(0, 0, -20),
		},
	}

	catalog := memory.NewCatalog(docs)
	content := &testContentStore{
		notes: map[string]string{
			"d1": "Reviewed the quarterly numbers.",
			"d2": "Quick sync.",
		},
		transcripts: map[string]string{
			"d1": "Joe: budget looks fine.",
		},
		metadata: map[string][]byte{
			"d1": []byte(`{"id":"d1","title":"Budget Review"}`),
		},
	}
	source := &testEnrichmentSource{entries: map[string]domain.Enrichment{
		"d1": {Attendees: []domain.Attendee{{Email: "joe@example.com", Name: "Joe"}}},
	}}

	searchService = services.NewSearchService(catalog, content, daterange.NewResolver())
	documentService = services.NewDocumentService(catalog, content)
	refreshService = services.NewRefreshService(catalog, source)

	return func() {
		searchService = nil
		documentService = nil
		refreshService = nil
		configStore = nil
	}
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/helicon-labs/minuta-cli/internal/adapters/driven/storage/memory"
	"github.com/helicon-labs/minuta-cli/internal/core/domain"
)

// --- Mocks ---

// mockContentStore serves notes and transcripts from maps. Missing
// entries map to domain.ErrNotFound, matching the disk store contract.
type mockContentStore struct {
	notes       map[string]string
	transcripts map[string]string
	metadata    map[string][]byte
}

func (m *mockContentStore) Notes(_ context.Context, id string) (string, error) {
	if text, ok := m.notes[id]; ok {
		return text, nil
	}
	return "", fmt.Errorf("notes for %s: %w", id, domain.ErrNotFound)
}

func (m *mockContentStore) Transcript(_ context.Context, id string) (string, error) {
	if text, ok := m.transcripts[id]; ok {
		return text, nil
	}
	return "", fmt.Errorf("transcript for %s: %w", id, domain.ErrNotFound)
}

func (m *mockContentStore) RawMetadata(_ context.Context, id string) ([]byte, error) {
	if raw, ok := m.metadata[id]; ok {
		return raw, nil
	}
	return nil, fmt.Errorf("metadata for %s: %w", id, domain.ErrNotFound)
}

// mockEnrichmentSource returns canned enrichment data or a fixed error.
// gate, when set, blocks Load until the channel is closed; entered, when
// set, receives a token as Load begins.
type mockEnrichmentSource struct {
	entries map[string]domain.Enrichment
	err     error
	gate    chan struct{}
	entered chan struct{}
	calls   int
}

func (m *mockEnrichmentSource) Load(_ context.Context) (map[string]domain.Enrichment, error) {
	m.calls++
	if m.entered != nil {
		select {
		case m.entered <- struct{}{}:
		default:
		}
	}
	if m.gate != nil {
		<-m.gate
	}
	if m.err != nil {
		return map[string]domain.Enrichment{}, m.err
	}
	return m.entries, nil
}

// mockRefresh records refresh invocations on a channel.
type mockRefresh struct {
	triggered chan struct{}
	stats     domain.RefreshStats
	err       error
}

func (m *mockRefresh) Refresh(_ context.Context) (domain.RefreshStats, error) {
	select {
	case m.triggered <- struct{}{}:
	default:
	}
	return m.stats, m.err
}

// --- Fixtures ---

// Wednesday, 2026-03-18 12:00 UTC.
func fixedNow() time.Time {
	return time.Date(2026, 3, 18, 12, 0, 0, 0, time.UTC)
}

// fixtureDocs builds two documents around the pinned clock: a recent
// budget meeting with an attendee and an older standup without one.
func fixtureDocs() []domain.Document {
	budgetDate := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	standupDate := time.Date(2026, 2, 26, 9, 30, 0, 0, time.UTC)

	return []domain.Document{
		{
			ID:            "d1",
			Title:         "Budget Review",
			CreatedAt:     budgetDate,
			UpdatedAt:     budgetDate,
			WorkspaceID:   "ws-1",
			WorkspaceName: "Finance",
			Folders:       []domain.Folder{{ID: "f1", Name: "Planning"}},
			MeetingDate:   &budgetDate,
			Enrichment: domain.Enrichment{
				Attendees: []domain.Attendee{
					{Email: "joe@example.com", Name: "Joe", Organizer: true},
				},
			},
		},
		{
			ID:            "d2",
			Title:         "Daily Standup",
			CreatedAt:     standupDate,
			UpdatedAt:     standupDate,
			WorkspaceID:   "ws-2",
			WorkspaceName: "Engineering",
			Folders:       []domain.Folder{{ID: "f2", Name: "Rituals"}},
			MeetingDate:   &standupDate,
		},
	}
}

func fixtureCatalog() *memory.Catalog {
	return memory.NewCatalog(fixtureDocs())
}

func fixtureContent() *mockContentStore {
	return &mockContentStore{
		notes: map[string]string{
			"d1": "Reviewed the quarterly budget numbers.",
			"d2": "Quick sync, no blockers.",
		},
		transcripts: map[string]string{
			"d1": "Joe: let's walk through the budget line by line.",
			"d2": "All: nothing to report.",
		},
		metadata: map[string][]byte{
			"d1": []byte(`{"id":"d1"}`),
		},
	}
}

package mcp

import (
	"context"

	"github.com/helicon-labs/minuta-cli/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	result *domain.SearchResult
	err    error
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ domain.SearchQuery,
) (*domain.SearchResult, error) {
	return m.result, m.err
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	doc        *domain.Document
	docs       []domain.Document
	metadata   []byte
	transcript string
	notes      string
	err        error
}

func (m *mockDocumentService) Get(_ context.Context, _ string) (*domain.Document, error) {
	return m.doc, m.err
}

func (m *mockDocumentService) List(_ context.Context) ([]domain.Document, error) {
	return m.docs, m.err
}

func (m *mockDocumentService) Metadata(_ context.Context, _ string) ([]byte, error) {
	return m.metadata, m.err
}

func (m *mockDocumentService) Transcript(_ context.Context, _ string) (string, error) {
	return m.transcript, m.err
}

func (m *mockDocumentService) Notes(_ context.Context, _ string) (string, error) {
	return m.notes, m.err
}

// mockRefreshService is a mock implementation of driving.RefreshService.
type mockRefreshService struct {
	stats domain.RefreshStats
	err   error
	calls int
}

func (m *mockRefreshService) Refresh(_ context.Context) (domain.RefreshStats, error) {
	m.calls++
	return m.stats, m.err
}

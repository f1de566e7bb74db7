package services

import (
	"context"

	"github.com/helicon-labs/minuta-cli/internal/core/domain"
	"github.com/helicon-labs/minuta-cli/internal/core/ports/driven"
	"github.com/helicon-labs/minuta-cli/internal/core/ports/driving"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService serves direct by-id lookups. No filtering or scoring
// is involved; unknown ids surface domain.ErrNotFound.
type DocumentService struct {
	catalog driven.Catalog
	content driven.ContentStore
}

// NewDocumentService creates a new document service.
func NewDocumentService(catalog driven.Catalog, content driven.ContentStore) *DocumentService {
	return &DocumentService{catalog: catalog, content: content}
}

// Get retrieves one document record by id.
func (s *DocumentService) Get(ctx context.Context, documentID string) (*domain.Document, error) {
	return s.catalog.Document(ctx, documentID)
}

// List returns all loaded documents.
func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	return s.catalog.Documents(ctx), nil
}

// Metadata returns the raw on-disk metadata record for a document. The
// document must be loaded; the raw bytes come from the content store.
func (s *DocumentService) Metadata(ctx context.Context, documentID string) ([]byte, error) {
	if _, err := s.catalog.Document(ctx, documentID); err != nil {
		return nil, err
	}
	return s.content.RawMetadata(ctx, documentID)
}

// Transcript returns the rendered transcript text.
func (s *DocumentService) Transcript(ctx context.Context, documentID string) (string, error) {
	if _, err := s.catalog.Document(ctx, documentID); err != nil {
		return "", err
	}
	return s.content.Transcript(ctx, documentID)
}

// Notes returns the rendered notes text.
func (s *DocumentService) Notes(ctx context.Context, documentID string) (string, error) {
	if _, err := s.catalog.Document(ctx, documentID); err != nil {
		return "", err
	}
	return s.content.Notes(ctx, documentID)
}

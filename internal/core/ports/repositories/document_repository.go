package repositories

import (
	"context"

	"github.com/SscSPs/household_finance/internal/core/domain"
)

// DocumentReader defines read operations for the persisted financial document
type DocumentReader interface {
	// LoadDocument reads the whole document. It returns apperrors.ErrNotFound
	// when nothing has been saved yet.
	LoadDocument(ctx context.Context) (*domain.FinancialDocument, error)
}

// DocumentWriter defines write operations for the persisted financial document
type DocumentWriter interface {
	// SaveDocument replaces the stored document with doc.
	SaveDocument(ctx context.Context, doc domain.FinancialDocument) error
}

// DocumentRepositoryFacade combines all document-related repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}

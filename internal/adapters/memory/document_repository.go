// Package memory keeps the financial document in process memory. It is meant
// for development and tests; everything is lost on restart.
package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/household_finance/internal/apperrors"
	"github.com/SscSPs/household_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/household_finance/internal/core/ports/repositories"
	"github.com/SscSPs/household_finance/internal/utils/mapping"
)

// DocumentRepository stores the encoded document in memory so that callers
// never share slices with the stored copy.
type DocumentRepository struct {
	mu   sync.RWMutex
	data []byte
}

// NewDocumentRepository creates an empty in-memory repository.
func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{}
}

var _ portsrepo.DocumentRepositoryFacade = (*DocumentRepository)(nil)

func (r *DocumentRepository) LoadDocument(ctx context.Context) (*domain.FinancialDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.data == nil {
		return nil, apperrors.ErrNotFound
	}
	return mapping.DecodeDocument(r.data)
}

func (r *DocumentRepository) SaveDocument(ctx context.Context, doc domain.FinancialDocument) error {
	data, err := mapping.EncodeDocument(doc)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.data = data
	r.mu.Unlock()
	return nil
}

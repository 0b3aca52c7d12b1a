package services

import (
	"context"

	"github.com/SscSPs/household_finance/internal/core/domain"
)

// DocumentReaderSvc gives read access to the whole financial document
type DocumentReaderSvc interface {
	// GetDocument returns a snapshot of the current document.
	GetDocument(ctx context.Context) (domain.FinancialDocument, error)
}

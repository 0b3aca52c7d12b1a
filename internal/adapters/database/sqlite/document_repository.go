// Package sqlite stores the financial document in a local SQLite file through gorm.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/household_finance/internal/apperrors"
	"github.com/SscSPs/household_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/household_finance/internal/core/ports/repositories"
	"github.com/SscSPs/household_finance/internal/models"
	"github.com/SscSPs/household_finance/internal/utils/mapping"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDocumentRepository keeps the document as one row of the finance_documents table.
type GormDocumentRepository struct {
	db  *gorm.DB
	key string
}

// NewGormDocumentRepository creates a repository for the document stored under key.
// The table is created when missing.
func NewGormDocumentRepository(db *gorm.DB, key string) (*GormDocumentRepository, error) {
	if err := db.AutoMigrate(&models.FinanceDocument{}); err != nil {
		return nil, fmt.Errorf("failed to migrate finance_documents: %w", err)
	}
	return &GormDocumentRepository{db: db, key: key}, nil
}

var _ portsrepo.DocumentRepositoryFacade = (*GormDocumentRepository)(nil)

// LoadDocument reads the stored document.
func (r *GormDocumentRepository) LoadDocument(ctx context.Context) (*domain.FinancialDocument, error) {
	var row models.FinanceDocument
	err := r.db.WithContext(ctx).Where("document_key = ?", r.key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load document %s: %w", r.key, err)
	}
	doc, err := mapping.ToDomainDocument(row)
	if err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", r.key, err)
	}
	return doc, nil
}

// SaveDocument inserts or replaces the stored document.
func (r *GormDocumentRepository) SaveDocument(ctx context.Context, doc domain.FinancialDocument) error {
	row, err := mapping.ToModelDocument(r.key, doc, time.Now().UTC())
	if err != nil {
		return err
	}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "document_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save document %s: %w", r.key, err)
	}
	return nil
}

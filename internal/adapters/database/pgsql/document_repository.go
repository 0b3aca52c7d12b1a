package pgsql

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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxDocumentRepository stores the financial document as a JSONB row keyed by document key.
type PgxDocumentRepository struct {
	BaseRepository
	key string
}

// NewPgxDocumentRepository creates a repository for the document stored under key.
func NewPgxDocumentRepository(pool *pgxpool.Pool, key string) *PgxDocumentRepository {
	return NewPgxDocumentRepositoryWithDB(pool, key)
}

// NewPgxDocumentRepositoryWithDB creates a repository on any DB, such as a single connection.
func NewPgxDocumentRepositoryWithDB(pool DB, key string) *PgxDocumentRepository {
	return &PgxDocumentRepository{
		BaseRepository: BaseRepository{Pool: pool},
		key:            key,
	}
}

// Ensure implementation matches interface
var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

// LoadDocument reads the stored document.
func (r *PgxDocumentRepository) LoadDocument(ctx context.Context) (*domain.FinancialDocument, error) {
	query := `
		SELECT document_key, payload, updated_at
		FROM finance_documents
		WHERE document_key = $1;
	`
	var row models.FinanceDocument
	err := r.Pool.QueryRow(ctx, query, r.key).Scan(
		&row.DocumentKey,
		&row.Payload,
		&row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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
func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, doc domain.FinancialDocument) error {
	row, err := mapping.ToModelDocument(r.key, doc, time.Now().UTC())
	if err != nil {
		return err
	}

	query := `
		INSERT INTO finance_documents (document_key, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (document_key) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at;
	`
	_, err = r.Pool.Exec(ctx, query, row.DocumentKey, string(row.Payload), row.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save document %s: %w", r.key, err)
	}
	return nil
}

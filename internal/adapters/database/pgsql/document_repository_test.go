package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/SscSPs/household_finance/internal/apperrors"
	"github.com/SscSPs/household_finance/internal/core/domain"
	"github.com/SscSPs/household_finance/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocumentKey = "current_data"

var (
	selectDocumentSQL = regexp.QuoteMeta(`SELECT document_key, payload, updated_at FROM finance_documents WHERE document_key = $1`)
	upsertDocumentSQL = regexp.QuoteMeta(`INSERT INTO finance_documents (document_key, payload, updated_at) VALUES ($1, $2, $3)`) +
		`.*` + regexp.QuoteMeta(`ON CONFLICT (document_key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`)
)

// newMockDocumentRepository creates a PgxDocumentRepository on a mocked pool.
func newMockDocumentRepository(t *testing.T) (*PgxDocumentRepository, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewPgxDocumentRepositoryWithDB(mock, testDocumentKey), mock
}

// payloadWithMember matches a JSON payload holding exactly one member with the given name.
type payloadWithMember string

func (p payloadWithMember) Match(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	var doc domain.FinancialDocument
	if err := json.Unmarshal([]byte(s), &doc); err != nil {
		return false
	}
	return len(doc.Members) == 1 && doc.Members[0].Name == string(p)
}

func testDocument() domain.FinancialDocument {
	return domain.NewFinancialDocument().AddMember(domain.Member{ID: "m1", Name: "Ali"})
}

func TestPgxDocumentRepository_LoadDocument(t *testing.T) {
	t.Run("loads stored document", func(t *testing.T) {
		repo, mock := newMockDocumentRepository(t)

		payload, err := mapping.EncodeDocument(testDocument())
		require.NoError(t, err)
		rows := pgxmock.NewRows([]string{"document_key", "payload", "updated_at"}).
			AddRow(testDocumentKey, payload, time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC))

		mock.ExpectQuery(selectDocumentSQL).
			WithArgs(testDocumentKey).
			WillReturnRows(rows)

		doc, err := repo.LoadDocument(context.Background())

		require.NoError(t, err)
		require.Len(t, doc.Members, 1)
		assert.Equal(t, "Ali", doc.Members[0].Name)
		assert.NotNil(t, doc.Liabilities)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing row to not found", func(t *testing.T) {
		repo, mock := newMockDocumentRepository(t)

		mock.ExpectQuery(selectDocumentSQL).
			WithArgs(testDocumentKey).
			WillReturnError(pgx.ErrNoRows)

		doc, err := repo.LoadDocument(context.Background())

		assert.Nil(t, doc)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps database errors", func(t *testing.T) {
		repo, mock := newMockDocumentRepository(t)
		dbErr := errors.New("connection reset")

		mock.ExpectQuery(selectDocumentSQL).
			WithArgs(testDocumentKey).
			WillReturnError(dbErr)

		_, err := repo.LoadDocument(context.Background())

		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, apperrors.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects undecodable payload", func(t *testing.T) {
		repo, mock := newMockDocumentRepository(t)
		rows := pgxmock.NewRows([]string{"document_key", "payload", "updated_at"}).
			AddRow(testDocumentKey, []byte(`{"members":"nope"}`), time.Now())

		mock.ExpectQuery(selectDocumentSQL).
			WithArgs(testDocumentKey).
			WillReturnRows(rows)

		_, err := repo.LoadDocument(context.Background())

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPgxDocumentRepository_SaveDocument(t *testing.T) {
	t.Run("upserts document row", func(t *testing.T) {
		repo, mock := newMockDocumentRepository(t)

		mock.ExpectExec(upsertDocumentSQL).
			WithArgs(testDocumentKey, payloadWithMember("Ali"), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.SaveDocument(context.Background(), testDocument())

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps database errors", func(t *testing.T) {
		repo, mock := newMockDocumentRepository(t)
		dbErr := errors.New("disk full")

		mock.ExpectExec(upsertDocumentSQL).
			WithArgs(testDocumentKey, pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(dbErr)

		err := repo.SaveDocument(context.Background(), testDocument())

		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

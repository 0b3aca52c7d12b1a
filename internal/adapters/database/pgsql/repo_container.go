package pgsql

import (
	portsrepo "github.com/SscSPs/household_finance/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool, documentKey string) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DocumentRepo: NewPgxDocumentRepository(dbPool, documentKey),
	}
}

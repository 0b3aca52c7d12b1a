package memory

import (
	"context"
	"testing"

	"github.com/SscSPs/household_finance/internal/apperrors"
	"github.com/SscSPs/household_finance/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewDocumentRepository()

	_, err := repo.LoadDocument(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	doc := domain.NewFinancialDocument().AddMember(domain.Member{ID: "m1", Name: "Ali"})
	require.NoError(t, repo.SaveDocument(ctx, doc))

	got, err := repo.LoadDocument(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc, *got)

	// the stored copy is independent of the returned one
	got.Members[0].Name = "changed"
	again, err := repo.LoadDocument(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ali", again.Members[0].Name)

	require.NoError(t, repo.SaveDocument(ctx, domain.NewFinancialDocument()))
	got, err = repo.LoadDocument(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Members)
}

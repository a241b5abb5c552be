package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"signalsite/internal/domain"
	"signalsite/internal/domain/entities"
)

func openMemory(t *testing.T) *LeadRepository {
	t.Helper()
	repo, err := Open(context.Background(), "sqlite::memory:", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestIsSQLiteURL(t *testing.T) {
	assert.True(t, IsSQLiteURL("sqlite:leads.db"))
	assert.True(t, IsSQLiteURL("sqlite::memory:"))
	assert.False(t, IsSQLiteURL("postgres://localhost/db"))
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open(context.Background(), "sqlite:", zap.NewNop())
	assert.Error(t, err)
}

func TestLeadRepository_Insert(t *testing.T) {
	repo := openMemory(t)
	ctx := context.Background()
	created := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

	first := &entities.Lead{FName: "Jane", LName: "Doe", Phone: "+1123456789", Email: "jane@example.com", CreatedAt: created}
	require.NoError(t, repo.Insert(ctx, first))
	assert.Equal(t, int64(1), first.ID)
	assert.True(t, first.CreatedAt.Equal(created))

	second := &entities.Lead{FName: "John", LName: "Roe", Phone: "+34123456789", Email: "john@example.com"}
	require.NoError(t, repo.Insert(ctx, second))
	assert.Equal(t, int64(2), second.ID)
	assert.False(t, second.CreatedAt.IsZero())

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestLeadRepository_Insert_DuplicateEmail(t *testing.T) {
	repo := openMemory(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &entities.Lead{FName: "A", LName: "B", Phone: "+1123456", Email: "dup@example.com"}))

	err := repo.Insert(ctx, &entities.Lead{FName: "C", LName: "D", Phone: "+1654321", Email: "DUP@example.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateLead)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLeadRepository_Insert_ClosedDatabase(t *testing.T) {
	repo := openMemory(t)
	require.NoError(t, repo.Close())

	err := repo.Insert(context.Background(), &entities.Lead{Email: "a@b.co"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSinkUnavailable)
}

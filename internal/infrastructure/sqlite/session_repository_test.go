package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/memberflow-console/internal/domain"
	"github.com/jhoicas/memberflow-console/internal/domain/entity"
	"github.com/jhoicas/memberflow-console/internal/infrastructure/sqlite"
)

func newRepo(t *testing.T) *sqlite.SessionRepo {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlite.NewSessionRepository(db)
}

func TestSessionRepo_CrearLeerBorrar(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s := &entity.Session{ID: "hash-1", Token: "jwt", Email: "ana@mf.es", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}

	require.NoError(t, repo.Create(ctx, s))

	got, err := repo.GetByID(ctx, "hash-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "jwt", got.Token)
	assert.True(t, got.ExpiresAt.Equal(s.ExpiresAt))

	assert.ErrorIs(t, repo.Create(ctx, s), domain.ErrConflict)

	require.NoError(t, repo.Delete(ctx, "hash-1"))
	got, err = repo.GetByID(ctx, "hash-1")
	require.NoError(t, err)
	assert.Nil(t, got, "sesión borrada no debe encontrarse")
}

func TestSessionRepo_DeleteExpired(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &entity.Session{ID: "vieja", Token: "a", Email: "a", CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour)}))
	require.NoError(t, repo.Create(ctx, &entity.Session{ID: "nueva", Token: "b", Email: "b", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}))

	n, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.GetByID(ctx, "nueva")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

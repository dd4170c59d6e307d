package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/memberflow-console/internal/domain/entity"
	"github.com/jhoicas/memberflow-console/pkg/config"
)

func TestOpenSessionStore_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Session: config.SessionConfig{
		Driver:     "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "sessions.db"),
	}}

	repo, closeStore, err := openSessionStore(ctx, cfg)
	require.NoError(t, err)
	defer closeStore()

	now := time.Now().UTC().Truncate(time.Second)
	s := &entity.Session{ID: "h1", Token: "jwt", Email: "ana@test.local", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, repo.Create(ctx, s))

	got, err := repo.GetByID(ctx, "h1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ana@test.local", got.Email)
}

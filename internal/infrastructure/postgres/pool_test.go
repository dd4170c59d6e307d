package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTuneSessionPool(t *testing.T) {
	c, err := pgxpool.ParseConfig("postgres://u:p@localhost:5432/db?sslmode=disable")
	require.NoError(t, err)

	tuneSessionPool(c)

	assert.Equal(t, int32(8), c.MaxConns)
	assert.Equal(t, applicationName, c.ConnConfig.RuntimeParams["application_name"])
	assert.NotNil(t, c.ConnConfig.DialFunc)
}

func TestTuneSessionPool_RespetaApplicationName(t *testing.T) {
	c, err := pgxpool.ParseConfig("postgres://u:p@localhost:5432/db?application_name=otra")
	require.NoError(t, err)

	tuneSessionPool(c)

	assert.Equal(t, "otra", c.ConnConfig.RuntimeParams["application_name"])
}

func TestFirstIPv4(t *testing.T) {
	assert.Equal(t, "127.0.0.1", firstIPv4(context.Background(), "127.0.0.1"))
	assert.Empty(t, firstIPv4(context.Background(), "::1"))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection reset")))
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/memberflow-console/internal/domain"
	"github.com/jhoicas/memberflow-console/internal/domain/entity"
	"github.com/jhoicas/memberflow-console/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

const sessionSchema = `
	CREATE TABLE IF NOT EXISTS console_sessions (
		id         TEXT PRIMARY KEY,
		token      TEXT NOT NULL,
		email      TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS console_sessions_expires_at_idx ON console_sessions (expires_at);`

// SessionRepo implementación de SessionRepository sobre PostgreSQL.
type SessionRepo struct {
	q Querier
}

// NewSessionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSessionRepository(q Querier) *SessionRepo {
	return &SessionRepo{q: q}
}

// EnsureSchema crea la tabla de sesiones si no existe.
func (r *SessionRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, sessionSchema); err != nil {
		return fmt.Errorf("crear tabla console_sessions: %w", err)
	}
	return nil
}

// Create persiste una sesión nueva.
func (r *SessionRepo) Create(ctx context.Context, s *entity.Session) error {
	query := `
		INSERT INTO console_sessions (id, token, email, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, s.ID, s.Token, s.Email, s.CreatedAt, s.ExpiresAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetByID obtiene una sesión por ID (hash). Devuelve (nil, nil) si no existe.
func (r *SessionRepo) GetByID(ctx context.Context, id string) (*entity.Session, error) {
	query := `
		SELECT id, token, email, created_at, expires_at
		FROM console_sessions WHERE id = $1`
	var s entity.Session
	err := r.q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Token, &s.Email, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &s, nil
}

// Delete elimina la sesión; no falla si no existe.
func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM console_sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpired elimina las sesiones vencidas en now y devuelve cuántas borró.
func (r *SessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM console_sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/memberflow-console/internal/domain"
	"github.com/jhoicas/memberflow-console/internal/domain/entity"
	"github.com/jhoicas/memberflow-console/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// Las fechas se guardan en UTC con ancho fijo para que la comparación de texto respete el orden.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// SessionRepo implementación de SessionRepository sobre SQLite.
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepository construye el adaptador.
func NewSessionRepository(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

func formatTime(t time.Time) string { return t.UTC().Format(timeLayout) }

// Create persiste una sesión nueva.
func (r *SessionRepo) Create(ctx context.Context, s *entity.Session) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO console_sessions (id, token, email, created_at, expires_at) VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.Token, s.Email, formatTime(s.CreatedAt), formatTime(s.ExpiresAt))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetByID obtiene una sesión por ID (hash). Devuelve (nil, nil) si no existe.
func (r *SessionRepo) GetByID(ctx context.Context, id string) (*entity.Session, error) {
	var (
		s                  entity.Session
		created, expiresAt string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, token, email, created_at, expires_at FROM console_sessions WHERE id = ?`, id,
	).Scan(&s.ID, &s.Token, &s.Email, &created, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	if s.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return nil, fmt.Errorf("get session: created_at: %w", err)
	}
	if s.ExpiresAt, err = time.Parse(timeLayout, expiresAt); err != nil {
		return nil, fmt.Errorf("get session: expires_at: %w", err)
	}
	return &s, nil
}

// Delete elimina la sesión; no falla si no existe.
func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM console_sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpired elimina las sesiones vencidas en now y devuelve cuántas borró.
func (r *SessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM console_sessions WHERE expires_at <= ?`, formatTime(now))
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return res.RowsAffected()
}

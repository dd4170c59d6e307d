package repository

import (
	"context"
	"time"

	"github.com/jhoicas/memberflow-console/internal/domain/entity"
)

// SessionRepository puerto de persistencia de sesiones de la consola.
// GetByID devuelve (nil, nil) si no existe.
type SessionRepository interface {
	Create(ctx context.Context, s *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

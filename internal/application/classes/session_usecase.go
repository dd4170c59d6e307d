package classes

import (
	"context"
	"fmt"

	"github.com/jhoicas/memberflow-console/internal/domain/entity"
)

const (
	MsgSessionDeleted = "Sesión eliminada correctamente."
	MsgSessionsFailed = "Error al cargar las sesiones."
	MsgSessionDelFail = "No se pudo eliminar la sesión."
)

// SessionUseCase sesiones de entrenamiento.
type SessionUseCase struct {
	backend Backend
}

// NewSessionUseCase construye el caso de uso.
func NewSessionUseCase(backend Backend) *SessionUseCase {
	return &SessionUseCase{backend: backend}
}

// List todas las sesiones.
func (uc *SessionUseCase) List(ctx context.Context, token string) ([]entity.TrainingSession, error) {
	s, err := uc.backend.ListTrainingSessions(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("listar sesiones: %w", err)
	}
	return s, nil
}

// Delete elimina una sesión.
func (uc *SessionUseCase) Delete(ctx context.Context, token string, id int) error {
	if err := uc.backend.DeleteTrainingSession(ctx, token, id); err != nil {
		return fmt.Errorf("eliminar sesión %d: %w", id, err)
	}
	return nil
}

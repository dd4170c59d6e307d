package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrConflict       = errors.New("conflicto con el estado actual")
	ErrSessionExpired = errors.New("sesión expirada")
	ErrBackend        = errors.New("error del backend")
)

// ValidationError errores de formulario por campo. Se detecta antes de cualquier llamada al backend.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

// NewValidationError construye un error con mensaje general y sin campos.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message, Fields: map[string]string{}}
}

// With añade el mensaje de un campo y devuelve el mismo error para encadenar.
func (e *ValidationError) With(field, message string) *ValidationError {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	e.Fields[field] = message
	return e
}

// HasFields indica si hay algún campo con error.
func (e *ValidationError) HasFields() bool { return len(e.Fields) > 0 }

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// RemoteError fallo de una llamada al backend REST: estado no 2xx o error de red (Status 0).
// 401/403 no reciben tratamiento especial.
type RemoteError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("backend %s: %v", e.Op, e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("backend %s: HTTP %d: %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("backend %s: HTTP %d", e.Op, e.Status)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrBackend).
func (e *RemoteError) Is(target error) bool { return target == ErrBackend }

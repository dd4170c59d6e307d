package entity

import "time"

// Session sesión de la consola. ID es el hash del identificador enviado en la cookie;
// Token es el JWT emitido por el backend.
type Session struct {
	ID        string
	Token     string
	Email     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired indica si la sesión venció en el instante now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

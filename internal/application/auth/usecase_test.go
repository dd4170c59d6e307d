package auth

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/memberflow-console/internal/application/dto"
	"github.com/jhoicas/memberflow-console/internal/domain"
	"github.com/jhoicas/memberflow-console/internal/domain/access"
	"github.com/jhoicas/memberflow-console/internal/domain/entity"
	pkgjwt "github.com/jhoicas/memberflow-console/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeBackend struct {
	token string
	err   error
}

func (f *fakeBackend) Login(context.Context, string, string) (string, error) { return f.token, f.err }
func (f *fakeBackend) Me(context.Context, string) (*entity.User, error) {
	return &entity.User{ID: 1, Name: "Ana"}, nil
}

type memSessions struct {
	mu   sync.Mutex
	rows map[string]entity.Session
}

func newMemSessions() *memSessions { return &memSessions{rows: map[string]entity.Session{}} }

func (m *memSessions) Create(_ context.Context, s *entity.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[s.ID]; ok {
		return domain.ErrConflict
	}
	m.rows[s.ID] = *s
	return nil
}

func (m *memSessions) GetByID(_ context.Context, id string) (*entity.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memSessions) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

func (m *memSessions) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, s := range m.rows {
		if s.Expired(now) {
			delete(m.rows, id)
			n++
		}
	}
	return n, nil
}

func adminToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate("s", "ana@mf.es", "FULL_ACCESS", "memberflow", time.Hour)
	require.NoError(t, err)
	return tok
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_AbreSesionYResuelveDestino(t *testing.T) {
	store := newMemSessions()
	uc := NewAuthUseCase(&fakeBackend{token: adminToken(t)}, store, access.NewResolver(""), SessionConfig{TTL: time.Hour}, nil)

	res, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@mf.es", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "/admin/dashboard", res.Landing)
	assert.Equal(t, "FULL_ACCESS", res.Role)
	require.NotEmpty(t, res.SessionID)

	_, raw := store.rows[res.SessionID]
	assert.False(t, raw, "la cookie no debe ser la clave del almacén")

	s, err := uc.Session(context.Background(), res.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "ana@mf.es", s.Email)
}

func TestLogin_CredencialesIncorrectas(t *testing.T) {
	uc := NewAuthUseCase(&fakeBackend{err: &domain.RemoteError{Op: "auth.login", Status: http.StatusUnauthorized}},
		newMemSessions(), access.NewResolver(""), SessionConfig{}, nil)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@mf.es", Password: "mal"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_BackendCaidoNoEsCredencial(t *testing.T) {
	uc := NewAuthUseCase(&fakeBackend{err: &domain.RemoteError{Op: "auth.login", Err: errors.New("refused")}},
		newMemSessions(), access.NewResolver(""), SessionConfig{}, nil)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@mf.es", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrBackend)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_FormularioInvalido(t *testing.T) {
	uc := NewAuthUseCase(&fakeBackend{}, newMemSessions(), access.NewResolver(""), SessionConfig{}, nil)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "no-es-email"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "password")
}

func TestSession_VencidaSeBorra(t *testing.T) {
	store := newMemSessions()
	uc := NewAuthUseCase(&fakeBackend{token: adminToken(t)}, store, access.NewResolver(""), SessionConfig{TTL: time.Minute}, nil)
	res, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@mf.es", Password: "x"})
	require.NoError(t, err)

	uc.now = func() time.Time { return time.Now().Add(time.Hour) }
	_, err = uc.Session(context.Background(), res.SessionID)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.Empty(t, store.rows)
}

func TestSession_Desconocida(t *testing.T) {
	uc := NewAuthUseCase(&fakeBackend{}, newMemSessions(), access.NewResolver(""), SessionConfig{}, nil)
	_, err := uc.Session(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Session(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogout_BorraSesion(t *testing.T) {
	store := newMemSessions()
	uc := NewAuthUseCase(&fakeBackend{token: adminToken(t)}, store, access.NewResolver(""), SessionConfig{}, nil)
	res, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@mf.es", Password: "x"})
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), res.SessionID))
	_, err = uc.Session(context.Background(), res.SessionID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestPurgeExpired(t *testing.T) {
	store := newMemSessions()
	now := time.Now()
	_ = store.Create(context.Background(), &entity.Session{ID: "a", ExpiresAt: now.Add(-time.Minute)})
	_ = store.Create(context.Background(), &entity.Session{ID: "b", ExpiresAt: now.Add(time.Hour)})
	uc := NewAuthUseCase(&fakeBackend{}, store, access.NewResolver(""), SessionConfig{}, nil)

	uc.purgeExpired(context.Background())
	assert.Len(t, store.rows, 1)
}

func TestNavigation_SinRol(t *testing.T) {
	nav := Navigation(access.RoleNone)
	assert.Equal(t, "/", nav.Landing)
	assert.NotNil(t, nav.Menu)
	assert.Empty(t, nav.Menu)
}

package auth

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/jhoicas/memberflow-console/internal/application/dto"
	"github.com/jhoicas/memberflow-console/internal/domain"
	"github.com/jhoicas/memberflow-console/internal/domain/access"
	"github.com/jhoicas/memberflow-console/internal/domain/entity"
	"github.com/jhoicas/memberflow-console/internal/domain/repository"
	"github.com/jhoicas/memberflow-console/pkg/logger"
	"github.com/jhoicas/memberflow-console/pkg/validation"
)

// MsgBadCredentials texto del login fallido.
const MsgBadCredentials = "Email o contraseña incorrectos"

// Backend operaciones del backend que usa la autenticación.
type Backend interface {
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context, token string) (*entity.User, error)
}

// SessionConfig duración de la sesión de la consola.
type SessionConfig struct {
	TTL time.Duration
}

// AuthUseCase casos de uso de autenticación: login, logout y sesión.
type AuthUseCase struct {
	backend  Backend
	sessions repository.SessionRepository
	resolver *access.Resolver
	cfg      SessionConfig
	log      *logger.Logger
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(backend Backend, sessions repository.SessionRepository, resolver *access.Resolver, cfg SessionConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 10 * time.Hour
	}
	return &AuthUseCase{
		backend:  backend,
		sessions: sessions,
		resolver: resolver,
		cfg:      cfg,
		log:      log.Named("auth"),
		now:      time.Now,
	}
}

// HashSessionID hash BLAKE2b-256 (hex) del identificador de la cookie. Es la clave en el almacén.
func HashSessionID(raw string) string {
	sum := blake2b.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// Login valida credenciales contra el backend y abre una sesión con el token recibido.
// Un 4xx del backend se devuelve como domain.ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	token, err := uc.backend.Login(ctx, in.Email, in.Password)
	if err != nil {
		var rerr *domain.RemoteError
		if errors.As(err, &rerr) && rerr.Status >= http.StatusBadRequest && rerr.Status < http.StatusInternalServerError {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	raw := uuid.NewString()
	now := uc.now()
	s := &entity.Session{
		ID:        HashSessionID(raw),
		Token:     token,
		Email:     in.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.cfg.TTL),
	}
	if err := uc.sessions.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("login: guardar sesión: %w", err)
	}

	role, ok := uc.resolver.ResolveRole(token)
	if !ok {
		uc.log.Warn().Str("email", in.Email).Msg("token sin rol reconocido")
	}
	uc.log.Info().Str("email", in.Email).Str("role", role.Slug()).Msg("login")
	return &dto.LoginResponse{
		SessionID: raw,
		ExpiresAt: s.ExpiresAt,
		Role:      role.String(),
		Landing:   access.LandingPath(role),
	}, nil
}

// Logout cierra la sesión. Una sesión inexistente no es error.
func (uc *AuthUseCase) Logout(ctx context.Context, rawID string) error {
	if rawID == "" {
		return nil
	}
	if err := uc.sessions.Delete(ctx, HashSessionID(rawID)); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Session devuelve la sesión vigente de la cookie. Sin sesión → ErrUnauthorized; vencida → ErrSessionExpired.
func (uc *AuthUseCase) Session(ctx context.Context, rawID string) (*entity.Session, error) {
	if rawID == "" {
		return nil, domain.ErrUnauthorized
	}
	id := HashSessionID(rawID)
	s, err := uc.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if s == nil {
		return nil, domain.ErrUnauthorized
	}
	if s.Expired(uc.now()) {
		if err := uc.sessions.Delete(ctx, id); err != nil {
			uc.log.Warn().Err(err).Msg("no se pudo borrar la sesión vencida")
		}
		return nil, domain.ErrSessionExpired
	}
	return s, nil
}

// Profile datos del usuario autenticado (/users/me).
func (uc *AuthUseCase) Profile(ctx context.Context, token string) (*entity.User, error) {
	u, err := uc.backend.Me(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("perfil: %w", err)
	}
	return u, nil
}

// Navigation rol, destino y menú para el rol ya resuelto.
func Navigation(role access.Role) dto.NavigationResponse {
	menu := access.Menu(role)
	if menu == nil {
		menu = []access.MenuGroup{}
	}
	return dto.NavigationResponse{
		Role:    role.String(),
		Slug:    role.Slug(),
		Landing: access.LandingPath(role),
		Menu:    menu,
	}
}

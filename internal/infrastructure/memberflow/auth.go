package memberflow

import (
	"context"
	"net/http"

	"github.com/jhoicas/memberflow-console/internal/domain"
	"github.com/jhoicas/memberflow-console/internal/domain/entity"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login intercambia credenciales por el token del backend.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out loginResponse
	err := c.do(ctx, call{
		op: "auth.login", method: http.MethodPost, path: "/auth/login",
		body: loginRequest{Email: email, Password: password},
	}, &out)
	if err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", &domain.RemoteError{Op: "auth.login", Status: http.StatusOK, Message: "respuesta sin token"}
	}
	return out.Token, nil
}

// Me datos del usuario autenticado.
func (c *Client) Me(ctx context.Context, token string) (*entity.User, error) {
	var out entity.User
	if err := c.do(ctx, call{op: "users.me", method: http.MethodGet, path: "/users/me", token: token}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Package memberflow cliente REST del backend de MemberFlow (/api/v1).
// Cada llamada lleva el token Bearer de la sesión; cualquier respuesta no 2xx se devuelve como
// *domain.RemoteError. No hay reintentos.
package memberflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/memberflow-console/internal/domain"
	"github.com/jhoicas/memberflow-console/internal/infrastructure/metrics"
	"github.com/jhoicas/memberflow-console/pkg/logger"
)

const (
	maxErrorBody = 64 * 1024
	maxBody      = 20 * 1024 * 1024
)

// Client adaptador HTTP del backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.BackendMetrics
	log        *logger.Logger
}

// NewClient construye el cliente. baseURL incluye el prefijo /api/v1.
func NewClient(baseURL string, timeout time.Duration, m *metrics.BackendMetrics, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		metrics:    m,
		log:        log.Named("memberflow"),
	}
}

// call describe una petición al backend. op es un nombre estable para logs y métricas.
type call struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
	token  string
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do ejecuta la llamada y decodifica la respuesta JSON en out (si out no es nil).
func (c *Client) do(ctx context.Context, cl call, out any) error {
	raw, err := c.send(ctx, cl, "application/json")
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.log.Warn().Str("op", cl.op).Err(err).Msg("respuesta del backend no válida")
		return &domain.RemoteError{Op: cl.op, Status: http.StatusOK, Message: "respuesta no válida", Err: err}
	}
	return nil
}

// send ejecuta la llamada y devuelve el cuerpo en bruto de una respuesta 2xx.
func (c *Client) send(ctx context.Context, cl call, accept string) ([]byte, error) {
	u := c.baseURL + cl.path
	if len(cl.query) > 0 {
		u += "?" + cl.query.Encode()
	}

	var body io.Reader
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return nil, fmt.Errorf("memberflow %s: serializar request: %w", cl.op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, u, body)
	if err != nil {
		return nil, fmt.Errorf("memberflow %s: crear request: %w", cl.op, err)
	}
	req.Header.Set("Accept", accept)
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cl.token != "" {
		req.Header.Set("Authorization", "Bearer "+cl.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.Observe(cl.op, 0, time.Since(start))
		c.log.Warn().Str("op", cl.op).Err(err).Msg("backend no disponible")
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return nil, &domain.RemoteError{Op: cl.op, Err: err}
	}
	defer resp.Body.Close()
	elapsed := time.Since(start)
	c.metrics.Observe(cl.op, resp.StatusCode, elapsed)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		rerr := &domain.RemoteError{Op: cl.op, Status: resp.StatusCode, Message: errorMessage(raw)}
		c.log.Warn().Str("op", cl.op).Int("status", resp.StatusCode).Dur("elapsed", elapsed).
			Str("detail", rerr.Message).Msg("backend respondió con error")
		return nil, rerr
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, &domain.RemoteError{Op: cl.op, Status: resp.StatusCode, Message: "lectura incompleta", Err: err}
	}
	c.log.Debug().Str("op", cl.op).Int("status", resp.StatusCode).Dur("elapsed", elapsed).Msg("backend")
	return raw, nil
}

// errorMessage extrae el mensaje de error del cuerpo (JSON {message|error} o texto plano).
func errorMessage(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil {
		if eb.Message != "" {
			return eb.Message
		}
		return eb.Error
	}
	s := string(raw)
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}

func idPath(format string, id int) string {
	return fmt.Sprintf(format, id)
}

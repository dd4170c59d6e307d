package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/memberflow-console/pkg/logger"
)

// RequestLogger registra cada petición con su estado, duración y rol. Nunca registra el token.
func RequestLogger(log *logger.Logger) fiber.Handler {
	log = log.Named("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		if herr, ok := c.Locals(LocalError).(error); ok && herr != nil {
			ev = ev.Err(herr)
		} else if err != nil {
			ev = ev.Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("role", GetRole(c).Slug()).
			Msg("request")
		return err
	}
}

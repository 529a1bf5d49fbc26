package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/claims-api/pkg/logger"
)

// RequestLogger registra una línea por petición antes de despacharla.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg(fmt.Sprintf("[%s] request from %s path.", c.Method(), c.Path()))
		return c.Next()
	}
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/claims-api/internal/application/dto"
	"github.com/jhoicas/claims-api/pkg/logger"
)

func respond(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(dto.APIResponse{Success: true, Message: message, Data: data})
}

func respondError(c *fiber.Ctx, status int, message, detail string) error {
	return c.Status(status).JSON(dto.APIResponse{Success: false, Message: message, Error: detail})
}

// respondValidation responde 400 con el par message/error de la validación.
func respondValidation(c *fiber.Ctx, err error) error {
	var ve *dto.ValidationError
	if errors.As(err, &ve) {
		return respondError(c, fiber.StatusBadRequest, ve.Message, ve.Detail)
	}
	return respondError(c, fiber.StatusBadRequest, "Invalid request", err.Error())
}

// ErrorHandler convierte errores no atendidos por los handlers al sobre estándar.
// Los fiber.Error conservan su código; el resto responde 400 con el texto del error.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusBadRequest
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		} else {
			log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		}
		return respondError(c, status, "Request failed", err.Error())
	}
}

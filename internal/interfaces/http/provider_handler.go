package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/claims-api/internal/application/usecase"
	"github.com/jhoicas/claims-api/pkg/logger"
)

// ProviderHandler maneja las peticiones HTTP de proveedores.
type ProviderHandler struct {
	uc  *usecase.ProviderUseCase
	log *logger.Logger
}

// NewProviderHandler construye el handler.
func NewProviderHandler(uc *usecase.ProviderUseCase, log *logger.Logger) *ProviderHandler {
	return &ProviderHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar proveedores activos
// @Tags         providers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.APIResponse{data=[]dto.ProviderResponse}
// @Failure      400  {object}  dto.APIResponse
// @Router       /api/providers [get]
func (h *ProviderHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListActive(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("listar proveedores")
		return respondError(c, fiber.StatusBadRequest, "Failed to retrieve providers", err.Error())
	}
	return respond(c, fiber.StatusOK, "Providers retrieved successfully", list)
}

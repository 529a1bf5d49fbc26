package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/claims-api/internal/application/usecase"
	"github.com/jhoicas/claims-api/pkg/logger"
)

// LogHandler consultas del journal de auditoría (protegido).
type LogHandler struct {
	uc  *usecase.LogUseCase
	log *logger.Logger
}

// NewLogHandler construye el handler.
func NewLogHandler(uc *usecase.LogUseCase, log *logger.Logger) *LogHandler {
	return &LogHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Logs del usuario o de un reclamo
// @Tags         logs
// @Produce      json
// @Security     BearerAuth
// @Param        claimId  query     string  false  "Claim ID"
// @Success      200      {object}  dto.APIResponse{data=[]dto.LogResponse}
// @Router       /api/logs [get]
func (h *LogHandler) List(c *fiber.Ctx) error {
	user, _ := GetUser(c)
	list, err := h.uc.List(c.Context(), user, utils.CopyString(c.Query("claimId")))
	if err != nil {
		return h.fail(c, "Failed to retrieve logs", err)
	}
	return respond(c, fiber.StatusOK, "Logs retrieved successfully", list)
}

// ListByClaim godoc
// @Summary      Logs de un reclamo
// @Tags         logs
// @Produce      json
// @Security     BearerAuth
// @Param        claimId  path      string  true  "Claim ID"
// @Success      200      {object}  dto.APIResponse{data=[]dto.LogResponse}
// @Router       /api/logs/claim/{claimId} [get]
func (h *LogHandler) ListByClaim(c *fiber.Ctx) error {
	list, err := h.uc.ListByClaim(c.Context(), utils.CopyString(c.Params("claimId")))
	if err != nil {
		return h.fail(c, "Failed to retrieve claim logs", err)
	}
	return respond(c, fiber.StatusOK, "Claim logs retrieved successfully", list)
}

// ListByUserAndClaim godoc
// @Summary      Logs propios sobre un reclamo
// @Tags         logs
// @Produce      json
// @Security     BearerAuth
// @Param        claimId  path      string  true  "Claim ID"
// @Success      200      {object}  dto.APIResponse{data=[]dto.LogResponse}
// @Router       /api/logs/claim/{claimId}/user [get]
func (h *LogHandler) ListByUserAndClaim(c *fiber.Ctx) error {
	user, _ := GetUser(c)
	list, err := h.uc.ListByUserAndClaim(c.Context(), user, utils.CopyString(c.Params("claimId")))
	if err != nil {
		return h.fail(c, "Failed to retrieve user claim logs", err)
	}
	return respond(c, fiber.StatusOK, "User claim logs retrieved successfully", list)
}

func (h *LogHandler) fail(c *fiber.Ctx, message string, err error) error {
	h.log.Error().Err(err).Str("path", c.Path()).Msg(message)
	return respondError(c, fiber.StatusBadRequest, message, err.Error())
}

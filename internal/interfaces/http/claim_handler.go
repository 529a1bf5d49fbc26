package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/claims-api/internal/application/claims"
	"github.com/jhoicas/claims-api/internal/application/dto"
	"github.com/jhoicas/claims-api/internal/domain"
	"github.com/jhoicas/claims-api/internal/domain/entity"
	"github.com/jhoicas/claims-api/pkg/logger"
)

// ClaimHandler maneja las peticiones HTTP de reclamos (protegido).
type ClaimHandler struct {
	uc  *claims.ClaimUseCase
	log *logger.Logger
}

// NewClaimHandler construye el handler.
func NewClaimHandler(uc *claims.ClaimUseCase, log *logger.Logger) *ClaimHandler {
	return &ClaimHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar reclamos
// @Description  Managers ven los reclamos de su proveedor; el resto, los propios.
// @Tags         claims
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.APIResponse{data=[]dto.ClaimResponse}
// @Failure      401  {object}  dto.APIResponse
// @Router       /api/claims [get]
func (h *ClaimHandler) List(c *fiber.Ctx) error {
	user, _ := GetUser(c)
	list, err := h.uc.List(c.Context(), user)
	if err != nil {
		return h.fail(c, "Failed to retrieve claims", err)
	}
	return respond(c, fiber.StatusOK, "Claims retrieved successfully", list)
}

// GetByID godoc
// @Summary      Obtener un reclamo
// @Tags         claims
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Claim ID"
// @Success      200  {object}  dto.APIResponse{data=dto.ClaimResponse}
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/claims/{id} [get]
func (h *ClaimHandler) GetByID(c *fiber.Ctx) error {
	user, _ := GetUser(c)
	out, err := h.uc.Get(c.Context(), user, utils.CopyString(c.Params("id")))
	if err != nil {
		return h.fail(c, "Failed to retrieve claim", err)
	}
	return respond(c, fiber.StatusOK, "Claim retrieved successfully", out)
}

// Create godoc
// @Summary      Crear reclamo
// @Description  Solo reclamantes. El reclamo nace en estado pending.
// @Tags         claims
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateClaimRequest  true  "Datos del reclamo"
// @Success      201   {object}  dto.APIResponse{data=dto.ClaimResponse}
// @Failure      400   {object}  dto.APIResponse
// @Failure      403   {object}  dto.APIResponse
// @Router       /api/claims [post]
func (h *ClaimHandler) Create(c *fiber.Ctx) error {
	user, _ := GetUser(c)
	var in dto.CreateClaimRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Failed to create claim", err.Error())
	}
	if err := in.Validate(); err != nil {
		return respondValidation(c, err)
	}
	out, err := h.uc.Create(c.Context(), user, in)
	if err != nil {
		return h.fail(c, "Failed to create claim", err)
	}
	return respond(c, fiber.StatusCreated, "Claim created successfully", out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de un reclamo
// @Description  Reclamantes solo desde pending o rejected; managers sin restricción.
// @Tags         claims
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                        true  "Claim ID"
// @Param        body  body      dto.UpdateClaimStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.APIResponse{data=dto.ClaimResponse}
// @Failure      400   {object}  dto.APIResponse
// @Failure      403   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/claims/{id}/status [patch]
func (h *ClaimHandler) UpdateStatus(c *fiber.Ctx) error {
	user, _ := GetUser(c)
	var in dto.UpdateClaimStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Failed to update claim status", err.Error())
	}
	if err := in.Validate(); err != nil {
		return respondValidation(c, err)
	}
	out, err := h.uc.UpdateStatus(c.Context(), user, utils.CopyString(c.Params("id")), entity.ClaimStatus(in.Status))
	if err != nil {
		return h.fail(c, "Failed to update claim status", err)
	}
	return respond(c, fiber.StatusOK, "Claim status updated successfully", out)
}

// AddComment godoc
// @Summary      Comentar un reclamo
// @Tags         claims
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Claim ID"
// @Param        body  body      dto.AddCommentRequest  true  "Comentario"
// @Success      200   {object}  dto.APIResponse{data=dto.ClaimResponse}
// @Failure      400   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/claims/{id}/comments [post]
func (h *ClaimHandler) AddComment(c *fiber.Ctx) error {
	user, _ := GetUser(c)
	var in dto.AddCommentRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Failed to add comment", err.Error())
	}
	if err := in.Validate(); err != nil {
		return respondValidation(c, err)
	}
	out, err := h.uc.AddComment(c.Context(), user, utils.CopyString(c.Params("id")), in.Message)
	if err != nil {
		return h.fail(c, "Failed to add comment", err)
	}
	return respond(c, fiber.StatusOK, "Comment added successfully", out)
}

// ListByProvider godoc
// @Summary      Reclamos de un proveedor
// @Description  Solo el manager del proveedor. Filtro opcional por estado.
// @Tags         providers
// @Produce      json
// @Security     BearerAuth
// @Param        providerId  path      string  true   "Provider ID"
// @Param        status      query     string  false  "pending|submitted|review|approved|rejected"
// @Success      200         {object}  dto.APIResponse{data=[]dto.ClaimResponse}
// @Failure      400         {object}  dto.APIResponse
// @Failure      403         {object}  dto.APIResponse
// @Router       /api/providers/{providerId}/claims [get]
func (h *ClaimHandler) ListByProvider(c *fiber.Ctx) error {
	providerID := utils.CopyString(c.Params("providerId"))
	status := utils.CopyString(c.Query("status"))
	list, err := h.uc.ListByProvider(c.Context(), providerID, status)
	if err != nil {
		return h.fail(c, "Failed to retrieve claims", err)
	}
	return respond(c, fiber.StatusOK, "Claims retrieved successfully", list)
}

// fail traduce los errores del caso de uso al sobre de respuesta.
func (h *ClaimHandler) fail(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, domain.ErrClaimNotFound):
		return respondError(c, fiber.StatusNotFound, "Claim not found", "Invalid claim ID")
	case errors.Is(err, domain.ErrClaimLocked):
		return respondError(c, fiber.StatusForbidden, "Cannot update claim", err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return respondError(c, fiber.StatusForbidden, "Access denied", err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return respondError(c, fiber.StatusBadRequest, message, err.Error())
	}
	h.log.Error().Err(err).Str("path", c.Path()).Msg(message)
	return respondError(c, fiber.StatusBadRequest, message, err.Error())
}

package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/claims-api/internal/application/auth"
	"github.com/jhoicas/claims-api/internal/application/dto"
	"github.com/jhoicas/claims-api/internal/domain/entity"
	"github.com/jhoicas/claims-api/pkg/logger"
)

// AuthService lo implementa auth.AuthUseCase.
type AuthService interface {
	TokenValidator
	Register(ctx context.Context, in dto.RegisterRequest) (*entity.User, error)
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
}

// AuthHandler maneja registro y login.
type AuthHandler struct {
	uc  AuthService
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, email, password, role, providerId"
// @Success      201   {object}  dto.APIResponse{data=dto.UserResponse}
// @Failure      400   {object}  dto.APIResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Failed to register user", "invalid request body")
	}
	// La validación se resuelve aquí: con datos inválidos el caso de uso no se invoca.
	if err := in.Validate(); err != nil {
		return respondValidation(c, err)
	}
	user, err := h.uc.Register(c.Context(), in)
	if err != nil {
		if !auth.IsClientError(err) {
			h.log.Error().Err(err).Str("email", in.Email).Msg("registro de usuario")
		}
		return respondError(c, fiber.StatusBadRequest, "Failed to register user", err.Error())
	}
	return respond(c, fiber.StatusCreated, "User registered successfully", dto.NewUserResponse(user))
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.APIResponse{data=dto.LoginResponse}
// @Failure      400   {object}  dto.APIResponse
// @Failure      401   {object}  dto.APIResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Missing credentials", "Email and password are required")
	}
	if err := in.Validate(); err != nil {
		return respondValidation(c, err)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if !auth.IsClientError(err) {
			h.log.Error().Err(err).Msg("login")
		}
		return respondError(c, fiber.StatusUnauthorized, "Login failed", err.Error())
	}
	return respond(c, fiber.StatusOK, "Login successful", out)
}

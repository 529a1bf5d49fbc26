package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/claims-api/internal/domain/entity"
)

// LocalUser clave en c.Locals del usuario autenticado.
const LocalUser = "user"

// TokenValidator lo implementa auth.AuthUseCase.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*entity.AuthenticatedUser, error)
}

// Authenticate valida el header "Authorization: Bearer <token>" y adjunta el usuario a c.Locals.
func Authenticate(validator TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return respondError(c, fiber.StatusUnauthorized, "No token provided", "Authentication required")
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return respondError(c, fiber.StatusUnauthorized, "Invalid token format", "Token must be Bearer token")
		}
		user, err := validator.ValidateToken(c.Context(), utils.CopyString(parts[1]))
		if err != nil {
			return respondError(c, fiber.StatusUnauthorized, "Authentication failed", err.Error())
		}
		c.Locals(LocalUser, *user)
		return c.Next()
	}
}

// GetUser devuelve el usuario adjuntado por Authenticate.
func GetUser(c *fiber.Ctx) (entity.AuthenticatedUser, bool) {
	u, ok := c.Locals(LocalUser).(entity.AuthenticatedUser)
	return u, ok
}

// AuthorizeManager deja pasar solo a managers.
func AuthorizeManager() fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, ok := GetUser(c)
		if !ok || u.Role != entity.RoleManager {
			return respondError(c, fiber.StatusForbidden, "Access denied", "Manager role required")
		}
		return c.Next()
	}
}

// AuthorizeProvider deja pasar solo al manager del proveedor indicado.
// Rol incorrecto y proveedor incorrecto dan la misma respuesta.
func AuthorizeProvider(providerID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return checkProvider(c, providerID)
	}
}

// AuthorizeProviderParam aplica AuthorizeProvider con el valor del segmento de ruta indicado.
func AuthorizeProviderParam(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return checkProvider(c, c.Params(param))
	}
}

func checkProvider(c *fiber.Ctx, providerID string) error {
	u, ok := GetUser(c)
	if !ok || u.Role != entity.RoleManager || providerID == "" || u.ProviderID != providerID {
		return respondError(c, fiber.StatusForbidden, "Access denied", "Invalid provider access")
	}
	return c.Next()
}

// AuthorizeClaimant deja pasar solo a reclamantes; sin usuario adjunto también es 403.
func AuthorizeClaimant() fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, ok := GetUser(c)
		if !ok || u.Role != entity.RoleClaimant {
			return respondError(c, fiber.StatusForbidden, "Access denied", "Claimant role required")
		}
		return c.Next()
	}
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/claims-api/internal/application/claims"
	"github.com/jhoicas/claims-api/internal/application/usecase"
	"github.com/jhoicas/claims-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     AuthService
	ClaimUC    *claims.ClaimUseCase
	LogUC      *usecase.LogUseCase
	ProviderUC *usecase.ProviderUseCase
	Logger     *logger.Logger
	BasePath   string // por defecto "/api"
}

// Health responde "ok" en texto plano.
func Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).SendString("ok")
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	basePath := deps.BasePath
	if basePath == "" {
		basePath = "/api"
	}
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	app.Get("/health", Health)

	api := app.Group(basePath, RequestLogger(log))
	api.Get("/health", Health)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, log)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	authenticate := Authenticate(deps.AuthUC)

	// Claims (protegido)
	claimHandler := NewClaimHandler(deps.ClaimUC, log)
	claimsGroup := api.Group("/claims", authenticate)
	claimsGroup.Get("/", claimHandler.List)
	claimsGroup.Post("/", AuthorizeClaimant(), claimHandler.Create)
	claimsGroup.Get("/:id", claimHandler.GetByID)
	claimsGroup.Patch("/:id/status", claimHandler.UpdateStatus)
	claimsGroup.Post("/:id/comments", claimHandler.AddComment)

	// Logs (protegido)
	logHandler := NewLogHandler(deps.LogUC, log)
	logs := api.Group("/logs", authenticate)
	logs.Get("/", logHandler.List)
	logs.Get("/claim/:claimId", logHandler.ListByClaim)
	logs.Get("/claim/:claimId/user", logHandler.ListByUserAndClaim)

	// Providers (protegido)
	providerHandler := NewProviderHandler(deps.ProviderUC, log)
	providers := api.Group("/providers", authenticate)
	providers.Get("/", providerHandler.List)
	providers.Get("/:providerId/claims", AuthorizeProviderParam("providerId"), claimHandler.ListByProvider)
}

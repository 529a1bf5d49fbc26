// @title						Claims API
// @version					1.0
// @description				API de gestión de reclamos de beneficios con roles manager y claimant.
// @host						localhost:4000
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/claims-api/docs"
	"github.com/jhoicas/claims-api/internal/application/auth"
	"github.com/jhoicas/claims-api/internal/application/claims"
	"github.com/jhoicas/claims-api/internal/application/usecase"
	"github.com/jhoicas/claims-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/claims-api/internal/interfaces/http"
	"github.com/jhoicas/claims-api/pkg/config"
	"github.com/jhoicas/claims-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store := postgres.NewStore(cfg.DB)
	pool, err := store.Connect(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer store.Close()
	log.Info().Msg("Connected to PostgreSQL")

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	userRepo := postgres.NewUserRepository(pool)
	providerRepo := postgres.NewProviderRepository(pool)
	claimRepo := postgres.NewClaimRepository(pool)
	logRepo := postgres.NewLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, providerRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
		BcryptCost: cfg.Auth.BcryptCost,
	})
	claimUC := claims.NewClaimUseCase(claimRepo, txRunner)
	logUC := usecase.NewLogUseCase(logRepo)
	providerUC := usecase.NewProviderUseCase(providerRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	if cfg.Swagger.Enabled {
		docs.SwaggerInfo.Host = cfg.HTTP.Addr()
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Swagger.FilePath,
			Path:     "docs",
			Title:    docs.SwaggerInfo.Title,
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ClaimUC:    claimUC,
		LogUC:      logUC,
		ProviderUC: providerUC,
		Logger:     log,
		BasePath:   cfg.HTTP.BasePath,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

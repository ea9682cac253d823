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

	"github.com/bancodealimentos/estoque-api/internal/application/auth"
	"github.com/bancodealimentos/estoque-api/internal/application/inventory"
	"github.com/bancodealimentos/estoque-api/internal/application/report"
	"github.com/bancodealimentos/estoque-api/internal/infrastructure/postgres"
	httpRouter "github.com/bancodealimentos/estoque-api/internal/interfaces/http"
	"github.com/bancodealimentos/estoque-api/pkg/config"
	"github.com/bancodealimentos/estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migração do esquema")
	}

	if err := os.MkdirAll(cfg.Storage.UploadDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Storage.UploadDir).Msg("diretório de uploads")
	}

	stockRepo := postgres.NewStockRepository(pool)
	movRepo := postgres.NewMovementRepository(pool)
	responsibleRepo := postgres.NewResponsibleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := inventory.NewLedgerUseCase(txRunner)
	queryUC := inventory.NewQueryUseCase(stockRepo, movRepo, log)
	dashboardUC := inventory.NewDashboardUseCase(statsRepo, log)
	exporter := report.NewExcelExporter(movRepo)
	authUC := auth.NewUseCase(userRepo, cfg.JWT, log)

	if err := authUC.SeedAdmin(cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("seed do administrador")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 * 1024 * 1024, // uploads de fotos
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estoque API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LedgerUC:        ledgerUC,
		QueryUC:         queryUC,
		DashboardUC:     dashboardUC,
		Exporter:        exporter,
		ResponsibleRepo: responsibleRepo,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
		UploadDir:       cfg.Storage.UploadDir,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação finalizada")
}

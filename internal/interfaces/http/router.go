package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bancodealimentos/estoque-api/internal/application/auth"
	"github.com/bancodealimentos/estoque-api/internal/application/inventory"
	"github.com/bancodealimentos/estoque-api/internal/application/report"
	"github.com/bancodealimentos/estoque-api/internal/domain/repository"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	LedgerUC        *inventory.LedgerUseCase
	QueryUC         *inventory.QueryUseCase
	DashboardUC     *inventory.DashboardUseCase
	Exporter        *report.ExcelExporter
	ResponsibleRepo repository.ResponsibleRepository
	AuthUC          *auth.UseCase
	JWTSecret       string
	UploadDir       string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(LangMiddleware())

	// Imagens de produtos
	app.Static("/static/img", deps.UploadDir)

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Traduções (público: a tela de login precisa delas)
	api.Get("/translations", Translations)

	// Rotas protegidas (Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Estoque
	stock := protected.Group("/estoque")
	stockHandler := NewStockHandler(deps.LedgerUC, deps.QueryUC)
	stock.Get("/", stockHandler.List)
	stock.Post("/", stockHandler.Intake)
	stock.Get("/codigo/:codigo", stockHandler.ByBarcode)
	stock.Post("/limpeza", stockHandler.Sweep)
	stock.Post("/:id/retirada", stockHandler.Withdraw)
	stock.Post("/:id/ajuste", stockHandler.Adjust)

	// Painel
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Stats)

	// Histórico
	movements := protected.Group("/movimentacoes")
	movementHandler := NewMovementHandler(deps.QueryUC, deps.Exporter)
	movements.Get("/", movementHandler.List)
	movements.Get("/export", movementHandler.Export)

	// Responsáveis
	responsibles := protected.Group("/responsaveis")
	responsibleHandler := NewResponsibleHandler(deps.ResponsibleRepo)
	responsibles.Get("/", responsibleHandler.List)
	responsibles.Post("/", responsibleHandler.Create)
	responsibles.Delete("/:id", responsibleHandler.Delete)

	// Upload de imagens
	uploadHandler := NewUploadHandler(deps.UploadDir)
	protected.Post("/uploads", uploadHandler.Upload)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mercogestor-api/internal/application/analytics"
	"github.com/jhoicas/mercogestor-api/internal/application/auth"
	"github.com/jhoicas/mercogestor-api/internal/application/usecase"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	MovementUC  *usecase.MovementUseCase
	UserUC      *usecase.UserUseCase
	AuthUC      *auth.AuthUseCase
	AlertsUC    *analytics.AlertsUseCase
	ReportUC    *analytics.ReportUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := api.Group("/categories")
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/stock", productHandler.Stock)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	movementHandler := NewMovementHandler(deps.MovementUC)
	movements := api.Group("/movements")
	movements.Post("/", movementHandler.Create)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Put("/:id", movementHandler.Update)
	movements.Delete("/:id", movementHandler.Delete)

	// Users: leitura pública, mutações com Bearer Token
	userHandler := NewUserHandler(deps.UserUC)
	users := api.Group("/users")
	users.Post("/", requireAuth, userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", requireAuth, userHandler.Update)
	users.Delete("/:id", requireAuth, userHandler.Delete)

	alertsHandler := NewAlertsHandler(deps.AlertsUC)
	alerts := api.Group("/alerts")
	alerts.Get("/low-stock", alertsHandler.LowStock)
	alerts.Get("/expiration", alertsHandler.Expiration)

	api.Get("/reports/summary", NewReportHandler(deps.ReportUC).Summary)
	api.Get("/dashboard", NewDashboardHandler(deps.DashboardUC).GetSummary)
}

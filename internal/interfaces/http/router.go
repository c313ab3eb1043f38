package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockpilot-api/internal/application/analytics"
	"github.com/tu-usuario/stockpilot-api/internal/application/auth"
	"github.com/tu-usuario/stockpilot-api/internal/application/usecase"
	"github.com/tu-usuario/stockpilot-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProductUC     *usecase.ProductUseCase
	TransactionUC *usecase.TransactionUseCase
	DashboardUC   *analytics.DashboardUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
//
// Lectura del catálogo: cualquier usuario autenticado (admin o staff).
// Mutaciones del catálogo: solo admin. La autorización se decide aquí,
// nunca en el cliente.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/profile", authHandler.Profile)

	// Products
	productHandler := NewProductHandler(deps.ProductUC)
	adminOnly := RequireRole(entity.RoleAdmin)
	protected.Get("/products", productHandler.Get)
	protected.Post("/products", adminOnly, productHandler.Create)
	protected.Put("/products", adminOnly, productHandler.Update)
	protected.Delete("/products", adminOnly, productHandler.Delete)
	protected.Get("/categories", productHandler.Categories)

	// Stock movements
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	protected.Post("/transactions", transactionHandler.Record)
	protected.Get("/transactions", transactionHandler.List)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/backoffice-api/internal/application/auth"
	"github.com/jhoicas/backoffice-api/internal/application/stock"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	ProductUC   *usecase.ProductUseCase
	AdjustStock *stock.AdjustStockUseCase
	History     *stock.HistoryUseCase
	Overview    *stock.OverviewUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. El back-office es de uso administrativo:
// todo menos el login exige token, y la gestión completa exige rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/me", authHandler.Me)

	// El resto es solo admin
	admin := protected.Group("/", RequireRole(entity.RoleAdmin))

	// Users
	userHandler := NewUserHandler(deps.UserUC)
	users := admin.Group("/users")
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)

	// Products y variantes
	productHandler := NewProductHandler(deps.ProductUC)
	products := admin.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/:id/variants", productHandler.CreateVariant)

	// Stock: vista general, movimientos e histórico
	stockHandler := NewStockHandler(deps.AdjustStock, deps.History, deps.Overview)
	stockGroup := admin.Group("/stock")
	stockGroup.Get("/", stockHandler.Overview)
	stockGroup.Get("/history", stockHandler.History)
	stockGroup.Post("/variants/:id/movements", stockHandler.AdjustStock)
}

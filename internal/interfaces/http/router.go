package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estoque-api/internal/application/analytics"
	"github.com/jhoicas/Estoque-api/internal/application/auth"
	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC       *usecase.ProductUseCase
	StockItemUC     *usecase.StockItemUseCase
	MovementUC      *usecase.MovementUseCase
	OrderUC         *usecase.OrderUseCase
	CustomerUC      *usecase.CustomerUseCase
	UserUC          *usecase.UserUseCase
	AuthUC          *auth.AuthUseCase
	ReportUC        *analytics.ReportUseCase
	ReplenishmentUC *inventory.ReplenishmentUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	productHandler := NewProductHandler(deps.ProductUC, deps.MovementUC)
	products := protected.Group("/produtos")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/ajuste", productHandler.Adjust)

	stockHandler := NewStockItemHandler(deps.StockItemUC, deps.MovementUC)
	stock := protected.Group("/estoque")
	stock.Get("/", stockHandler.List)
	stock.Post("/", stockHandler.Create)
	stock.Put("/:id", stockHandler.Update)
	stock.Delete("/:id", stockHandler.Delete)
	stock.Post("/:id/ajuste", stockHandler.Adjust)

	movementHandler := NewMovementHandler(deps.MovementUC)
	entries := protected.Group("/entradas")
	entries.Get("/", movementHandler.ListEntries)
	entries.Post("/", movementHandler.CreateEntry)
	entries.Put("/:id", movementHandler.UpdateEntry)
	entries.Delete("/:id", movementHandler.DeleteEntry)

	exits := protected.Group("/saidas")
	exits.Get("/", movementHandler.ListExits)
	exits.Post("/", movementHandler.CreateExit)
	exits.Put("/:id", movementHandler.UpdateExit)
	exits.Delete("/:id", movementHandler.DeleteExit)

	sales := protected.Group("/vendas")
	sales.Get("/", movementHandler.ListSales)
	sales.Post("/", movementHandler.CreateSale)
	sales.Put("/:id", movementHandler.UpdateSale)
	sales.Delete("/:id", movementHandler.DeleteSale)

	orderHandler := NewOrderHandler(deps.OrderUC, deps.MovementUC)
	orders := protected.Group("/pedidos")
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)

	customerHandler := NewCustomerHandler(deps.CustomerUC)
	protected.Get("/clientes", customerHandler.List)
	protected.Post("/clientes", customerHandler.Create)
	protected.Get("/vendedores", customerHandler.ListSellers)
	protected.Get("/formas-pagamento", customerHandler.ListPaymentMethods)

	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/usuarios")
	users.Get("/", userHandler.ListUsers)
	users.Post("/", userHandler.CreateUser)
	users.Put("/:id", userHandler.UpdateUser)
	users.Delete("/:id", userHandler.DeleteUser)

	employees := protected.Group("/funcionarios")
	employees.Get("/", userHandler.ListEmployees)
	employees.Post("/", userHandler.CreateEmployee)
	employees.Put("/:id", userHandler.UpdateEmployee)
	employees.Delete("/:id", userHandler.DeleteEmployee)

	reportHandler := NewReportHandler(deps.ReportUC, deps.ReplenishmentUC)
	reports := protected.Group("/relatorios")
	reports.Get("/lucros", reportHandler.ProfitTotals)
	reports.Get("/fechamento-caixa", reportHandler.CashClosing)
	reports.Get("/reposicao", reportHandler.Replenishment)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tu-usuario/stock-ledger/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AdjustUC      *inventory.AdjustStockUseCase
	QueryUC       *inventory.StockQueryUseCase
	JWTSecret     string
	ExposeMetrics bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.ExposeMetrics {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token del servicio de identidad)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.AdjustUC, deps.QueryUC)
	stockGroup.Get("/branch/:branchId", stockHandler.GetBranchStock)
	stockGroup.Post("/branch/:branchId/inbound", stockHandler.Inbound)
	stockGroup.Post("/branch/:branchId/sale", stockHandler.Sale)
	stockGroup.Post("/branch/:branchId/adjustment", stockHandler.Adjustment)
	stockGroup.Post("/branch/:branchId/transfer", stockHandler.Transfer)
	stockGroup.Get("/movements/branch/:branchId/item/:itemId", stockHandler.GetMovements)
	stockGroup.Get("/summaries/branch/:branchId/item/:itemId", stockHandler.GetMonthlySummaries)
}

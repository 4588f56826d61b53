package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/alerts"
	"github.com/jhoicas/Farmacia-api/internal/application/analytics"
	"github.com/jhoicas/Farmacia-api/internal/application/auth"
	"github.com/jhoicas/Farmacia-api/internal/application/sales"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MedicineUC  *usecase.MedicineUseCase
	SupplierUC  *usecase.SupplierUseCase
	RecordSale  *sales.RecordSaleUseCase
	ReceiptUC   *sales.ReceiptUseCase
	AlertsUC    *alerts.UseCase
	DashboardUC *analytics.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole(entity.RoleAdmin)
	adminOrFarma := RequireRole(entity.RoleAdmin, entity.RoleFarmaceutico)

	// Medicines (protegido)
	medicines := protected.Group("/medicines")
	medicineHandler := NewMedicineHandler(deps.MedicineUC)
	medicines.Post("/", adminOrFarma, medicineHandler.Create)
	medicines.Get("/", medicineHandler.List)
	medicines.Get("/categories", medicineHandler.Categories)
	medicines.Get("/barcode/:code", medicineHandler.GetByBarcode)
	medicines.Get("/:id", medicineHandler.GetByID)
	medicines.Put("/:id", adminOrFarma, medicineHandler.Update)
	medicines.Post("/:id/batches", adminOrFarma, medicineHandler.AddBatches)
	medicines.Delete("/:id", adminOnly, medicineHandler.Delete)

	// Sales (protegido; cualquier rol autenticado puede vender)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.RecordSale, deps.ReceiptUC)
	salesGroup.Post("/", saleHandler.Record)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id/receipt", saleHandler.DownloadReceipt)

	// Alerts (protegido)
	alertsGroup := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertsUC)
	alertsGroup.Get("/", alertHandler.GetAlerts)

	// Dashboard (protegido)
	dashboardGroup := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboardGroup.Get("/", dashboardHandler.GetDashboard)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", adminOrFarma, supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", adminOrFarma, supplierHandler.Update)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)
}

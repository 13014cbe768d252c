package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/felipefpires/erp-api/internal/application/auth"
	"github.com/felipefpires/erp-api/internal/application/inventory"
	"github.com/felipefpires/erp-api/internal/application/reports"
	"github.com/felipefpires/erp-api/internal/application/usecase"
	"github.com/felipefpires/erp-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	ProductUC     *usecase.ProductUseCase
	CategoryUC    *usecase.CategoryUseCase
	Ledger        *inventory.LedgerUseCase
	InventoryQ    *inventory.QueryUseCase
	CustomerUC    *usecase.CustomerUseCase
	SaleUC        *usecase.SaleUseCase
	AccountUC     *usecase.AccountUseCase
	TransactionUC *usecase.TransactionUseCase
	InvoiceUC     *usecase.InvoiceUseCase
	AppointmentUC *usecase.AppointmentUseCase
	EventUC       *usecase.EventUseCase
	SettingsUC    *usecase.SettingsUseCase
	SummaryUC     *reports.SummaryUseCase
	MovementsUC   *reports.MovementsUseCase
	JWTSecret     string
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

	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/change-password", authHandler.ChangePassword)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Inventory: libro de movimientos y reportes (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Ledger, deps.InventoryQ)
	reportHandler := NewReportHandler(deps.SummaryUC, deps.MovementsUC)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/movements/product/:id", inventoryHandler.ProductHistory)
	invGroup.Get("/stock-summary", inventoryHandler.StockSummary)
	invGroup.Get("/reports", reportHandler.InventoryReport)
	invGroup.Get("/reports/movements", reportHandler.MovementsByRange)

	// Customers (protegido, CRM)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Sales (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Post("/:id/cancel", saleHandler.Cancel)

	// Finance: cuentas, transacciones y facturas (protegido)
	finance := protected.Group("/finance")
	financeHandler := NewFinanceHandler(deps.AccountUC, deps.TransactionUC, deps.InvoiceUC)
	finance.Post("/accounts", financeHandler.CreateAccount)
	finance.Get("/accounts", financeHandler.ListAccounts)
	finance.Get("/accounts/:id", financeHandler.GetAccount)
	finance.Put("/accounts/:id", financeHandler.UpdateAccount)
	finance.Delete("/accounts/:id", financeHandler.DeleteAccount)
	finance.Post("/transactions", financeHandler.CreateTransaction)
	finance.Get("/transactions", financeHandler.ListTransactions)
	finance.Post("/transactions/:id/complete", financeHandler.CompleteTransaction)
	finance.Post("/transactions/:id/cancel", financeHandler.CancelTransaction)
	finance.Delete("/transactions/:id", financeHandler.DeleteTransaction)
	finance.Post("/invoices", financeHandler.CreateInvoice)
	finance.Get("/invoices", financeHandler.ListInvoices)
	finance.Get("/invoices/:id", financeHandler.GetInvoice)
	finance.Post("/invoices/:id/pay", financeHandler.PayInvoice)
	finance.Post("/invoices/:id/cancel", financeHandler.CancelInvoice)
	finance.Get("/invoices/:id/pdf", financeHandler.InvoicePDF)
	finance.Post("/invoices/:id/send", financeHandler.SendInvoice)

	// Schedule: citas y eventos (protegido)
	schedule := protected.Group("/schedule")
	scheduleHandler := NewScheduleHandler(deps.AppointmentUC, deps.EventUC)
	schedule.Post("/appointments", scheduleHandler.CreateAppointment)
	schedule.Get("/appointments", scheduleHandler.ListAppointments)
	schedule.Get("/appointments/range", scheduleHandler.AppointmentsByRange)
	schedule.Get("/appointments/:id", scheduleHandler.GetAppointment)
	schedule.Put("/appointments/:id", scheduleHandler.UpdateAppointment)
	schedule.Delete("/appointments/:id", scheduleHandler.DeleteAppointment)
	schedule.Post("/events", scheduleHandler.CreateEvent)
	schedule.Get("/events", scheduleHandler.ListEvents)
	schedule.Get("/events/range", scheduleHandler.EventsByRange)
	schedule.Get("/events/:id", scheduleHandler.GetEvent)
	schedule.Put("/events/:id", scheduleHandler.UpdateEvent)
	schedule.Delete("/events/:id", scheduleHandler.DeleteEvent)

	// Settings (solo admin)
	settings := protected.Group("/settings", RequireRole(entity.RoleAdmin))
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/system", settingsHandler.GetSystem)
	settings.Put("/system", settingsHandler.UpdateSystem)
	settings.Get("/email", settingsHandler.GetEmail)
	settings.Put("/email", settingsHandler.UpdateEmail)
	settings.Get("/backup", settingsHandler.GetBackup)
	settings.Put("/backup", settingsHandler.UpdateBackup)

	// Dashboard (protegido)
	protected.Get("/dashboard", reportHandler.Dashboard)
}

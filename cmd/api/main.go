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

	"github.com/felipefpires/erp-api/internal/application/auth"
	"github.com/felipefpires/erp-api/internal/application/inventory"
	"github.com/felipefpires/erp-api/internal/application/reports"
	"github.com/felipefpires/erp-api/internal/application/usecase"
	"github.com/felipefpires/erp-api/internal/infrastructure/mail"
	infrapdf "github.com/felipefpires/erp-api/internal/infrastructure/pdf"
	"github.com/felipefpires/erp-api/internal/infrastructure/postgres"
	httpRouter "github.com/felipefpires/erp-api/internal/interfaces/http"
	"github.com/felipefpires/erp-api/pkg/config"
	"github.com/felipefpires/erp-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	appointmentRepo := postgres.NewAppointmentRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := inventory.NewLedgerUseCase(txRunner)
	inventoryQueryUC := inventory.NewQueryUseCase(movementRepo, reportRepo)
	authUC := auth.NewUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, movementRepo, saleRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo, saleRepo, appointmentRepo)
	saleUC := usecase.NewSaleUseCase(txRunner, saleRepo, customerRepo, ledgerUC)
	accountUC := usecase.NewAccountUseCase(accountRepo)
	transactionUC := usecase.NewTransactionUseCase(txRunner, transactionRepo, accountRepo)

	// PDF de factura y envío por correo (SMTP leído de email_settings)
	pdfRenderer := infrapdf.NewInvoiceRenderer()
	mailer := mail.NewSender(settingsRepo, cfg.SMTP.From)
	invoiceUC := usecase.NewInvoiceUseCase(
		invoiceRepo, saleRepo, customerRepo, productRepo,
		settingsRepo, pdfRenderer, mailer,
	)

	appointmentUC := usecase.NewAppointmentUseCase(appointmentRepo, customerRepo)
	eventUC := usecase.NewEventUseCase(eventRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	summaryUC := reports.NewSummaryUseCase(reportRepo, appointmentRepo)
	movementsUC := reports.NewMovementsUseCase(movementRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ERP API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ProductUC:     productUC,
		CategoryUC:    categoryUC,
		Ledger:        ledgerUC,
		InventoryQ:    inventoryQueryUC,
		CustomerUC:    customerUC,
		SaleUC:        saleUC,
		AccountUC:     accountUC,
		TransactionUC: transactionUC,
		InvoiceUC:     invoiceUC,
		AppointmentUC: appointmentUC,
		EventUC:       eventUC,
		SettingsUC:    settingsUC,
		SummaryUC:     summaryUC,
		MovementsUC:   movementsUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

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

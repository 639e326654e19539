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

	"github.com/glanzwerk/rechnung-api/internal/application/auth"
	"github.com/glanzwerk/rechnung-api/internal/application/billing"
	"github.com/glanzwerk/rechnung-api/internal/application/catalog"
	infrapdf "github.com/glanzwerk/rechnung-api/internal/infrastructure/pdf"
	"github.com/glanzwerk/rechnung-api/internal/infrastructure/postgres"
	httpRouter "github.com/glanzwerk/rechnung-api/internal/interfaces/http"
	"github.com/glanzwerk/rechnung-api/pkg/config"
	"github.com/glanzwerk/rechnung-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("ensure database schema")
	}

	userRepo := postgres.NewUserRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	catalogUC := catalog.NewUseCase(serviceRepo)
	customerUC := billing.NewCustomerUseCase(customerRepo, invoiceRepo)
	createInvoiceUC := billing.NewCreateInvoiceUseCase(txRunner, serviceRepo, customerRepo, invoiceRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(billing.ShopInfo{
		Name:     cfg.Shop.Name,
		Address:  cfg.Shop.Address,
		City:     cfg.Shop.City,
		Phone:    cfg.Shop.Phone,
		Email:    cfg.Shop.Email,
		BankName: cfg.Shop.BankName,
		IBAN:     cfg.Shop.IBAN,
		BIC:      cfg.Shop.BIC,
	})
	pdfUC := billing.NewPDFUseCase(invoiceRepo, customerRepo, pdfGenerator)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Glanzwerk Rechnung API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CatalogUC:     catalogUC,
		CustomerUC:    customerUC,
		CreateInvoice: createInvoiceUC,
		PDFUC:         pdfUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}

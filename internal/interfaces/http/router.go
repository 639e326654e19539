package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glanzwerk/rechnung-api/internal/application/auth"
	"github.com/glanzwerk/rechnung-api/internal/application/billing"
	"github.com/glanzwerk/rechnung-api/internal/application/catalog"
	"github.com/glanzwerk/rechnung-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	CatalogUC     *catalog.UseCase
	CustomerUC    *billing.CustomerUseCase
	CreateInvoice *billing.CreateInvoiceUseCase
	PDFUC         *billing.PDFUseCase
	JWTSecret     string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Service catalog (reads for all staff, writes admin-only)
	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.CatalogUC)
	services.Get("/", serviceHandler.List)
	services.Get("/:name", serviceHandler.GetByName)
	adminOnly := RequireRole(entity.RoleAdmin)
	services.Post("/", adminOnly, serviceHandler.Create)
	services.Put("/:id", adminOnly, serviceHandler.Update)
	services.Delete("/:id", adminOnly, serviceHandler.Delete)

	// Customers (protected)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id/invoices", customerHandler.History)

	// Invoices (protected)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.PDFUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Post("/quote", invoiceHandler.Quote)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glanzwerk/rechnung-api/internal/application/billing"
	"github.com/glanzwerk/rechnung-api/internal/application/dto"
)

// InvoiceHandler handles invoicing requests (protected).
type InvoiceHandler struct {
	uc    *billing.CreateInvoiceUseCase
	pdfUC *billing.PDFUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(uc *billing.CreateInvoiceUseCase, pdfUC *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdfUC: pdfUC}
}

// Create finalizes a draft into a numbered, persisted invoice.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	invoice, err := h.uc.CreateInvoice(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// Quote computes totals for the given lines and discount without persisting.
// POST /api/invoices/quote
func (h *InvoiceHandler) Quote(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	summary, err := h.uc.Quote(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// GetByID returns a persisted invoice with its line items.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id required"})
	}
	invoice, err := h.uc.GetInvoice(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(invoice)
}

// DownloadPDF renders the printable document for a persisted invoice.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id required"})
	}
	pdfBytes, filename, err := h.pdfUC.DownloadInvoicePDF(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

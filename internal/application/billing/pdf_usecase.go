package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/glanzwerk/rechnung-api/internal/domain"
	"github.com/glanzwerk/rechnung-api/internal/domain/repository"
)

// PDFUseCase renders the printable document for a persisted invoice.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	generator    InvoicePDFGenerator
}

// NewPDFUseCase wires the use case.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		generator:    generator,
	}
}

// DownloadInvoicePDF loads the persisted invoice, customer and items and
// renders the PDF. Every figure on the document comes verbatim from the
// store, so the document always matches the stored record.
//
// Returns (pdfBytes, filename, nil) on success or domain.ErrNotFound if the
// invoice does not exist.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load invoice: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	customer, err := uc.customerRepo.GetByID(inv.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load customer: %w", err)
	}
	if customer == nil {
		return nil, "", fmt.Errorf("pdf: customer %s of invoice %s: %w", inv.CustomerID, inv.Number, domain.ErrNotFound)
	}

	items, err := uc.invoiceRepo.GetItemsByInvoiceID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load items: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, customer, items)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generate: %w", err)
	}

	return pdfBytes, Filename(customer.Name, inv.Number), nil
}

// Filename derives the deterministic document name from customer name and
// invoice number, e.g. "Rechnung_Max_Mustermann_2025-1001.pdf".
func Filename(customerName, number string) string {
	return fmt.Sprintf("Rechnung_%s_%s.pdf", strings.ReplaceAll(customerName, " ", "_"), number)
}

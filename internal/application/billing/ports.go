package billing

import (
	"context"

	"github.com/glanzwerk/rechnung-api/internal/domain/entity"
	"github.com/glanzwerk/rechnung-api/internal/domain/repository"
)

// TxRunner executes fn inside one store transaction so that reading the latest
// invoice number, upserting the customer and inserting header plus items are
// atomic. Two concurrent submissions can never claim the same number and a
// failed insert leaves no partial invoice behind.
type TxRunner interface {
	RunBilling(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// ShopInfo is the issuer block printed on every invoice document.
type ShopInfo struct {
	Name     string
	Address  string
	City     string
	Phone    string
	Email    string
	BankName string
	IBAN     string
	BIC      string
}

// InvoicePDFGenerator renders a persisted invoice as a PDF byte stream.
// All figures are taken verbatim from the stored record; the renderer
// computes nothing.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		customer *entity.Customer,
		items []*entity.InvoiceItem,
	) ([]byte, error)
}

package repository

import "github.com/glanzwerk/rechnung-api/internal/domain/entity"

// InvoiceRepository is the persistence port for invoices and their items.
// Invoices are immutable once persisted; there is no update or delete.
type InvoiceRepository interface {
	// Create persists the invoice header. Returns domain.ErrConflict if the
	// invoice number already exists.
	Create(invoice *entity.Invoice) error

	// CreateItem persists one line item of an invoice.
	CreateItem(item *entity.InvoiceItem) error

	// LatestNumber returns the number of the most recently inserted invoice
	// (insertion order, not number order), or "" if none exist.
	LatestNumber() (string, error)

	// GetByID returns the invoice header or nil if absent.
	GetByID(id string) (*entity.Invoice, error)

	// GetItemsByInvoiceID returns the items of an invoice in document order.
	GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error)

	// ListByCustomer returns a customer's invoices, newest date first.
	ListByCustomer(customerID string) ([]*entity.Invoice, error)
}

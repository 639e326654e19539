package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/glanzwerk/rechnung-api/internal/domain"
	"github.com/glanzwerk/rechnung-api/internal/domain/entity"
	"github.com/glanzwerk/rechnung-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements InvoiceRepository (usable with pool or tx).
// Invoices are write-once: there is no update or delete.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter. Pass a pool or a tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persists the invoice header.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO invoices (id, number, date, customer_id, subtotal, discount, vat, grand_total, payment_method, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		invoice.ID, invoice.Number, invoice.Date, invoice.CustomerID,
		invoice.Subtotal, invoice.Discount, invoice.VATAmount, invoice.GrandTotal,
		string(invoice.PaymentMethod), invoice.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice number %s: %w", invoice.Number, domain.ErrConflict)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateItem persists one line item.
func (r *InvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO invoice_items (id, invoice_id, position, service_name, quantity, unit_price, discount_percent, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, item.InvoiceID, item.Position, item.ServiceName,
		item.Quantity, item.UnitPrice, item.DiscountPercent, item.LineTotal,
	)
	if err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

// LatestNumber returns the number of the most recently inserted invoice
// (by the seq serial, i.e. insertion order), or "" if none exist.
func (r *InvoiceRepo) LatestNumber() (string, error) {
	var number string
	err := r.q.QueryRow(context.Background(),
		`SELECT number FROM invoices ORDER BY seq DESC LIMIT 1`,
	).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("latest invoice number: %w", err)
	}
	return number, nil
}

// GetByID returns the invoice header or nil if absent.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	var inv entity.Invoice
	var payment string
	err := r.q.QueryRow(context.Background(), `
		SELECT id, number, date, customer_id, subtotal, discount, vat, grand_total, payment_method, created_at
		FROM invoices WHERE id = $1`, id,
	).Scan(
		&inv.ID, &inv.Number, &inv.Date, &inv.CustomerID,
		&inv.Subtotal, &inv.Discount, &inv.VATAmount, &inv.GrandTotal,
		&payment, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	inv.PaymentMethod = entity.PaymentMethod(payment)
	return &inv, nil
}

// GetItemsByInvoiceID returns the items of an invoice in document order.
func (r *InvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, invoice_id, position, service_name, quantity, unit_price, discount_percent, line_total
		FROM invoice_items WHERE invoice_id = $1 ORDER BY position`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceItem
	for rows.Next() {
		var item entity.InvoiceItem
		if err := rows.Scan(
			&item.ID, &item.InvoiceID, &item.Position, &item.ServiceName,
			&item.Quantity, &item.UnitPrice, &item.DiscountPercent, &item.LineTotal,
		); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// ListByCustomer returns a customer's invoices, newest date first.
func (r *InvoiceRepo) ListByCustomer(customerID string) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, number, date, customer_id, subtotal, discount, vat, grand_total, payment_method, created_at
		FROM invoices WHERE customer_id = $1 ORDER BY date DESC, seq DESC`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list invoices by customer: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		var payment string
		if err := rows.Scan(
			&inv.ID, &inv.Number, &inv.Date, &inv.CustomerID,
			&inv.Subtotal, &inv.Discount, &inv.VATAmount, &inv.GrandTotal,
			&payment, &inv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		inv.PaymentMethod = entity.PaymentMethod(payment)
		list = append(list, &inv)
	}
	return list, rows.Err()
}

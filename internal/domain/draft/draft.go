// Package draft models the in-progress invoice a staff member is building.
// A draft is an owned value passed through the handlers; there is no ambient
// session state. All monetary arithmetic stays at full decimal precision,
// rounding to two digits happens only at document rendering.
package draft

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/glanzwerk/rechnung-api/internal/domain"
	"github.com/glanzwerk/rechnung-api/internal/domain/entity"
)

// VATRate is the fixed 19% German VAT applied to (subtotal - discount).
var VATRate = decimal.RequireFromString("0.19")

// LineItem is one position of a draft: a service name, a quantity and a unit
// price. The line total is always recomputed from quantity and unit price.
type LineItem struct {
	ServiceName string
	Quantity    int64
	UnitPrice   decimal.Decimal
}

// LineTotal returns Quantity * UnitPrice.
func (li LineItem) LineTotal() decimal.Decimal {
	return decimal.NewFromInt(li.Quantity).Mul(li.UnitPrice)
}

// Summary is the totals block of a draft for a given flat discount.
type Summary struct {
	Subtotal       decimal.Decimal
	Discount       decimal.Decimal
	TotalBeforeVAT decimal.Decimal
	VAT            decimal.Decimal
	GrandTotal     decimal.Decimal
}

// InvoiceDraft accumulates line items until the invoice is finalized.
// The zero value is an empty draft ready for use.
type InvoiceDraft struct {
	items []LineItem
}

// New returns an empty draft.
func New() *InvoiceDraft {
	return &InvoiceDraft{}
}

// AddCatalogItem appends a line for a catalog service with quantity 1 and the
// catalog standard price. Resolving the name against the catalog is the
// caller's job; this only records the already-looked-up service.
func (d *InvoiceDraft) AddCatalogItem(svc *entity.Service) {
	d.items = append(d.items, LineItem{
		ServiceName: svc.Name,
		Quantity:    1,
		UnitPrice:   svc.StandardPrice,
	})
}

// AddCustomItem appends a free-text line with quantity 1.
// The name must be non-empty and the price strictly positive.
func (d *InvoiceDraft) AddCustomItem(name string, price decimal.Decimal) error {
	var missing []string
	if strings.TrimSpace(name) == "" {
		missing = append(missing, "service name")
	}
	if !price.IsPositive() {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return domain.NewValidationError(missing...)
	}
	d.items = append(d.items, LineItem{ServiceName: name, Quantity: 1, UnitPrice: price})
	return nil
}

// UpdateItem replaces quantity and unit price of the line at index.
// Quantity must be >= 1 and the unit price >= 0.
func (d *InvoiceDraft) UpdateItem(index int, quantity int64, unitPrice decimal.Decimal) error {
	if index < 0 || index >= len(d.items) {
		return fmt.Errorf("%w: %d", domain.ErrIndexOutOfRange, index)
	}
	var invalid []string
	if quantity < 1 {
		invalid = append(invalid, "quantity")
	}
	if unitPrice.IsNegative() {
		invalid = append(invalid, "unit price")
	}
	if len(invalid) > 0 {
		return domain.NewValidationError(invalid...)
	}
	d.items[index].Quantity = quantity
	d.items[index].UnitPrice = unitPrice
	return nil
}

// RemoveItem deletes the line at index.
func (d *InvoiceDraft) RemoveItem(index int) error {
	if index < 0 || index >= len(d.items) {
		return fmt.Errorf("%w: %d", domain.ErrIndexOutOfRange, index)
	}
	d.items = append(d.items[:index], d.items[index+1:]...)
	return nil
}

// Len returns the number of lines in the draft.
func (d *InvoiceDraft) Len() int {
	return len(d.items)
}

// Items returns a copy of the current lines.
func (d *InvoiceDraft) Items() []LineItem {
	out := make([]LineItem, len(d.items))
	copy(out, d.items)
	return out
}

// Summary computes the totals for the current lines and a flat discount.
// It is a pure function of the draft state: no mutation, safe to call
// repeatedly while the operator edits the form.
func (d *InvoiceDraft) Summary(discount decimal.Decimal) (Summary, error) {
	if discount.IsNegative() {
		return Summary{}, domain.NewValidationError("discount")
	}
	subtotal := decimal.Zero
	for _, li := range d.items {
		subtotal = subtotal.Add(li.LineTotal())
	}
	beforeVAT := subtotal.Sub(discount)
	vat := beforeVAT.Mul(VATRate)
	return Summary{
		Subtotal:       subtotal,
		Discount:       discount,
		TotalBeforeVAT: beforeVAT,
		VAT:            vat,
		GrandTotal:     beforeVAT.Add(vat),
	}, nil
}

// Finalized is an immutable snapshot of a submitted draft, ready for
// numbering and persistence.
type Finalized struct {
	CustomerName string
	Plate        string
	Items        []LineItem
}

// Finalize validates the submission and returns the immutable snapshot.
// It requires at least one line item, a customer name and a vehicle plate;
// the returned ValidationError lists every missing field. On success the
// draft is cleared and a new empty draft begins.
func (d *InvoiceDraft) Finalize(customerName, plate string) (*Finalized, error) {
	var missing []string
	if strings.TrimSpace(customerName) == "" {
		missing = append(missing, "customer name")
	}
	if strings.TrimSpace(plate) == "" {
		missing = append(missing, "vehicle plate")
	}
	if len(d.items) == 0 {
		missing = append(missing, "line items")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(missing...)
	}
	fin := &Finalized{
		CustomerName: customerName,
		Plate:        plate,
		Items:        d.Items(),
	}
	d.items = nil
	return fin, nil
}

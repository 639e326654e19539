package entity

import "github.com/shopspring/decimal"

// InvoiceItem is one billed line of an invoice. Items belong to exactly one
// invoice and never outlive it.
//
// LineTotal is always Quantity * UnitPrice. DiscountPercent is a per-line
// display value shown on the printed document; it is distinct from the
// invoice-level flat discount and is not part of the totals computation.
type InvoiceItem struct {
	ID              string
	InvoiceID       string
	Position        int // 1-based position on the document
	ServiceName     string
	Quantity        int64
	UnitPrice       decimal.Decimal
	DiscountPercent decimal.Decimal
	LineTotal       decimal.Decimal
}

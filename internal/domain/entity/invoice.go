package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the immutable header of an issued invoice.
// Number has the form "<year>-<sequence>" (e.g. 2025-1001) and is unique.
// Invariant: GrandTotal = (Subtotal - Discount) * (1 + VAT rate), with a fixed
// 19% VAT rate. Amounts are stored at full precision; rounding to two digits
// happens only when a document is rendered.
type Invoice struct {
	ID            string
	Number        string
	Date          time.Time
	CustomerID    string
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal // flat amount, not a percentage
	VATAmount     decimal.Decimal
	GrandTotal    decimal.Decimal
	PaymentMethod PaymentMethod
	CreatedAt     time.Time
}

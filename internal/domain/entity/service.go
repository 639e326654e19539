package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a catalog entry: a named detailing service with a standard price.
// It is only a template for invoice line items; editing a service never changes
// invoices that were issued earlier.
type Service struct {
	ID            string
	Name          string // unique
	StandardPrice decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

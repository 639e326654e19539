package dto

import "github.com/shopspring/decimal"

// InvoiceItemRequest is one line of an invoice or quote request.
//
// Catalog lines reference a catalog service by name and inherit its standard
// price. Custom lines (custom=true) are free text and must carry a positive
// unit price. Quantity defaults to 1; a non-nil unit price on a catalog line
// overrides the standard price for this invoice only.
type InvoiceItemRequest struct {
	ServiceName string           `json:"service_name"`
	Quantity    int64            `json:"quantity,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
	Custom      bool             `json:"custom,omitempty"`
}

// CreateInvoiceRequest is the body of POST /api/invoices.
type CreateInvoiceRequest struct {
	CustomerName  string               `json:"customer_name"`
	Plate         string               `json:"plate"`
	Phone         string               `json:"phone,omitempty"`
	Items         []InvoiceItemRequest `json:"items"`
	Discount      decimal.Decimal      `json:"discount"`
	PaymentMethod string               `json:"payment_method"`
}

// QuoteRequest is the body of POST /api/invoices/quote: the same line items
// and discount as a create request, without customer data or persistence.
type QuoteRequest struct {
	Items    []InvoiceItemRequest `json:"items"`
	Discount decimal.Decimal      `json:"discount"`
}

// SummaryResponse is the totals block shown in the form while editing.
type SummaryResponse struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	Discount       decimal.Decimal `json:"discount"`
	TotalBeforeVAT decimal.Decimal `json:"total_before_vat"`
	VAT            decimal.Decimal `json:"vat"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
}

// InvoiceResponse is a persisted invoice with its items.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	Number        string                `json:"number"`
	Date          string                `json:"date"`
	CustomerID    string                `json:"customer_id"`
	CustomerName  string                `json:"customer_name,omitempty"`
	Plate         string                `json:"plate,omitempty"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	Discount      decimal.Decimal       `json:"discount"`
	VAT           decimal.Decimal       `json:"vat"`
	GrandTotal    decimal.Decimal       `json:"grand_total"`
	PaymentMethod string                `json:"payment_method"`
	Items         []InvoiceItemResponse `json:"items"`
}

// InvoiceItemResponse is one persisted line item.
type InvoiceItemResponse struct {
	ID              string          `json:"id"`
	Position        int             `json:"position"`
	ServiceName     string          `json:"service_name"`
	Quantity        int64           `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	LineTotal       decimal.Decimal `json:"line_total"`
}

// CustomerResponse is a customer in listings and history.
type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Plate string `json:"plate"`
	Phone string `json:"phone,omitempty"`
}

// InvoiceSummaryResponse is one row of a customer's invoice history.
type InvoiceSummaryResponse struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	Date          string          `json:"date"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
	PaymentMethod string          `json:"payment_method"`
}

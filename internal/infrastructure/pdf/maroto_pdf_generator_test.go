package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glanzwerk/rechnung-api/internal/application/billing"
	"github.com/glanzwerk/rechnung-api/internal/domain/entity"
	"github.com/glanzwerk/rechnung-api/internal/infrastructure/pdf"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleDocument() (*entity.Invoice, *entity.Customer, []*entity.InvoiceItem) {
	date := time.Date(2025, 6, 14, 10, 30, 0, 0, time.UTC)
	invoice := &entity.Invoice{
		ID:            "inv-1",
		Number:        "2025-1001",
		Date:          date,
		CustomerID:    "cust-1",
		Subtotal:      dec("85.00"),
		Discount:      dec("5.00"),
		VATAmount:     dec("15.20"),
		GrandTotal:    dec("95.20"),
		PaymentMethod: entity.PaymentCash,
		CreatedAt:     date,
	}
	customer := &entity.Customer{
		ID:    "cust-1",
		Name:  "Max Mustermann",
		Plate: "B-MM 123",
		Phone: "0221 123456",
	}
	items := []*entity.InvoiceItem{
		{
			ID: "item-1", InvoiceID: "inv-1", Position: 1,
			ServiceName: "Außenreinigung per Hand",
			Quantity:    1, UnitPrice: dec("25.00"),
			DiscountPercent: decimal.Zero, LineTotal: dec("25.00"),
		},
		{
			ID: "item-2", InvoiceID: "inv-1", Position: 2,
			ServiceName: "Innenraumreinigung",
			Quantity:    2, UnitPrice: dec("30.00"),
			DiscountPercent: decimal.Zero, LineTotal: dec("60.00"),
		},
	}
	return invoice, customer, items
}

func TestGenerateInvoicePDF_ProducesAPDFDocument(t *testing.T) {
	gen := pdf.NewMarotoPDFGenerator(billing.ShopInfo{
		Name:     "Glanzwerk Rheinland",
		Address:  "Rheinstraße 12",
		City:     "50667 Köln",
		Phone:    "0221 987654",
		BankName: "Sparkasse KölnBonn",
		IBAN:     "DE89 3704 0044 0532 0130 00",
		BIC:      "COLSDE33",
	})

	invoice, customer, items := sampleDocument()
	got, err := gen.GenerateInvoicePDF(context.Background(), invoice, customer, items)
	require.NoError(t, err)

	require.NotEmpty(t, got)
	assert.Equal(t, "%PDF", string(got[:4]))
	// A rendered page with fonts embedded is well beyond a header stub.
	assert.Greater(t, len(got), 1000)
}

func TestGenerateInvoicePDF_WithoutBankDetails(t *testing.T) {
	gen := pdf.NewMarotoPDFGenerator(billing.ShopInfo{Name: "Glanzwerk Rheinland"})

	invoice, customer, items := sampleDocument()
	got, err := gen.GenerateInvoicePDF(context.Background(), invoice, customer, items)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(got[:4]))
}

func TestGenerateInvoicePDF_ManyItemsSpanPages(t *testing.T) {
	gen := pdf.NewMarotoPDFGenerator(billing.ShopInfo{Name: "Glanzwerk Rheinland"})

	invoice, customer, items := sampleDocument()
	for i := 3; i <= 60; i++ {
		items = append(items, &entity.InvoiceItem{
			ID: "item-n", InvoiceID: invoice.ID, Position: i,
			ServiceName: "Scheibenreinigung innen & außen",
			Quantity:    1, UnitPrice: dec("15.00"),
			DiscountPercent: decimal.Zero, LineTotal: dec("15.00"),
		})
	}
	got, err := gen.GenerateInvoicePDF(context.Background(), invoice, customer, items)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(got[:4]))
}

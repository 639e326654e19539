package billing_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glanzwerk/rechnung-api/internal/application/billing"
	"github.com/glanzwerk/rechnung-api/internal/application/dto"
	"github.com/glanzwerk/rechnung-api/internal/domain"
	"github.com/glanzwerk/rechnung-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

type fixtures struct {
	uc           *billing.CreateInvoiceUseCase
	serviceRepo  *fakeServiceRepo
	customerRepo *fakeCustomerRepo
	invoiceRepo  *fakeInvoiceRepo
}

func newFixtures(t *testing.T) *fixtures {
	t.Helper()
	serviceRepo := &fakeServiceRepo{}
	now := time.Now()
	for _, s := range []struct{ name, price string }{
		{"Außenreinigung per Hand", "25.00"},
		{"Innenraumreinigung", "30.00"},
		{"Motorraumreinigung", "50.00"},
	} {
		require.NoError(t, serviceRepo.Create(&entity.Service{
			ID:            "svc-" + s.name,
			Name:          s.name,
			StandardPrice: dec(s.price),
			CreatedAt:     now,
			UpdatedAt:     now,
		}))
	}
	customerRepo := &fakeCustomerRepo{}
	invoiceRepo := &fakeInvoiceRepo{}
	txRunner := &fakeTxRunner{customerRepo: customerRepo, invoiceRepo: invoiceRepo}
	return &fixtures{
		uc:           billing.NewCreateInvoiceUseCase(txRunner, serviceRepo, customerRepo, invoiceRepo),
		serviceRepo:  serviceRepo,
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
	}
}

func referenceRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		CustomerName: "Max Mustermann",
		Plate:        "B-MM 123",
		Items: []dto.InvoiceItemRequest{
			{ServiceName: "Außenreinigung per Hand"},
			{ServiceName: "Innenraumreinigung", Quantity: 2},
		},
		Discount:      dec("5.00"),
		PaymentMethod: "cash",
	}
}

func TestQuote_ReferenceInvoice(t *testing.T) {
	f := newFixtures(t)

	sum, err := f.uc.Quote(context.Background(), dto.QuoteRequest{
		Items: []dto.InvoiceItemRequest{
			{ServiceName: "Außenreinigung per Hand"},
			{ServiceName: "Innenraumreinigung", Quantity: 2},
		},
		Discount: dec("5.00"),
	})
	require.NoError(t, err)
	assert.True(t, sum.Subtotal.Equal(dec("85.00")), "subtotal %s", sum.Subtotal)
	assert.True(t, sum.TotalBeforeVAT.Equal(dec("80.00")))
	assert.True(t, sum.VAT.Equal(dec("15.20")))
	assert.True(t, sum.GrandTotal.Equal(dec("95.20")))

	// Quote persists nothing.
	assert.Empty(t, f.invoiceRepo.invoices)
	assert.Empty(t, f.customerRepo.customers)
}

func TestQuote_UnknownCatalogService(t *testing.T) {
	f := newFixtures(t)

	_, err := f.uc.Quote(context.Background(), dto.QuoteRequest{
		Items: []dto.InvoiceItemRequest{{ServiceName: "Unterbodenwäsche"}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateInvoice_PersistsHeaderItemsAndCustomer(t *testing.T) {
	f := newFixtures(t)

	resp, err := f.uc.CreateInvoice(context.Background(), referenceRequest())
	require.NoError(t, err)

	wantNumber := fmt.Sprintf("%d-1001", time.Now().Year())
	assert.Equal(t, wantNumber, resp.Number)
	assert.Equal(t, "Max Mustermann", resp.CustomerName)
	assert.True(t, resp.GrandTotal.Equal(dec("95.20")))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, 1, resp.Items[0].Position)
	assert.Equal(t, 2, resp.Items[1].Position)
	assert.EqualValues(t, 2, resp.Items[1].Quantity)
	assert.True(t, resp.Items[1].LineTotal.Equal(dec("60.00")))

	require.Len(t, f.invoiceRepo.invoices, 1)
	require.Len(t, f.invoiceRepo.items, 2)
	require.Len(t, f.customerRepo.customers, 1)
	assert.Equal(t, "B-MM 123", f.customerRepo.customers[0].Plate)
}

func TestCreateInvoice_NumbersAreSequential(t *testing.T) {
	f := newFixtures(t)
	year := time.Now().Year()

	for i := 0; i < 3; i++ {
		req := referenceRequest()
		resp, err := f.uc.CreateInvoice(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%d-%d", year, 1001+i), resp.Number)
	}
}

func TestCreateInvoice_SamePlateReusesCustomer(t *testing.T) {
	f := newFixtures(t)

	first, err := f.uc.CreateInvoice(context.Background(), referenceRequest())
	require.NoError(t, err)

	// Same plate, different spelling of the name: the stored record wins.
	req := referenceRequest()
	req.CustomerName = "M. Mustermann"
	second, err := f.uc.CreateInvoice(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.CustomerID, second.CustomerID)
	require.Len(t, f.customerRepo.customers, 1)
	assert.Equal(t, "Max Mustermann", f.customerRepo.customers[0].Name)
}

func TestCreateInvoice_CustomLine(t *testing.T) {
	f := newFixtures(t)

	req := referenceRequest()
	req.Items = append(req.Items, dto.InvoiceItemRequest{
		ServiceName: "Sonderlackierung Spoiler",
		UnitPrice:   decPtr("99.90"),
		Custom:      true,
	})
	resp, err := f.uc.CreateInvoice(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Items, 3)
	assert.Equal(t, "Sonderlackierung Spoiler", resp.Items[2].ServiceName)
	assert.True(t, resp.Items[2].UnitPrice.Equal(dec("99.90")))
}

func TestCreateInvoice_PriceOverrideOnCatalogLine(t *testing.T) {
	f := newFixtures(t)

	req := referenceRequest()
	req.Items = []dto.InvoiceItemRequest{
		{ServiceName: "Motorraumreinigung", UnitPrice: decPtr("40.00")},
	}
	req.Discount = decimal.Zero
	resp, err := f.uc.CreateInvoice(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Subtotal.Equal(dec("40.00")))
	// The catalog keeps its standard price.
	svc, err := f.serviceRepo.GetByName("Motorraumreinigung")
	require.NoError(t, err)
	assert.True(t, svc.StandardPrice.Equal(dec("50.00")))
}

func TestCreateInvoice_ValidationFailuresLeaveNoState(t *testing.T) {
	f := newFixtures(t)

	cases := []struct {
		name   string
		mutate func(*dto.CreateInvoiceRequest)
		target error
	}{
		{"unknown payment method", func(r *dto.CreateInvoiceRequest) { r.PaymentMethod = "cheque" }, domain.ErrInvalidInput},
		{"unknown catalog service", func(r *dto.CreateInvoiceRequest) { r.Items[0].ServiceName = "Unterbodenwäsche" }, domain.ErrNotFound},
		{"missing customer name", func(r *dto.CreateInvoiceRequest) { r.CustomerName = "  " }, domain.ErrInvalidInput},
		{"missing plate", func(r *dto.CreateInvoiceRequest) { r.Plate = "" }, domain.ErrInvalidInput},
		{"no line items", func(r *dto.CreateInvoiceRequest) { r.Items = nil }, domain.ErrInvalidInput},
		{"negative discount", func(r *dto.CreateInvoiceRequest) { r.Discount = dec("-1") }, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := referenceRequest()
			tc.mutate(&req)
			_, err := f.uc.CreateInvoice(context.Background(), req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.target)
		})
	}

	assert.Empty(t, f.invoiceRepo.invoices)
	assert.Empty(t, f.invoiceRepo.items)
	assert.Empty(t, f.customerRepo.customers)
}

func TestCreateInvoice_MalformedStoredNumberSurfacesIntegrityFault(t *testing.T) {
	f := newFixtures(t)
	f.invoiceRepo.invoices = append(f.invoiceRepo.invoices, &entity.Invoice{
		ID:     "bad",
		Number: "kaputt",
	})

	_, err := f.uc.CreateInvoice(context.Background(), referenceRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadNumberFormat)
}

func TestGetInvoice_RoundTripKeepsExactTotals(t *testing.T) {
	f := newFixtures(t)

	created, err := f.uc.CreateInvoice(context.Background(), referenceRequest())
	require.NoError(t, err)

	loaded, err := f.uc.GetInvoice(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Number, loaded.Number)
	assert.True(t, loaded.Subtotal.Equal(dec("85.00")))
	assert.True(t, loaded.VAT.Equal(dec("15.20")))
	assert.True(t, loaded.GrandTotal.Equal(dec("95.20")))
	assert.Equal(t, "Max Mustermann", loaded.CustomerName)
	assert.Equal(t, "B-MM 123", loaded.Plate)
	require.Len(t, loaded.Items, 2)
}

func TestGetInvoice_CustomerLoadFailurePropagates(t *testing.T) {
	f := newFixtures(t)

	created, err := f.uc.CreateInvoice(context.Background(), referenceRequest())
	require.NoError(t, err)

	storeErr := errors.New("connection reset")
	f.customerRepo.getByIDErr = storeErr

	_, err = f.uc.GetInvoice(context.Background(), created.ID)
	assert.ErrorIs(t, err, storeErr)
}

func TestGetInvoice_NotFound(t *testing.T) {
	f := newFixtures(t)

	_, err := f.uc.GetInvoice(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

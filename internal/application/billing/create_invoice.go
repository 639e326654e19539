package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/glanzwerk/rechnung-api/internal/application/dto"
	"github.com/glanzwerk/rechnung-api/internal/domain"
	"github.com/glanzwerk/rechnung-api/internal/domain/draft"
	"github.com/glanzwerk/rechnung-api/internal/domain/entity"
	"github.com/glanzwerk/rechnung-api/internal/domain/numbering"
	"github.com/glanzwerk/rechnung-api/internal/domain/repository"
)

// CreateInvoiceUseCase builds an invoice draft from the request, finalizes it
// and persists customer, header and line items in a single transaction.
type CreateInvoiceUseCase struct {
	txRunner     TxRunner
	serviceRepo  repository.ServiceRepository
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
	now          func() time.Time
}

// NewCreateInvoiceUseCase wires the use case.
func NewCreateInvoiceUseCase(
	txRunner TxRunner,
	serviceRepo repository.ServiceRepository,
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		txRunner:     txRunner,
		serviceRepo:  serviceRepo,
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		now:          time.Now,
	}
}

// buildDraft replays the requested lines through the draft builder.
// Catalog lines are resolved against the catalog (domain.ErrNotFound for an
// unknown name, the draft stays untouched); custom lines go in as free text.
// Quantity and price overrides run through UpdateItem so its validation
// applies uniformly.
func (uc *CreateInvoiceUseCase) buildDraft(items []dto.InvoiceItemRequest) (*draft.InvoiceDraft, error) {
	d := draft.New()
	for i, item := range items {
		if item.Custom {
			price := decimal.Zero
			if item.UnitPrice != nil {
				price = *item.UnitPrice
			}
			if err := d.AddCustomItem(item.ServiceName, price); err != nil {
				return nil, err
			}
		} else {
			svc, err := uc.serviceRepo.GetByName(item.ServiceName)
			if err != nil {
				return nil, fmt.Errorf("look up service %q: %w", item.ServiceName, err)
			}
			if svc == nil {
				return nil, fmt.Errorf("service %q: %w", item.ServiceName, domain.ErrNotFound)
			}
			d.AddCatalogItem(svc)
		}
		qty := item.Quantity
		price := d.Items()[i].UnitPrice
		if item.UnitPrice != nil {
			price = *item.UnitPrice
		}
		if qty == 0 {
			qty = 1
		}
		if err := d.UpdateItem(i, qty, price); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Quote computes the totals for the requested lines and discount without
// persisting anything. Called repeatedly while the operator edits the form.
func (uc *CreateInvoiceUseCase) Quote(_ context.Context, in dto.QuoteRequest) (*dto.SummaryResponse, error) {
	d, err := uc.buildDraft(in.Items)
	if err != nil {
		return nil, err
	}
	sum, err := d.Summary(in.Discount)
	if err != nil {
		return nil, err
	}
	return toSummaryResponse(sum), nil
}

// CreateInvoice finalizes the draft and, inside one transaction, upserts the
// customer by plate, derives the next invoice number from the latest stored
// one and inserts header and items.
func (uc *CreateInvoiceUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	payment, err := entity.ParsePaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, domain.NewValidationError("payment method")
	}

	d, err := uc.buildDraft(in.Items)
	if err != nil {
		return nil, err
	}
	sum, err := d.Summary(in.Discount)
	if err != nil {
		return nil, err
	}
	fin, err := d.Finalize(in.CustomerName, in.Plate)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	var inv *entity.Invoice
	var items []*entity.InvoiceItem
	var customerID string

	err = uc.txRunner.RunBilling(ctx, func(
		customerRepo repository.CustomerRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		var err error
		customerID, err = customerRepo.UpsertByPlate(&entity.Customer{
			ID:        uuid.New().String(),
			Name:      fin.CustomerName,
			Plate:     fin.Plate,
			Phone:     in.Phone,
			CreatedAt: now,
		})
		if err != nil {
			return err
		}

		latest, err := invoiceRepo.LatestNumber()
		if err != nil {
			return err
		}
		number, err := numbering.Next(latest, now.Year())
		if err != nil {
			// A malformed stored number means something other than the
			// numbering wrote it; surface as an integrity fault.
			return fmt.Errorf("derive next invoice number: %w", err)
		}

		inv = &entity.Invoice{
			ID:            uuid.New().String(),
			Number:        number,
			Date:          now,
			CustomerID:    customerID,
			Subtotal:      sum.Subtotal,
			Discount:      sum.Discount,
			VATAmount:     sum.VAT,
			GrandTotal:    sum.GrandTotal,
			PaymentMethod: payment,
			CreatedAt:     now,
		}
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for i, li := range fin.Items {
			item := &entity.InvoiceItem{
				ID:              uuid.New().String(),
				InvoiceID:       inv.ID,
				Position:        i + 1,
				ServiceName:     li.ServiceName,
				Quantity:        li.Quantity,
				UnitPrice:       li.UnitPrice,
				DiscountPercent: decimal.Zero,
				LineTotal:       li.LineTotal(),
			}
			if err := invoiceRepo.CreateItem(item); err != nil {
				return err
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toInvoiceResponse(inv, fin.CustomerName, fin.Plate, items), nil
}

// GetInvoice returns a persisted invoice with its items and customer data.
func (uc *CreateInvoiceUseCase) GetInvoice(_ context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	customer, err := uc.customerRepo.GetByID(inv.CustomerID)
	if err != nil {
		return nil, err
	}
	name, plate := "", ""
	if customer != nil {
		name, plate = customer.Name, customer.Plate
	}
	return toInvoiceResponse(inv, name, plate, items), nil
}

func toSummaryResponse(sum draft.Summary) *dto.SummaryResponse {
	return &dto.SummaryResponse{
		Subtotal:       sum.Subtotal,
		Discount:       sum.Discount,
		TotalBeforeVAT: sum.TotalBeforeVAT,
		VAT:            sum.VAT,
		GrandTotal:     sum.GrandTotal,
	}
}

func toInvoiceResponse(inv *entity.Invoice, customerName, plate string, items []*entity.InvoiceItem) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:            inv.ID,
		Number:        inv.Number,
		Date:          inv.Date.Format("2006-01-02"),
		CustomerID:    inv.CustomerID,
		CustomerName:  customerName,
		Plate:         plate,
		Subtotal:      inv.Subtotal,
		Discount:      inv.Discount,
		VAT:           inv.VATAmount,
		GrandTotal:    inv.GrandTotal,
		PaymentMethod: string(inv.PaymentMethod),
		Items:         make([]dto.InvoiceItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:              item.ID,
			Position:        item.Position,
			ServiceName:     item.ServiceName,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			DiscountPercent: item.DiscountPercent,
			LineTotal:       item.LineTotal,
		})
	}
	return resp
}

package billing

import (
	"github.com/glanzwerk/rechnung-api/internal/application/dto"
	"github.com/glanzwerk/rechnung-api/internal/domain"
	"github.com/glanzwerk/rechnung-api/internal/domain/repository"
)

// CustomerUseCase serves the customer history view: the customer list and the
// invoices issued per customer.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
}

// NewCustomerUseCase wires the use case.
func NewCustomerUseCase(customerRepo repository.CustomerRepository, invoiceRepo repository.InvoiceRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo, invoiceRepo: invoiceRepo}
}

// List returns all known customers.
func (uc *CustomerUseCase) List() ([]*dto.CustomerResponse, error) {
	customers, err := uc.customerRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, &dto.CustomerResponse{
			ID:    c.ID,
			Name:  c.Name,
			Plate: c.Plate,
			Phone: c.Phone,
		})
	}
	return out, nil
}

// History returns a customer's invoices, newest date first.
func (uc *CustomerUseCase) History(customerID string) ([]*dto.InvoiceSummaryResponse, error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	invoices, err := uc.invoiceRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceSummaryResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, &dto.InvoiceSummaryResponse{
			ID:            inv.ID,
			Number:        inv.Number,
			Date:          inv.Date.Format("2006-01-02"),
			GrandTotal:    inv.GrandTotal,
			PaymentMethod: string(inv.PaymentMethod),
		})
	}
	return out, nil
}

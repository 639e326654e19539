package billing_test

import (
	"context"

	"github.com/glanzwerk/rechnung-api/internal/application/billing"
	"github.com/glanzwerk/rechnung-api/internal/domain"
	"github.com/glanzwerk/rechnung-api/internal/domain/entity"
	"github.com/glanzwerk/rechnung-api/internal/domain/repository"
)

// In-memory fakes of the persistence ports. They mirror the store's contract:
// find-or-create on plate, latest invoice by insertion order, unique numbers.

type fakeCustomerRepo struct {
	customers  []*entity.Customer
	getByIDErr error
}

func (r *fakeCustomerRepo) UpsertByPlate(customer *entity.Customer) (string, error) {
	for _, c := range r.customers {
		if c.Plate == customer.Plate {
			return c.ID, nil
		}
	}
	clone := *customer
	r.customers = append(r.customers, &clone)
	return clone.ID, nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	if r.getByIDErr != nil {
		return nil, r.getByIDErr
	}
	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) GetByPlate(plate string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.Plate == plate {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) List() ([]*entity.Customer, error) {
	return r.customers, nil
}

type fakeServiceRepo struct {
	services []*entity.Service
}

func (r *fakeServiceRepo) Create(service *entity.Service) error {
	for _, s := range r.services {
		if s.Name == service.Name {
			return domain.ErrConflict
		}
	}
	r.services = append(r.services, service)
	return nil
}

func (r *fakeServiceRepo) GetByID(id string) (*entity.Service, error) {
	for _, s := range r.services {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeServiceRepo) GetByName(name string) (*entity.Service, error) {
	for _, s := range r.services {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeServiceRepo) List() ([]*entity.Service, error) { return r.services, nil }

func (r *fakeServiceRepo) Update(service *entity.Service) error { return nil }

func (r *fakeServiceRepo) Delete(id string) error { return nil }

type fakeInvoiceRepo struct {
	invoices []*entity.Invoice
	items    []*entity.InvoiceItem
}

func (r *fakeInvoiceRepo) Create(invoice *entity.Invoice) error {
	for _, inv := range r.invoices {
		if inv.Number == invoice.Number {
			return domain.ErrConflict
		}
	}
	r.invoices = append(r.invoices, invoice)
	return nil
}

func (r *fakeInvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	r.items = append(r.items, item)
	return nil
}

func (r *fakeInvoiceRepo) LatestNumber() (string, error) {
	if len(r.invoices) == 0 {
		return "", nil
	}
	return r.invoices[len(r.invoices)-1].Number, nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	var out []*entity.InvoiceItem
	for _, item := range r.items {
		if item.InvoiceID == invoiceID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) ListByCustomer(customerID string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	// Newest first: the fakes append in insertion order.
	for i := len(r.invoices) - 1; i >= 0; i-- {
		if r.invoices[i].CustomerID == customerID {
			out = append(out, r.invoices[i])
		}
	}
	return out, nil
}

// fakeTxRunner hands the shared fakes to fn; no transactionality in tests.
type fakeTxRunner struct {
	customerRepo *fakeCustomerRepo
	invoiceRepo  *fakeInvoiceRepo
}

func (tx *fakeTxRunner) RunBilling(_ context.Context, fn func(
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	return fn(tx.customerRepo, tx.invoiceRepo)
}

var _ billing.TxRunner = (*fakeTxRunner)(nil)

package repository

import "github.com/glanzwerk/rechnung-api/internal/domain/entity"

// CustomerRepository is the persistence port for customers.
type CustomerRepository interface {
	// UpsertByPlate returns the id of the customer with the given plate,
	// creating the record if the plate is unseen. Find-or-create semantics:
	// a second call with the same plate but a different name returns the
	// existing id and leaves the stored name untouched.
	UpsertByPlate(customer *entity.Customer) (string, error)

	// GetByID returns the customer or nil if absent.
	GetByID(id string) (*entity.Customer, error)

	// GetByPlate returns the customer or nil if absent.
	GetByPlate(plate string) (*entity.Customer, error)

	// List returns all customers ordered by name.
	List() ([]*entity.Customer, error)
}

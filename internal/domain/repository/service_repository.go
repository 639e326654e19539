package repository

import "github.com/glanzwerk/rechnung-api/internal/domain/entity"

// ServiceRepository is the persistence port for the service catalog.
type ServiceRepository interface {
	// Create persists a new service. Returns domain.ErrConflict if the name
	// is already taken.
	Create(service *entity.Service) error

	// GetByID returns the service or nil if absent.
	GetByID(id string) (*entity.Service, error)

	// GetByName returns the service or nil if absent.
	GetByName(name string) (*entity.Service, error)

	// List returns all catalog services ordered by name.
	List() ([]*entity.Service, error)

	// Update changes name and standard price. Past invoices keep the prices
	// they were issued with.
	Update(service *entity.Service) error

	// Delete removes a service from the catalog.
	Delete(id string) error
}

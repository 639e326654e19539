// Package catalog manages the set of predefined detailing services the shop
// offers at standard prices.
package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/glanzwerk/rechnung-api/internal/application/dto"
	"github.com/glanzwerk/rechnung-api/internal/domain"
	"github.com/glanzwerk/rechnung-api/internal/domain/entity"
	"github.com/glanzwerk/rechnung-api/internal/domain/repository"
)

// UseCase covers catalog CRUD. Catalog edits never touch past invoices:
// line items keep the name and price they were issued with.
type UseCase struct {
	repo     repository.ServiceRepository
	collator *collate.Collator
}

// NewUseCase wires the use case. Listings are ordered with German collation
// so umlauted service names sort the way the staff expects.
func NewUseCase(repo repository.ServiceRepository) *UseCase {
	return &UseCase{
		repo:     repo,
		collator: collate.New(language.German),
	}
}

// List returns the catalog ordered by name (German collation).
func (uc *UseCase) List() ([]*dto.ServiceResponse, error) {
	services, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	sort.Slice(services, func(i, j int) bool {
		return uc.collator.CompareString(services[i].Name, services[j].Name) < 0
	})
	out := make([]*dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, toResponse(s))
	}
	return out, nil
}

// GetByName returns one catalog entry.
func (uc *UseCase) GetByName(name string) (*dto.ServiceResponse, error) {
	svc, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(svc), nil
}

// Create adds a service. Duplicate names surface as domain.ErrConflict.
func (uc *UseCase) Create(in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if err := validate(in.Name, in.StandardPrice.IsNegative()); err != nil {
		return nil, err
	}
	now := time.Now()
	svc := &entity.Service{
		ID:            uuid.New().String(),
		Name:          in.Name,
		StandardPrice: in.StandardPrice,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(svc); err != nil {
		return nil, err
	}
	return toResponse(svc), nil
}

// Update changes name and standard price of a service.
func (uc *UseCase) Update(id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	if err := validate(in.Name, in.StandardPrice.IsNegative()); err != nil {
		return nil, err
	}
	svc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, domain.ErrNotFound
	}
	svc.Name = in.Name
	svc.StandardPrice = in.StandardPrice
	svc.UpdatedAt = time.Now()
	if err := uc.repo.Update(svc); err != nil {
		return nil, err
	}
	return toResponse(svc), nil
}

// Delete removes a service from the catalog.
func (uc *UseCase) Delete(id string) error {
	svc, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if svc == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func validate(name string, negativePrice bool) error {
	var bad []string
	if strings.TrimSpace(name) == "" {
		bad = append(bad, "name")
	}
	if negativePrice {
		bad = append(bad, "standard price")
	}
	if len(bad) > 0 {
		return domain.NewValidationError(bad...)
	}
	return nil
}

func toResponse(s *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:            s.ID,
		Name:          s.Name,
		StandardPrice: s.StandardPrice,
	}
}

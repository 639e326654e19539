package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/glanzwerk/rechnung-api/internal/domain"
	"github.com/glanzwerk/rechnung-api/internal/domain/entity"
	"github.com/glanzwerk/rechnung-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implements ServiceRepository (usable with pool or tx).
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository builds the adapter. Pass a pool or a tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

// Create persists a new catalog service.
func (r *ServiceRepo) Create(service *entity.Service) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO services (id, name, standard_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		service.ID, service.Name, service.StandardPrice, service.CreatedAt, service.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID returns the service or nil if absent.
func (r *ServiceRepo) GetByID(id string) (*entity.Service, error) {
	var s entity.Service
	err := r.q.QueryRow(context.Background(), `
		SELECT id, name, standard_price, created_at, updated_at
		FROM services WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.StandardPrice, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

// GetByName returns the service or nil if absent.
func (r *ServiceRepo) GetByName(name string) (*entity.Service, error) {
	var s entity.Service
	err := r.q.QueryRow(context.Background(), `
		SELECT id, name, standard_price, created_at, updated_at
		FROM services WHERE name = $1`, name,
	).Scan(&s.ID, &s.Name, &s.StandardPrice, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service by name: %w", err)
	}
	return &s, nil
}

// List returns all catalog services ordered by name.
func (r *ServiceRepo) List() ([]*entity.Service, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, name, standard_price, created_at, updated_at
		FROM services ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	var list []*entity.Service
	for rows.Next() {
		var s entity.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.StandardPrice, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update changes name and standard price.
func (r *ServiceRepo) Update(service *entity.Service) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE services SET name = $2, standard_price = $3, updated_at = $4
		WHERE id = $1`,
		service.ID, service.Name, service.StandardPrice, service.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// Delete removes a service by id.
func (r *ServiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/glanzwerk/rechnung-api/internal/domain/entity"
	"github.com/glanzwerk/rechnung-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implements CustomerRepository (usable with pool or tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository builds the adapter. Pass a pool or a tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// UpsertByPlate inserts the customer unless the plate is already known and
// returns the id of the row that owns the plate. ON CONFLICT DO NOTHING keeps
// find-or-create semantics: an existing row is never renamed.
func (r *CustomerRepo) UpsertByPlate(customer *entity.Customer) (string, error) {
	var id string
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO customers (id, name, plate, phone, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (plate) DO NOTHING
		RETURNING id`,
		customer.ID, customer.Name, customer.Plate, customer.Phone, customer.CreatedAt,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("upsert customer: %w", err)
	}
	// Conflict: the plate exists, fetch the owning row.
	err = r.q.QueryRow(context.Background(),
		`SELECT id FROM customers WHERE plate = $1`, customer.Plate,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("get customer by plate: %w", err)
	}
	return id, nil
}

// GetByID returns the customer or nil if absent.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), `
		SELECT id, name, plate, phone, created_at
		FROM customers WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Plate, &c.Phone, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// GetByPlate returns the customer or nil if absent.
func (r *CustomerRepo) GetByPlate(plate string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), `
		SELECT id, name, plate, phone, created_at
		FROM customers WHERE plate = $1`, plate,
	).Scan(&c.ID, &c.Name, &c.Plate, &c.Phone, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by plate: %w", err)
	}
	return &c, nil
}

// List returns all customers ordered by name.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, name, plate, phone, created_at
		FROM customers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Plate, &c.Phone, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

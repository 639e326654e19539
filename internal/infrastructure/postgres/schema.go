package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Money columns use plain NUMERIC (no fixed scale): amounts are stored at
// full precision and rounded to two digits only when a document is rendered.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id         UUID PRIMARY KEY,
		name       TEXT NOT NULL,
		plate      TEXT NOT NULL UNIQUE,
		phone      TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		id             UUID PRIMARY KEY,
		name           TEXT NOT NULL UNIQUE,
		standard_price NUMERIC NOT NULL CHECK (standard_price >= 0),
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id             UUID PRIMARY KEY,
		seq            BIGSERIAL,
		number         TEXT NOT NULL UNIQUE,
		date           DATE NOT NULL,
		customer_id    UUID NOT NULL REFERENCES customers(id),
		subtotal       NUMERIC NOT NULL,
		discount       NUMERIC NOT NULL DEFAULT 0 CHECK (discount >= 0),
		vat            NUMERIC NOT NULL,
		grand_total    NUMERIC NOT NULL,
		payment_method TEXT NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS invoice_items (
		id               UUID PRIMARY KEY,
		invoice_id       UUID NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
		position         INT NOT NULL,
		service_name     TEXT NOT NULL,
		quantity         BIGINT NOT NULL CHECK (quantity >= 1),
		unit_price       NUMERIC NOT NULL CHECK (unit_price >= 0),
		discount_percent NUMERIC NOT NULL DEFAULT 0,
		line_total       NUMERIC NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		name          TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'staff',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_customer ON invoices (customer_id, date DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_invoice_items_invoice ON invoice_items (invoice_id, position)`,
}

// EnsureSchema creates the tables if they do not exist yet.
// The invoices.seq serial exists only to answer "most recently inserted
// invoice" by insertion order; the business key is the unique number.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

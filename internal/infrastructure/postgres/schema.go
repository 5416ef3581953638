package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentencias idempotentes de inicialización del esquema. La FK de
// movements lleva ON DELETE CASCADE: los asientos no tienen ciclo de
// vida propio más allá de su producto.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id          UUID PRIMARY KEY,
		code        TEXT NOT NULL UNIQUE,
		name        TEXT NOT NULL,
		category    TEXT NOT NULL DEFAULT '',
		stock       BIGINT NOT NULL DEFAULT 0 CHECK (stock >= 0),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS movements (
		id            UUID PRIMARY KEY,
		product_id    UUID NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		date          DATE NOT NULL,
		product_code  TEXT NOT NULL,
		product_name  TEXT NOT NULL,
		added         BIGINT NOT NULL DEFAULT 0 CHECK (added >= 0),
		sold          BIGINT NOT NULL DEFAULT 0 CHECK (sold >= 0),
		remarks       TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movements_product ON movements (product_id)`,
	`CREATE TABLE IF NOT EXISTS users (
		id             UUID PRIMARY KEY,
		email          TEXT NOT NULL UNIQUE,
		password_hash  TEXT NOT NULL,
		name           TEXT NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Migrate crea las tablas si no existen. Se ejecuta en el arranque.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}
	}
	return nil
}

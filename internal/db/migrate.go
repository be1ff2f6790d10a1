package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema statements are idempotent so Migrate can run on every startup.
// Manager validity is also checked at write time; the FK is a backstop.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS public.roles (
		id   serial PRIMARY KEY,
		name text NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS public.users (
		id            serial PRIMARY KEY,
		username      text NOT NULL UNIQUE,
		password_hash text NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS public.user_roles (
		user_id int NOT NULL REFERENCES public.users(id),
		role_id int NOT NULL REFERENCES public.roles(id),
		PRIMARY KEY (user_id, role_id)
	)`,
	`CREATE TABLE IF NOT EXISTS public.locations (
		id          serial PRIMARY KEY,
		name        varchar(120) NOT NULL,
		address     varchar(120) NOT NULL,
		table_count int NOT NULL CHECK (table_count >= 1),
		manager_id  int NULL REFERENCES public.users(id)
	)`,
}

// Migrate brings the store to the current schema.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration statement failed: %w", err)
		}
	}
	return nil
}

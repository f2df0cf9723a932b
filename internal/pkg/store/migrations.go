package store

import (
	"context"
	"fmt"
)

// Migrate bootstraps the schema. Every statement is idempotent so the
// command can run on each deploy.
func Migrate(ctx context.Context, pool *Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS area (
			id BIGSERIAL PRIMARY KEY,
			city TEXT NOT NULL,
			area INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			password_salt TEXT NOT NULL,
			name TEXT,
			lastname TEXT,
			birthdate TIMESTAMPTZ,
			profile_photo TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS location (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			area_id BIGINT NOT NULL REFERENCES area(id),
			has_waste_collection TEXT NOT NULL DEFAULT 'Not sure' CHECK (has_waste_collection IN ('Yes', 'No', 'Not sure')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS waste_type (
			id BIGSERIAL PRIMARY KEY,
			type_name TEXT NOT NULL,
			water_savings_index DOUBLE PRECISION NOT NULL,
			co2_emission_index DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS waste (
			id BIGSERIAL PRIMARY KEY,
			waste_type_id BIGINT NOT NULL REFERENCES waste_type(id),
			is_recyclable BOOLEAN NOT NULL,
			average_weight DOUBLE PRECISION,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS user_waste (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			waste_id BIGINT NOT NULL REFERENCES waste(id),
			name TEXT NOT NULL,
			weight DOUBLE PRECISION NOT NULL,
			datetime TIMESTAMPTZ NOT NULL,
			location_id BIGINT NOT NULL REFERENCES location(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_user_waste_user_id ON user_waste(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_user_waste_datetime ON user_waste(datetime)`,
		`CREATE TABLE IF NOT EXISTS audit_log (
			id BIGSERIAL PRIMARY KEY,
			operation_type TEXT NOT NULL,
			table_name TEXT NOT NULL,
			record_id BIGINT,
			old_values JSONB,
			new_values JSONB,
			performed_by BIGINT NOT NULL,
			timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	return nil
}

package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// Schema for the landing-page content tree. Payload and product rows hang
// off sections/grid_data with ON DELETE CASCADE, which the reconciler relies
// on: deleting a section row removes its payload and products in one step.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'admin',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS hero (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		subtitle TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS sections (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		sort_order INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS spotlight_data (
		id BIGSERIAL PRIMARY KEY,
		section_id TEXT UNIQUE NOT NULL REFERENCES sections(id) ON DELETE CASCADE,
		title TEXT NOT NULL DEFAULT '',
		subtext TEXT NOT NULL DEFAULT '',
		media_type TEXT NOT NULL DEFAULT 'image',
		media TEXT NOT NULL DEFAULT '',
		image TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS grid_data (
		id BIGSERIAL PRIMARY KEY,
		section_id TEXT UNIQUE NOT NULL REFERENCES sections(id) ON DELETE CASCADE,
		title TEXT NOT NULL DEFAULT '',
		grid_columns INT NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		grid_id BIGINT NOT NULL REFERENCES grid_data(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		old_price NUMERIC(10,2) NOT NULL DEFAULT 0,
		new_price NUMERIC(10,2) NOT NULL DEFAULT 0,
		image TEXT NOT NULL DEFAULT '',
		link TEXT NOT NULL DEFAULT '#',
		badge TEXT NOT NULL DEFAULT '',
		strike_old_price BOOLEAN NOT NULL DEFAULT TRUE,
		show_old_price BOOLEAN NOT NULL DEFAULT TRUE,
		sort_order INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_grid_sort ON products (grid_id, sort_order)`,
}

const defaultHeroTitle = "Precision meets \nPerfection."
const defaultHeroSubtitle = "Upgrade your workspace with our limited winter collection."

// EnsureSchema creates all tables and seed rows if absent. It is invoked
// exactly once at process start and every statement is idempotent, so a
// crashed or restarted deployment can always re-run it safely.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, adminUsername, adminPassword string) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema setup failed: %w", err)
		}
	}

	if err := seedHero(ctx, pool); err != nil {
		return err
	}

	if err := seedAdmin(ctx, pool, adminUsername, adminPassword); err != nil {
		return err
	}

	log.Info().Msg("database schema ready")
	return nil
}

// seedHero guarantees the hero singleton exists (invariant: exactly one row).
func seedHero(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM hero`).Scan(&count); err != nil {
		return fmt.Errorf("failed to check hero row: %w", err)
	}
	if count > 0 {
		return nil
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO hero (title, subtitle) VALUES ($1, $2)`,
		defaultHeroTitle, defaultHeroSubtitle,
	)
	if err != nil {
		return fmt.Errorf("failed to seed hero: %w", err)
	}
	return nil
}

func seedAdmin(ctx context.Context, pool *pgxpool.Pool, username, password string) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE username = $1`, username).Scan(&count); err != nil {
		return fmt.Errorf("failed to check admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO users (username, password_hash, role) VALUES ($1, $2, 'admin')`,
		username, string(hash),
	)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Info().Str("username", username).Msg("default admin user created")
	return nil
}

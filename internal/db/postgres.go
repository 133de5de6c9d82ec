package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func Connect(databaseURL string) (*sql.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS suppliers (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE CHECK (name <> '')
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE CHECK (name <> '')
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		id SERIAL PRIMARY KEY,
		sku TEXT,
		item TEXT NOT NULL,
		quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		price NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (price >= 0),
		supplier_id INTEGER NOT NULL REFERENCES suppliers(id),
		category_id INTEGER NOT NULL REFERENCES categories(id),
		deleted_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_items_created_at ON items (created_at DESC)`,
}

// Migrate creates the schema if it does not exist yet.
func Migrate(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

var (
	defaultSuppliers  = []string{"Bidfood", "Booker", "Adams"}
	defaultCategories = []string{"Meats", "Drinks", "Frozen", "Ambient", "Veg", "Sauces", "Other"}
)

// Seed inserts the default suppliers and categories, each only when its
// table is empty.
func Seed(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := seedTable(ctx, db, "suppliers", defaultSuppliers); err != nil {
		return err
	}
	return seedTable(ctx, db, "categories", defaultCategories)
}

func seedTable(ctx context.Context, db *sql.DB, table string, names []string) error {
	var count int
	if err := db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)).Scan(&count); err != nil {
		return fmt.Errorf("failed to count %s: %w", table, err)
	}
	if count > 0 {
		return nil
	}
	for _, name := range names {
		if _, err := db.ExecContext(ctx, fmt.Sprintf(`INSERT INTO %s (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, table), name); err != nil {
			return fmt.Errorf("failed to seed %s: %w", table, err)
		}
	}
	return nil
}

package repository

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps the database connection
type DB struct {
	*sql.DB
}

// NewDB creates a new database connection
func NewDB(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := seed(db); err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	return &DB{db}, nil
}

func runMigrations(db *sql.DB) error {
	// Sessions are deliberately not persisted; this DB holds the read-only
	// collaborator data: catalog, order history, promotions, stores.
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS products (
			brand TEXT NOT NULL,
			model TEXT NOT NULL,
			price REAL NOT NULL,
			sizes TEXT NOT NULL,
			colors TEXT NOT NULL,
			in_stock INTEGER NOT NULL DEFAULT 1,
			description TEXT,
			image_url TEXT,
			PRIMARY KEY (brand, model)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			order_date TEXT NOT NULL,
			items TEXT NOT NULL,
			total REAL NOT NULL,
			status TEXT NOT NULL,
			delivery_date TEXT,
			address TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS promotions (
			code TEXT PRIMARY KEY,
			discount TEXT NOT NULL,
			description TEXT NOT NULL,
			brand TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS stores (
			name TEXT PRIMARY KEY,
			address TEXT NOT NULL,
			hours TEXT NOT NULL,
			phone TEXT NOT NULL,
			features TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_brand ON products(brand)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}

	return nil
}

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	// pure Go driver, registers "sqlite"
	_ "modernc.org/sqlite"
)

// sqliteSchema mirrors the gorm models so both stores answer the same queries.
// deleted_at is kept for soft deletes; rows with a value are invisible to receipts.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS customers (
    id          TEXT    PRIMARY KEY,
    name        TEXT    NOT NULL,
    email       TEXT,
    phone       TEXT,
    created_at  TEXT    NOT NULL,
    updated_at  TEXT    NOT NULL,
    deleted_at  TEXT
);

CREATE INDEX IF NOT EXISTS idx_customers_deleted_at ON customers(deleted_at);

CREATE TABLE IF NOT EXISTS products (
    id             TEXT    PRIMARY KEY,
    name           TEXT    NOT NULL,
    code           TEXT    NOT NULL DEFAULT '',
    selling_price  INTEGER NOT NULL DEFAULT 0,
    created_at     TEXT    NOT NULL,
    updated_at     TEXT    NOT NULL,
    deleted_at     TEXT
);

CREATE INDEX IF NOT EXISTS idx_products_code ON products(code);
CREATE INDEX IF NOT EXISTS idx_products_deleted_at ON products(deleted_at);
`

// OpenSQLite opens (or creates) the SQLite database at path and applies the schema.
//
//	db, err := database.OpenSQLite("./data/receipts.db", log)
func OpenSQLite(path string, log *zap.Logger) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: create dir %q: %w", dir, err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// single writer; readers share it
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}

	log.Info("opened SQLite database", zap.String("path", path))
	return db, nil
}

// SeedSQLite inserts the sample catalog when the products table is empty
func SeedSQLite(ctx context.Context, db *sql.DB, log *zap.Logger) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return fmt.Errorf("sqlite: count products: %w", err)
	}
	if count > 0 {
		log.Debug("catalog already seeded", zap.Int("products", count))
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	customers := SampleCustomers()
	for _, c := range customers {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO customers (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)",
			c.ID, c.Name, now, now); err != nil {
			return fmt.Errorf("sqlite: seed customer %s: %w", c.ID, err)
		}
	}
	products := SampleProducts()
	for _, p := range products {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO products (id, name, code, selling_price, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
			p.ID, p.Name, p.Code, p.SellingPrice, now, now); err != nil {
			return fmt.Errorf("sqlite: seed product %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit seed: %w", err)
	}
	log.Info("seeded sample catalog", zap.Int("customers", len(customers)), zap.Int("products", len(products)))
	return nil
}

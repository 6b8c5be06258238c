package db

import (
	"database/sql"
	"fmt"
)

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations at the
// end.
var migrations = []string{
	// Migration 1: products gained a barcode index after the initial release;
	// older databases only had the implicit rowid lookup.
	`CREATE INDEX IF NOT EXISTS idx_products_barcode ON products(barcode)`,

	// Migration 2: employee codes were made reusable after soft deletion,
	// mirroring how usernames work.
	`DROP INDEX IF EXISTS sqlite_autoindex_employees_1`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_employees_code_active
	     ON employees(code) WHERE deleted_at IS NULL`,
}

// Migrate ensures the schema and runs the database migrations.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}

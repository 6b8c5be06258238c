package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY,
    username      TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL DEFAULT 'user' CHECK (role IN ('admin', 'manager', 'user')),
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at    DATETIME
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username_active
    ON users(username) WHERE deleted_at IS NULL;

CREATE TABLE IF NOT EXISTS employees (
    id          INTEGER PRIMARY KEY,
    code        TEXT NOT NULL,
    first_name  TEXT NOT NULL,
    last_name   TEXT NOT NULL,
    hourly_rate REAL NOT NULL DEFAULT 0,
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at  DATETIME
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_employees_code_active
    ON employees(code) WHERE deleted_at IS NULL;

CREATE TABLE IF NOT EXISTS work_hours (
    id          INTEGER PRIMARY KEY,
    employee_id INTEGER NOT NULL REFERENCES employees(id),
    date        TEXT NOT NULL,
    start_time  TEXT NOT NULL,
    end_time    TEXT NOT NULL,
    minutes     INTEGER NOT NULL,
    overnight   INTEGER NOT NULL DEFAULT 0,
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (employee_id, date)
);

CREATE TABLE IF NOT EXISTS products (
    id         INTEGER PRIMARY KEY,
    barcode    TEXT NOT NULL,
    name       TEXT NOT NULL,
    size       TEXT NOT NULL DEFAULT '',
    price      REAL NOT NULL DEFAULT 0,
    currency   TEXT NOT NULL DEFAULT 'PLN',
    photo      BLOB,
    photo_mime TEXT,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at DATETIME
);

CREATE INDEX IF NOT EXISTS idx_products_barcode ON products(barcode);

CREATE TABLE IF NOT EXISTS stock (
    product_id INTEGER NOT NULL REFERENCES products(id),
    symbol     TEXT NOT NULL,
    quantity   INTEGER NOT NULL CHECK (quantity > 0),
    PRIMARY KEY (product_id, symbol)
);

CREATE TABLE IF NOT EXISTS currency_rates (
    code       TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    buy_rate   REAL NOT NULL,
    sell_rate  REAL NOT NULL,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS corrections (
    id         TEXT PRIMARY KEY,
    status     TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'resolved', 'ignored')),
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    created_by INTEGER REFERENCES users(id)
);

CREATE TABLE IF NOT EXISTS correction_items (
    id            INTEGER PRIMARY KEY,
    correction_id TEXT NOT NULL REFERENCES corrections(id),
    barcode       TEXT NOT NULL DEFAULT '',
    name          TEXT NOT NULL DEFAULT '',
    size          TEXT NOT NULL DEFAULT '',
    symbol        TEXT NOT NULL DEFAULT '',
    class         TEXT NOT NULL CHECK (class IN ('matched', 'missing', 'duplicate', 'unscanned')),
    matches       INTEGER NOT NULL DEFAULT 0,
    value         REAL NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_correction_items_correction
    ON correction_items(correction_id);

CREATE TABLE IF NOT EXISTS sales (
    id         INTEGER PRIMARY KEY,
    product_id INTEGER NOT NULL REFERENCES products(id),
    quantity   INTEGER NOT NULL CHECK (quantity > 0),
    unit_price REAL NOT NULL,
    currency   TEXT NOT NULL DEFAULT 'PLN',
    sold_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    sold_by    INTEGER REFERENCES users(id)
);

CREATE INDEX IF NOT EXISTS idx_sales_sold_at ON sales(sold_at);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at DATETIME NOT NULL
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

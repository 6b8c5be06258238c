package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mwitek/magazyn/internal/model"
)

// CreateSale records a sold product line and decreases stock at the given
// location in a single transaction.
func CreateSale(ctx context.Context, db *sql.DB, productID int64, symbol string, quantity int, unitPrice float64, currency string, soldBy *int64) (*model.Sale, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}
	if unitPrice < 0 {
		return nil, fmt.Errorf("unit price cannot be negative")
	}
	if currency == "" {
		currency = "PLN"
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := adjustStockTx(ctx, tx, productID, symbol, -quantity); err != nil {
		return nil, err
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO sales (product_id, quantity, unit_price, currency, sold_by)
		 VALUES (?, ?, ?, ?, ?)`,
		productID, quantity, unitPrice, currency, soldBy,
	)
	if err != nil {
		return nil, fmt.Errorf("creating sale: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting sale id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing sale: %w", err)
	}

	return GetSale(ctx, db, id)
}

// GetSale returns a sale by ID.
func GetSale(ctx context.Context, db *sql.DB, id int64) (*model.Sale, error) {
	s := &model.Sale{}
	err := db.QueryRowContext(ctx,
		`SELECT s.id, s.product_id, s.quantity, s.unit_price, s.currency, s.sold_at, s.sold_by, p.name
		 FROM sales s
		 JOIN products p ON p.id = s.product_id
		 WHERE s.id = ?`, id,
	).Scan(&s.ID, &s.ProductID, &s.Quantity, &s.UnitPrice, &s.Currency, &s.SoldAt, &s.SoldBy, &s.ProductName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting sale: %w", err)
	}
	return s, nil
}

// ListSales returns sales, optionally limited to a day given as "YYYY-MM-DD"
// or a month given as "YYYY-MM", newest first.
func ListSales(ctx context.Context, db *sql.DB, period string) ([]model.Sale, error) {
	query := `SELECT s.id, s.product_id, s.quantity, s.unit_price, s.currency, s.sold_at, s.sold_by, p.name
	          FROM sales s
	          JOIN products p ON p.id = s.product_id`
	var args []any
	if period != "" {
		query += ` WHERE s.sold_at LIKE ?`
		args = append(args, period+"%")
	}
	query += ` ORDER BY s.sold_at DESC`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sales: %w", err)
	}
	defer rows.Close()

	var sales []model.Sale
	for rows.Next() {
		var s model.Sale
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.UnitPrice, &s.Currency, &s.SoldAt, &s.SoldBy, &s.ProductName); err != nil {
			return nil, fmt.Errorf("scanning sale: %w", err)
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mwitek/magazyn/internal/model"
	"github.com/mwitek/magazyn/internal/reconcile"
)

// ListStock returns the full stock overview.
func ListStock(ctx context.Context, db *sql.DB) ([]model.StockEntry, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT s.product_id, s.symbol, s.quantity, p.barcode, p.name, p.size
		 FROM stock s
		 JOIN products p ON p.id = s.product_id
		 ORDER BY p.name, p.size, s.symbol`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing stock: %w", err)
	}
	defer rows.Close()

	var entries []model.StockEntry
	for rows.Next() {
		var e model.StockEntry
		if err := rows.Scan(&e.ProductID, &e.Symbol, &e.Quantity, &e.Barcode, &e.Name, &e.Size); err != nil {
			return nil, fmt.Errorf("scanning stock entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// AddStock adds product quantity at a stock location.
func AddStock(ctx context.Context, db *sql.DB, productID int64, symbol string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if symbol == "" {
		return fmt.Errorf("symbol required")
	}

	product, err := GetProduct(ctx, db, productID)
	if err != nil {
		return err
	}
	if product == nil || product.DeletedAt != nil {
		return fmt.Errorf("product not found")
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO stock (product_id, symbol, quantity) VALUES (?, ?, ?)
		 ON CONFLICT (product_id, symbol) DO UPDATE SET quantity = quantity + ?`,
		productID, symbol, quantity, quantity,
	)
	if err != nil {
		return fmt.Errorf("adding stock: %w", err)
	}
	return nil
}

// AdjustStock adjusts stock quantity at a location (for corrections and
// losses). Delta can be negative. If the resulting quantity is 0, the row is
// deleted; a negative result is rejected.
func AdjustStock(ctx context.Context, db *sql.DB, productID int64, symbol string, delta int) error {
	if delta == 0 {
		return fmt.Errorf("delta must be non-zero")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := adjustStockTx(ctx, tx, productID, symbol, delta); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing adjustment: %w", err)
	}
	return nil
}

// adjustStockTx applies one stock delta inside an existing transaction.
func adjustStockTx(ctx context.Context, tx *sql.Tx, productID int64, symbol string, delta int) error {
	var current int
	err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(quantity, 0) FROM stock WHERE product_id = ? AND symbol = ?`,
		productID, symbol,
	).Scan(&current)
	if err == sql.ErrNoRows {
		current = 0
	} else if err != nil {
		return fmt.Errorf("checking current quantity: %w", err)
	}

	newQty := current + delta
	if newQty < 0 {
		return fmt.Errorf("adjustment would result in negative quantity: %d + %d = %d", current, delta, newQty)
	}

	if newQty == 0 {
		_, err = tx.ExecContext(ctx,
			`DELETE FROM stock WHERE product_id = ? AND symbol = ?`,
			productID, symbol,
		)
	} else if current == 0 {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO stock (product_id, symbol, quantity) VALUES (?, ?, ?)`,
			productID, symbol, newQty,
		)
	} else {
		_, err = tx.ExecContext(ctx,
			`UPDATE stock SET quantity = ? WHERE product_id = ? AND symbol = ?`,
			newQty, productID, symbol,
		)
	}
	if err != nil {
		return fmt.Errorf("adjusting stock: %w", err)
	}
	return nil
}

// StateItems expands the recorded stock into per-unit state items for
// reconciliation: a row with quantity 3 becomes three state items, matching
// how scanners produce one entry per physical piece.
func StateItems(ctx context.Context, db *sql.DB) ([]reconcile.StateItem, error) {
	entries, err := ListStock(ctx, db)
	if err != nil {
		return nil, err
	}

	var items []reconcile.StateItem
	for _, e := range entries {
		for i := 0; i < e.Quantity; i++ {
			items = append(items, reconcile.StateItem{
				Barcode:  e.Barcode,
				FullName: e.Name,
				Size:     e.Size,
				Symbol:   e.Symbol,
				Quantity: 1,
			})
		}
	}
	return items, nil
}

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mwitek/magazyn/internal/model"
)

// CreateProduct creates a new catalog product.
func CreateProduct(ctx context.Context, db *sql.DB, barcode, name, size string, price float64, currency string) (*model.Product, error) {
	if currency == "" {
		currency = "PLN"
	}
	result, err := db.ExecContext(ctx,
		`INSERT INTO products (barcode, name, size, price, currency) VALUES (?, ?, ?, ?, ?)`,
		barcode, name, size, price, currency,
	)
	if err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting product id: %w", err)
	}

	return GetProduct(ctx, db, id)
}

// GetProduct returns a product by ID.
func GetProduct(ctx context.Context, db *sql.DB, id int64) (*model.Product, error) {
	p := &model.Product{}
	var photoMime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, barcode, name, size, price, currency, photo_mime, created_at, updated_at, deleted_at
		 FROM products WHERE id = ?`, id,
	).Scan(&p.ID, &p.Barcode, &p.Name, &p.Size, &p.Price, &p.Currency, &photoMime, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting product: %w", err)
	}
	p.PhotoMime = photoMime.String
	return p, nil
}

// ListProducts returns all non-deleted products, optionally filtered by a
// case-insensitive name/barcode search term.
func ListProducts(ctx context.Context, db *sql.DB, search string) ([]model.Product, error) {
	var rows *sql.Rows
	var err error

	if search != "" {
		like := "%" + search + "%"
		rows, err = db.QueryContext(ctx,
			`SELECT id, barcode, name, size, price, currency, photo_mime, created_at, updated_at, deleted_at
			 FROM products
			 WHERE deleted_at IS NULL AND (name LIKE ? COLLATE NOCASE OR barcode LIKE ?)
			 ORDER BY name, size`, like, like,
		)
	} else {
		rows, err = db.QueryContext(ctx,
			`SELECT id, barcode, name, size, price, currency, photo_mime, created_at, updated_at, deleted_at
			 FROM products WHERE deleted_at IS NULL ORDER BY name, size`,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		var photoMime sql.NullString
		if err := rows.Scan(&p.ID, &p.Barcode, &p.Name, &p.Size, &p.Price, &p.Currency, &photoMime, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		p.PhotoMime = photoMime.String
		products = append(products, p)
	}
	return products, rows.Err()
}

// UpdateProduct updates a product's metadata.
func UpdateProduct(ctx context.Context, db *sql.DB, id int64, barcode, name, size string, price float64, currency string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE products SET barcode = ?, name = ?, size = ?, price = ?, currency = ?,
		        updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND deleted_at IS NULL`,
		barcode, name, size, price, currency, id,
	)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}
	return nil
}

// DeleteProduct soft-deletes a product.
func DeleteProduct(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx,
		`UPDATE products SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	return nil
}

// SetProductPhoto stores a product's photo data.
func SetProductPhoto(ctx context.Context, db *sql.DB, id int64, photo []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE products SET photo = ?, photo_mime = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND deleted_at IS NULL`,
		photo, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting product photo: %w", err)
	}
	return nil
}

// GetProductPhoto returns a product's photo data and MIME type.
func GetProductPhoto(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var photo []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT photo, photo_mime FROM products WHERE id = ?`, id,
	).Scan(&photo, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting product photo: %w", err)
	}
	return photo, mime.String, nil
}

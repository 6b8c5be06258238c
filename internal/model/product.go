package model

import "time"

// Product represents a catalog entry. A product is identified by its barcode,
// or by the (name, size) pair for items whose labels carry no barcode.
type Product struct {
	ID        int64      `json:"id"`
	Barcode   string     `json:"barcode"`
	Name      string     `json:"name"`
	Size      string     `json:"size,omitempty"`
	Price     float64    `json:"price"`
	Currency  string     `json:"currency"`
	PhotoMime string     `json:"photo_mime,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// StockEntry represents the recorded quantity of a product at a stock
// location (symbol).
type StockEntry struct {
	ProductID int64  `json:"product_id"`
	Symbol    string `json:"symbol"`
	Quantity  int    `json:"quantity"`

	// Joined fields (not always populated).
	Barcode string `json:"barcode,omitempty"`
	Name    string `json:"name,omitempty"`
	Size    string `json:"size,omitempty"`
}

// Sale records one sold product line.
type Sale struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	Currency  string    `json:"currency"`
	SoldAt    time.Time `json:"sold_at"`
	SoldBy    *int64    `json:"sold_by,omitempty"`

	// Joined fields (not always populated).
	ProductName string `json:"product_name,omitempty"`
}

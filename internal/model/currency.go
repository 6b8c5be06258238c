package model

import "time"

// Currency identifies a quoted currency. The name can carry the "za 100"
// quotation convention marker for per-hundred-units rates.
type Currency struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CurrencyRate is one row of the exchange rate table.
type CurrencyRate struct {
	Currency  Currency  `json:"currency"`
	BuyRate   float64   `json:"buy_rate"`
	SellRate  float64   `json:"sell_rate"`
	UpdatedAt time.Time `json:"updated_at"`
}

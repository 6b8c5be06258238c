package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mwitek/magazyn/internal/model"
)

// ListRates returns the current exchange rate table ordered by code.
func ListRates(ctx context.Context, db *sql.DB) ([]model.CurrencyRate, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT code, name, buy_rate, sell_rate, updated_at
		 FROM currency_rates ORDER BY code`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing rates: %w", err)
	}
	defer rows.Close()

	var rates []model.CurrencyRate
	for rows.Next() {
		var r model.CurrencyRate
		if err := rows.Scan(&r.Currency.Code, &r.Currency.Name, &r.BuyRate, &r.SellRate, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning rate: %w", err)
		}
		rates = append(rates, r)
	}
	return rates, rows.Err()
}

// ReplaceRates swaps the whole rate table for a fresh one in a single
// transaction. Rates arrive as one batch from the upstream quote source, so
// partial tables are never left behind.
func ReplaceRates(ctx context.Context, db *sql.DB, rates []model.CurrencyRate) error {
	for _, r := range rates {
		if r.Currency.Code == "" {
			return fmt.Errorf("rate with empty currency code")
		}
		if r.BuyRate <= 0 || r.SellRate <= 0 {
			return fmt.Errorf("rate for %s must have positive buy and sell rates", r.Currency.Code)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM currency_rates`); err != nil {
		return fmt.Errorf("clearing rates: %w", err)
	}

	for _, r := range rates {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO currency_rates (code, name, buy_rate, sell_rate, updated_at)
			 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)`,
			r.Currency.Code, r.Currency.Name, r.BuyRate, r.SellRate,
		)
		if err != nil {
			return fmt.Errorf("inserting rate %s: %w", r.Currency.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing rates: %w", err)
	}
	return nil
}

package store

import (
	"context"
	"testing"

	"github.com/mwitek/magazyn/internal/db"
	"github.com/mwitek/magazyn/internal/model"
)

func sampleRates() []model.CurrencyRate {
	return []model.CurrencyRate{
		{Currency: model.Currency{Code: "EUR", Name: "Euro"}, BuyRate: 4.10, SellRate: 4.30},
		{Currency: model.Currency{Code: "HUF", Name: "Forint węgierski (za 100)"}, BuyRate: 1.23, SellRate: 1.35},
	}
}

func TestReplaceAndListRates(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if err := ReplaceRates(ctx, database, sampleRates()); err != nil {
		t.Fatalf("ReplaceRates: %v", err)
	}

	rates, err := ListRates(ctx, database)
	if err != nil {
		t.Fatalf("ListRates: %v", err)
	}
	if len(rates) != 2 {
		t.Fatalf("expected 2 rates, got %d", len(rates))
	}
	if rates[0].Currency.Code != "EUR" || rates[1].Currency.Code != "HUF" {
		t.Errorf("rates not ordered by code: %+v", rates)
	}
	if rates[1].BuyRate != 1.23 {
		t.Errorf("expected HUF buy rate 1.23, got %v", rates[1].BuyRate)
	}
}

func TestReplaceRatesSwapsWholeTable(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	ReplaceRates(ctx, database, sampleRates())

	fresh := []model.CurrencyRate{
		{Currency: model.Currency{Code: "USD", Name: "Dolar amerykański"}, BuyRate: 3.80, SellRate: 4.00},
	}
	if err := ReplaceRates(ctx, database, fresh); err != nil {
		t.Fatalf("ReplaceRates: %v", err)
	}

	rates, _ := ListRates(ctx, database)
	if len(rates) != 1 || rates[0].Currency.Code != "USD" {
		t.Errorf("expected table replaced with USD only, got %+v", rates)
	}
}

func TestReplaceRatesRejectsBadRows(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	ReplaceRates(ctx, database, sampleRates())

	bad := []model.CurrencyRate{
		{Currency: model.Currency{Code: "", Name: "Bez kodu"}, BuyRate: 1, SellRate: 1},
	}
	if err := ReplaceRates(ctx, database, bad); err == nil {
		t.Error("expected error for empty currency code")
	}

	bad = []model.CurrencyRate{
		{Currency: model.Currency{Code: "EUR", Name: "Euro"}, BuyRate: 0, SellRate: 4.30},
	}
	if err := ReplaceRates(ctx, database, bad); err == nil {
		t.Error("expected error for non-positive buy rate")
	}

	// The previous table survives a failed replacement.
	rates, _ := ListRates(ctx, database)
	if len(rates) != 2 {
		t.Errorf("expected old table intact after failed replace, got %+v", rates)
	}
}

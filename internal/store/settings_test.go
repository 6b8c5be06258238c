package store

import (
	"context"
	"testing"

	"github.com/mwitek/magazyn/internal/db"
)

func TestGetJWTSecretStable(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	first, err := GetJWTSecret(ctx, database)
	if err != nil {
		t.Fatalf("GetJWTSecret: %v", err)
	}
	if first == "" {
		t.Fatal("expected a generated secret")
	}

	// A second call returns the stored secret, not a fresh one.
	second, err := GetJWTSecret(ctx, database)
	if err != nil {
		t.Fatalf("GetJWTSecret: %v", err)
	}
	if second != first {
		t.Errorf("expected stable secret, got %q then %q", first, second)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	got, err := GetSetting(ctx, database, "base_currency", "PLN")
	if err != nil {
		t.Fatalf("GetSetting: %v", err)
	}
	if got != "PLN" {
		t.Errorf("expected fallback PLN, got %q", got)
	}

	if err := SetSetting(ctx, database, "base_currency", "EUR"); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}
	got, _ = GetSetting(ctx, database, "base_currency", "PLN")
	if got != "EUR" {
		t.Errorf("expected stored EUR, got %q", got)
	}

	// Setting again replaces the value.
	SetSetting(ctx, database, "base_currency", "PLN")
	got, _ = GetSetting(ctx, database, "base_currency", "")
	if got != "PLN" {
		t.Errorf("expected replaced PLN, got %q", got)
	}
}

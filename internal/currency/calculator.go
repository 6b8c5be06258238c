// Package currency implements the exchange calculator used for pricing
// foreign-currency goods. All conversions are routed through the home
// currency and use the buy rate in both directions: the business prices
// conservatively at the rate it acquires foreign currency, so the sell rate
// is never consulted here.
package currency

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/mwitek/magazyn/internal/model"
)

// DefaultBase is the home currency all conversions are routed through.
const DefaultBase = "PLN"

// Calculator failure modes. The messages are shown to users verbatim.
var (
	ErrInvalidAmount = errors.New("Wprowadź prawidłową kwotę")
	ErrNoRates       = errors.New("Brak dostępnych kursów walut")
	ErrRateNotFound  = errors.New("Nie znaleziono kursu dla wybranej waluty")
)

// perHundredMarker flags rates quoted per 100 units of the foreign currency
// (low-value currencies like HUF or JPY).
const perHundredMarker = "za 100"

// Calculator converts amounts between the home currency and foreign
// currencies using a fixed rate table. The table is immutable for the
// calculator's lifetime; build a new one when rates refresh.
type Calculator struct {
	base  string
	rates []model.CurrencyRate
}

// New creates a calculator over the given rate table. An empty base defaults
// to DefaultBase.
func New(base string, rates []model.CurrencyRate) *Calculator {
	if base == "" {
		base = DefaultBase
	}
	return &Calculator{base: base, rates: rates}
}

// Base returns the home currency code.
func (c *Calculator) Base() string {
	return c.base
}

// Multiplier returns the quotation multiplier for a rate: 100 for rates
// quoted per 100 units, otherwise 1. Nil rates get the neutral multiplier.
func Multiplier(r *model.CurrencyRate) float64 {
	if r == nil {
		return 1
	}
	name := r.Currency.Name
	if strings.Contains(name, "("+perHundredMarker+")") ||
		strings.Contains(strings.ToLower(name), perHundredMarker) {
		return 100
	}
	return 1
}

// Convert converts amount (a user-entered decimal string) from one currency
// to another and rounds the result to two decimal places. Every path goes
// through the home currency and uses buy rates only.
func (c *Calculator) Convert(amount, from, to string) (float64, error) {
	value, err := parseAmount(amount)
	if err != nil {
		return 0, err
	}
	if len(c.rates) == 0 {
		return 0, ErrNoRates
	}

	var result float64
	switch {
	case from == c.base:
		rate, ok := c.find(to)
		if !ok {
			return 0, ErrRateNotFound
		}
		result = value / rate.BuyRate * Multiplier(rate)
	case to == c.base:
		rate, ok := c.find(from)
		if !ok {
			return 0, ErrRateNotFound
		}
		result = value / Multiplier(rate) * rate.BuyRate
	default:
		fromRate, ok := c.find(from)
		if !ok {
			return 0, ErrRateNotFound
		}
		toRate, ok := c.find(to)
		if !ok {
			return 0, ErrRateNotFound
		}
		inBase := value / Multiplier(fromRate) * fromRate.BuyRate
		result = inBase / toRate.BuyRate * Multiplier(toRate)
	}

	return round2(result), nil
}

// Swap exchanges the from/to currency selection. The caller is responsible
// for clearing any previously displayed result.
func Swap(from, to string) (newFrom, newTo string) {
	return to, from
}

func (c *Calculator) find(code string) (*model.CurrencyRate, bool) {
	for i := range c.rates {
		if c.rates[i].Currency.Code == code {
			return &c.rates[i], true
		}
	}
	return nil, false
}

// parseAmount parses a user-entered amount. Comma decimals are accepted
// because the clients run with Polish keyboard layouts.
func parseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || value <= 0 {
		return 0, ErrInvalidAmount
	}
	return value, nil
}

// round2 rounds to two decimals with halves away from zero, matching how the
// mobile clients format results.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

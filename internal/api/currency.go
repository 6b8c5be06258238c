package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/mwitek/magazyn/internal/currency"
	"github.com/mwitek/magazyn/internal/model"
	"github.com/mwitek/magazyn/internal/store"
)

// CurrencyHandler handles exchange rate and conversion endpoints.
type CurrencyHandler struct {
	DB *sql.DB
}

type convertRequest struct {
	Amount string `json:"amount"`
	From   string `json:"from"`
	To     string `json:"to"`
}

type convertResponse struct {
	Result float64 `json:"result"`
	From   string  `json:"from"`
	To     string  `json:"to"`
}

// ListRates handles GET /api/currency/rates.
func (h *CurrencyHandler) ListRates(w http.ResponseWriter, r *http.Request) {
	rates, err := store.ListRates(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list rates", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list rates")
		return
	}
	if rates == nil {
		rates = []model.CurrencyRate{}
	}
	jsonResponse(w, http.StatusOK, rates)
}

// ReplaceRates handles PUT /api/currency/rates. The whole rate table is
// swapped at once; a rejected batch leaves the previous table intact.
func (h *CurrencyHandler) ReplaceRates(w http.ResponseWriter, r *http.Request) {
	var rates []model.CurrencyRate
	if err := decodeJSON(r, &rates); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := store.ReplaceRates(r.Context(), h.DB, rates); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	claims := GetClaims(r.Context())
	slog.Info("exchange rates replaced", "user", claims.Username, "count", len(rates))
	jsonResponse(w, http.StatusOK, map[string]string{"message": "rates updated"})
}

// Convert handles POST /api/currency/convert. Conversion always routes
// through the base currency using buy rates only; user-facing failures
// keep their Polish wording.
func (h *CurrencyHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rates, err := store.ListRates(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list rates", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}

	calc := currency.New(currency.DefaultBase, rates)
	result, err := calc.Convert(req.Amount, req.From, req.To)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, convertResponse{Result: result, From: req.From, To: req.To})
}

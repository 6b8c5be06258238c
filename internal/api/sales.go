package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/mwitek/magazyn/internal/model"
	"github.com/mwitek/magazyn/internal/store"
)

// SalesHandler handles sale recording endpoints.
type SalesHandler struct {
	DB *sql.DB
}

type createSaleRequest struct {
	ProductID int64   `json:"product_id"`
	Symbol    string  `json:"symbol"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Currency  string  `json:"currency"`
}

// Create handles POST /api/sales. Selling decreases stock in the same
// transaction; overselling fails with nothing recorded.
func (h *SalesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSaleRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ProductID <= 0 || req.Symbol == "" || req.Quantity <= 0 {
		jsonError(w, http.StatusBadRequest, "product_id, symbol, and positive quantity required")
		return
	}
	if req.UnitPrice < 0 {
		jsonError(w, http.StatusBadRequest, "unit price cannot be negative")
		return
	}

	claims := GetClaims(r.Context())
	var soldBy *int64
	if claims != nil {
		soldBy = &claims.UserID
	}

	sale, err := store.CreateSale(r.Context(), h.DB, req.ProductID, req.Symbol, req.Quantity, req.UnitPrice, req.Currency, soldBy)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	jsonResponse(w, http.StatusCreated, sale)
}

// List handles GET /api/sales. Supports ?period=YYYY-MM.
func (h *SalesHandler) List(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	sales, err := store.ListSales(r.Context(), h.DB, period)
	if err != nil {
		slog.Error("failed to list sales", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list sales")
		return
	}
	if sales == nil {
		sales = []model.Sale{}
	}
	jsonResponse(w, http.StatusOK, sales)
}

package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/mwitek/magazyn/internal/model"
	"github.com/mwitek/magazyn/internal/store"
)

// StockHandler handles per-symbol stock endpoints.
type StockHandler struct {
	DB *sql.DB
}

type addStockRequest struct {
	ProductID int64  `json:"product_id"`
	Symbol    string `json:"symbol"`
	Quantity  int    `json:"quantity"`
}

type adjustStockRequest struct {
	ProductID int64  `json:"product_id"`
	Symbol    string `json:"symbol"`
	Delta     int    `json:"delta"`
}

// List handles GET /api/stock.
func (h *StockHandler) List(w http.ResponseWriter, r *http.Request) {
	stock, err := store.ListStock(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list stock", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list stock")
		return
	}
	if stock == nil {
		stock = []model.StockEntry{}
	}
	jsonResponse(w, http.StatusOK, stock)
}

// Add handles POST /api/stock.
func (h *StockHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addStockRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ProductID <= 0 || req.Symbol == "" || req.Quantity <= 0 {
		jsonError(w, http.StatusBadRequest, "product_id, symbol, and positive quantity required")
		return
	}

	if err := store.AddStock(r.Context(), h.DB, req.ProductID, req.Symbol, req.Quantity); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "stock added"})
}

// Adjust handles POST /api/stock/adjust.
func (h *StockHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req adjustStockRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ProductID <= 0 || req.Symbol == "" || req.Delta == 0 {
		jsonError(w, http.StatusBadRequest, "product_id, symbol, and non-zero delta required")
		return
	}

	if err := store.AdjustStock(r.Context(), h.DB, req.ProductID, req.Symbol, req.Delta); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "stock adjusted"})
}

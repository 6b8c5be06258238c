package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/mwitek/magazyn/internal/model"
	"github.com/mwitek/magazyn/internal/reconcile"
	"github.com/mwitek/magazyn/internal/store"
)

// CorrectionsHandler handles stock correction sessions.
type CorrectionsHandler struct {
	DB *sql.DB
}

type scannedItem struct {
	Code  string  `json:"code"`
	Name  string  `json:"name"`
	Size  string  `json:"size"`
	Value float64 `json:"value"`
}

type createCorrectionRequest struct {
	Items []scannedItem `json:"items"`
}

type correctionStatusRequest struct {
	Status string `json:"status"`
}

// Create handles POST /api/corrections. The scanned batch is reconciled
// against current stock and persisted as a pending session.
func (h *CorrectionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCorrectionRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.Items) == 0 {
		jsonError(w, http.StatusBadRequest, "at least one scanned item required")
		return
	}

	state, err := store.StateItems(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to load stock state", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}

	now := time.Now()
	scanned := make([]reconcile.Scanned, 0, len(req.Items))
	for _, item := range req.Items {
		scanned = append(scanned, reconcile.Scanned{
			Code:      item.Code,
			Name:      item.Name,
			Size:      item.Size,
			Value:     item.Value,
			ScannedAt: now,
		})
	}

	result := reconcile.Match(scanned, state, nil)

	claims := GetClaims(r.Context())
	var createdBy *int64
	if claims != nil {
		createdBy = &claims.UserID
	}

	correction, err := store.CreateCorrection(r.Context(), h.DB, result, createdBy)
	if err != nil {
		slog.Error("failed to create correction", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create correction")
		return
	}

	slog.Info("correction created", "id", correction.ID, "scanned", len(scanned), "missing", len(result.Missing), "unscanned", len(result.Unscanned))
	jsonResponse(w, http.StatusCreated, correction)
}

// List handles GET /api/corrections. Supports ?status=.
func (h *CorrectionsHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && status != model.CorrectionPending && status != model.CorrectionResolved && status != model.CorrectionIgnored {
		jsonError(w, http.StatusBadRequest, "invalid status filter")
		return
	}

	corrections, err := store.ListCorrections(r.Context(), h.DB, status)
	if err != nil {
		slog.Error("failed to list corrections", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list corrections")
		return
	}
	if corrections == nil {
		corrections = []model.Correction{}
	}
	jsonResponse(w, http.StatusOK, corrections)
}

// Get handles GET /api/corrections/{id}.
func (h *CorrectionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	correction, err := store.GetCorrection(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		slog.Error("failed to get correction", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get correction")
		return
	}
	if correction == nil {
		jsonError(w, http.StatusNotFound, "correction not found")
		return
	}
	jsonResponse(w, http.StatusOK, correction)
}

// SetStatus handles PUT /api/corrections/{id}/status. Resolving applies
// write-offs for items never scanned; reopening rolls them back.
func (h *CorrectionsHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req correctionStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Status != model.CorrectionPending && req.Status != model.CorrectionResolved && req.Status != model.CorrectionIgnored {
		jsonError(w, http.StatusBadRequest, "invalid status")
		return
	}

	id := r.PathValue("id")
	if err := store.SetCorrectionStatus(r.Context(), h.DB, id, req.Status); err != nil {
		jsonError(w, http.StatusConflict, err.Error())
		return
	}

	claims := GetClaims(r.Context())
	slog.Info("correction status changed", "user", claims.Username, "id", id, "status", req.Status)

	correction, _ := store.GetCorrection(r.Context(), h.DB, id)
	jsonResponse(w, http.StatusOK, correction)
}

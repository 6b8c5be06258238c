package api

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mwitek/magazyn/internal/report"
	"github.com/mwitek/magazyn/internal/store"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportsHandler serves XLSX exports.
type ReportsHandler struct {
	DB *sql.DB
}

// Payroll handles GET /api/reports/payroll. Requires ?month=YYYY-MM and
// streams the monthly payroll workbook.
func (h *ReportsHandler) Payroll(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		jsonError(w, http.StatusBadRequest, "month required")
		return
	}

	employees, err := store.ListEmployees(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list employees", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	records, err := store.ListWorkHours(r.Context(), h.DB, 0, month)
	if err != nil {
		slog.Error("failed to list work hours", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}

	f, err := report.PayrollWorkbook(month, employees, records)
	if err != nil {
		slog.Error("failed to build payroll workbook", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to build report")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payroll-%s.xlsx", month))
	if err := f.Write(w); err != nil {
		slog.Error("failed to write payroll workbook", "error", err)
	}
}

// Correction handles GET /api/reports/corrections/{id} and streams one
// correction session as a workbook.
func (h *ReportsHandler) Correction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	correction, err := store.GetCorrection(r.Context(), h.DB, id)
	if err != nil {
		slog.Error("failed to get correction", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if correction == nil {
		jsonError(w, http.StatusNotFound, "correction not found")
		return
	}

	f, err := report.CorrectionWorkbook(correction)
	if err != nil {
		slog.Error("failed to build correction workbook", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to build report")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=correction-%s.xlsx", id))
	if err := f.Write(w); err != nil {
		slog.Error("failed to write correction workbook", "error", err)
	}
}

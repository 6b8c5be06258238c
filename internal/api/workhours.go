package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mwitek/magazyn/internal/model"
	"github.com/mwitek/magazyn/internal/report"
	"github.com/mwitek/magazyn/internal/store"
	"github.com/mwitek/magazyn/internal/timesheet"
)

// WorkHoursHandler handles shift recording and payroll endpoints.
type WorkHoursHandler struct {
	DB *sql.DB
}

type workHoursRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

type workHoursResponse struct {
	Record *model.WorkHoursRecord `json:"record"`
	Shift  timesheet.Shift        `json:"shift"`
}

// Create handles POST /api/work-hours. A record that fails business
// validation is rejected with 422 and the full list of problems so a
// form can show them all at once. Saving twice for the same employee
// and date replaces the earlier entry.
func (h *WorkHoursHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req workHoursRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec := &timesheet.Record{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if req.EmployeeID > 0 {
		rec.EmployeeID = strconv.FormatInt(req.EmployeeID, 10)
	}

	validation := timesheet.ValidateRecord(rec)
	if !validation.Valid {
		jsonResponse(w, http.StatusUnprocessableEntity, validation)
		return
	}

	employee, err := store.GetEmployee(r.Context(), h.DB, req.EmployeeID)
	if err != nil {
		slog.Error("failed to get employee", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if employee == nil {
		jsonError(w, http.StatusNotFound, "employee not found")
		return
	}

	shift := timesheet.CalculateWorkHours(req.StartTime, req.EndTime)
	record, err := store.CreateWorkHours(r.Context(), h.DB, req.EmployeeID, req.Date, req.StartTime, req.EndTime, shift.TotalMinutes, shift.Overnight)
	if err != nil {
		slog.Error("failed to save work hours", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to save work hours")
		return
	}

	jsonResponse(w, http.StatusCreated, workHoursResponse{Record: record, Shift: shift})
}

// List handles GET /api/work-hours. Supports ?employee_id= and ?month=YYYY-MM.
func (h *WorkHoursHandler) List(w http.ResponseWriter, r *http.Request) {
	var employeeID int64
	if v := r.URL.Query().Get("employee_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "invalid employee_id")
			return
		}
		employeeID = id
	}

	records, err := store.ListWorkHours(r.Context(), h.DB, employeeID, r.URL.Query().Get("month"))
	if err != nil {
		slog.Error("failed to list work hours", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list work hours")
		return
	}
	if records == nil {
		records = []model.WorkHoursRecord{}
	}
	jsonResponse(w, http.StatusOK, records)
}

// Delete handles DELETE /api/work-hours/{id}.
func (h *WorkHoursHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid record id")
		return
	}

	if err := store.DeleteWorkHours(r.Context(), h.DB, id); err != nil {
		slog.Error("failed to delete work hours", "error", err)
		jsonError(w, http.StatusNotFound, "record not found")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "record deleted"})
}

// Options handles GET /api/work-hours/options. Returns the selectable
// shift times; defaults cover the whole day at half-hour steps.
func (h *WorkHoursHandler) Options(w http.ResponseWriter, r *http.Request) {
	first := r.URL.Query().Get("first")
	if first == "" {
		first = "00:00"
	}
	last := r.URL.Query().Get("last")
	if last == "" {
		last = "23:30"
	}
	step := 30
	if v := r.URL.Query().Get("step"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "invalid step")
			return
		}
		step = n
	}

	options := timesheet.TimeOptions(first, last, step)
	if options == nil {
		jsonError(w, http.StatusBadRequest, "invalid time bounds or step")
		return
	}
	jsonResponse(w, http.StatusOK, options)
}

// Payroll handles GET /api/work-hours/payroll. Requires ?month=YYYY-MM.
func (h *WorkHoursHandler) Payroll(w http.ResponseWriter, r *http.Request) {
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

	rows := report.BuildPayroll(employees, records)
	if rows == nil {
		rows = []report.PayrollRow{}
	}
	jsonResponse(w, http.StatusOK, rows)
}

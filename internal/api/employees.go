package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mwitek/magazyn/internal/model"
	"github.com/mwitek/magazyn/internal/store"
)

// EmployeesHandler handles employee roster endpoints.
type EmployeesHandler struct {
	DB *sql.DB
}

type employeeRequest struct {
	Code       string  `json:"code"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	HourlyRate float64 `json:"hourly_rate"`
}

func (req *employeeRequest) validate() string {
	switch {
	case req.Code == "":
		return "code required"
	case req.FirstName == "" || req.LastName == "":
		return "first and last name required"
	case req.HourlyRate < 0:
		return "hourly rate cannot be negative"
	}
	return ""
}

// List handles GET /api/employees.
func (h *EmployeesHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := store.ListEmployees(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list employees", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list employees")
		return
	}
	if employees == nil {
		employees = []model.Employee{}
	}
	jsonResponse(w, http.StatusOK, employees)
}

// Create handles POST /api/employees.
func (h *EmployeesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg := req.validate(); msg != "" {
		jsonError(w, http.StatusBadRequest, msg)
		return
	}

	employee, err := store.CreateEmployee(r.Context(), h.DB, req.Code, req.FirstName, req.LastName, req.HourlyRate)
	if err != nil {
		jsonError(w, http.StatusConflict, "employee code already exists")
		return
	}

	jsonResponse(w, http.StatusCreated, employee)
}

// Get handles GET /api/employees/{id}.
func (h *EmployeesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	employee, err := store.GetEmployee(r.Context(), h.DB, id)
	if err != nil {
		slog.Error("failed to get employee", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get employee")
		return
	}
	if employee == nil {
		jsonError(w, http.StatusNotFound, "employee not found")
		return
	}

	jsonResponse(w, http.StatusOK, employee)
}

// Update handles PUT /api/employees/{id}.
func (h *EmployeesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	var req employeeRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg := req.validate(); msg != "" {
		jsonError(w, http.StatusBadRequest, msg)
		return
	}

	if err := store.UpdateEmployee(r.Context(), h.DB, id, req.Code, req.FirstName, req.LastName, req.HourlyRate); err != nil {
		slog.Error("failed to update employee", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to update employee")
		return
	}

	employee, _ := store.GetEmployee(r.Context(), h.DB, id)
	jsonResponse(w, http.StatusOK, employee)
}

// Delete handles DELETE /api/employees/{id}.
func (h *EmployeesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	if err := store.DeleteEmployee(r.Context(), h.DB, id); err != nil {
		slog.Error("failed to delete employee", "error", err)
		jsonError(w, http.StatusNotFound, "employee not found")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "employee deleted"})
}

package api

import (
	"database/sql"
	"net/http"

	"github.com/mwitek/magazyn/internal/model"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	usersHandler := &UsersHandler{DB: db}
	employeesHandler := &EmployeesHandler{DB: db}
	productsHandler := &ProductsHandler{DB: db}
	stockHandler := &StockHandler{DB: db}
	salesHandler := &SalesHandler{DB: db}
	workHoursHandler := &WorkHoursHandler{DB: db}
	currencyHandler := &CurrencyHandler{DB: db}
	correctionsHandler := &CorrectionsHandler{DB: db}
	reportsHandler := &ReportsHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret, db)
	requireAdmin := RequireRole(model.RoleAdmin)
	requireManager := RequireRole(model.RoleManager)

	// Public: login.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated routes.
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	// Users (admin only).
	mux.Handle("GET /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.List))))
	mux.Handle("POST /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.Create))))
	mux.Handle("GET /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Get))))
	mux.Handle("PUT /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Update))))
	mux.Handle("PUT /api/users/{id}/password", authMW(requireAdmin(http.HandlerFunc(usersHandler.ResetPassword))))
	mux.Handle("DELETE /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Delete))))

	// Employees: read (all roles), write (manager+).
	mux.Handle("GET /api/employees", authMW(http.HandlerFunc(employeesHandler.List)))
	mux.Handle("POST /api/employees", authMW(requireManager(http.HandlerFunc(employeesHandler.Create))))
	mux.Handle("GET /api/employees/{id}", authMW(http.HandlerFunc(employeesHandler.Get)))
	mux.Handle("PUT /api/employees/{id}", authMW(requireManager(http.HandlerFunc(employeesHandler.Update))))
	mux.Handle("DELETE /api/employees/{id}", authMW(requireManager(http.HandlerFunc(employeesHandler.Delete))))

	// Products: read (all roles), write (manager+).
	mux.Handle("GET /api/products", authMW(http.HandlerFunc(productsHandler.List)))
	mux.Handle("POST /api/products", authMW(requireManager(http.HandlerFunc(productsHandler.Create))))
	mux.Handle("GET /api/products/{id}", authMW(http.HandlerFunc(productsHandler.Get)))
	mux.Handle("PUT /api/products/{id}", authMW(requireManager(http.HandlerFunc(productsHandler.Update))))
	mux.Handle("DELETE /api/products/{id}", authMW(requireManager(http.HandlerFunc(productsHandler.Delete))))
	mux.Handle("PUT /api/products/{id}/photo", authMW(requireManager(http.HandlerFunc(productsHandler.UploadPhoto))))
	mux.Handle("GET /api/products/{id}/photo", authMW(http.HandlerFunc(productsHandler.GetPhoto)))

	// Stock: read (all), write (manager+).
	mux.Handle("GET /api/stock", authMW(http.HandlerFunc(stockHandler.List)))
	mux.Handle("POST /api/stock", authMW(requireManager(http.HandlerFunc(stockHandler.Add))))
	mux.Handle("POST /api/stock/adjust", authMW(requireManager(http.HandlerFunc(stockHandler.Adjust))))

	// Sales (all roles).
	mux.Handle("POST /api/sales", authMW(http.HandlerFunc(salesHandler.Create)))
	mux.Handle("GET /api/sales", authMW(http.HandlerFunc(salesHandler.List)))

	// Work hours: recording (all roles), payroll (manager+).
	mux.Handle("POST /api/work-hours", authMW(http.HandlerFunc(workHoursHandler.Create)))
	mux.Handle("GET /api/work-hours", authMW(http.HandlerFunc(workHoursHandler.List)))
	mux.Handle("GET /api/work-hours/options", authMW(http.HandlerFunc(workHoursHandler.Options)))
	mux.Handle("GET /api/work-hours/payroll", authMW(requireManager(http.HandlerFunc(workHoursHandler.Payroll))))
	mux.Handle("DELETE /api/work-hours/{id}", authMW(requireManager(http.HandlerFunc(workHoursHandler.Delete))))

	// Currency: rates read and conversion (all roles), rate updates (manager+).
	mux.Handle("GET /api/currency/rates", authMW(http.HandlerFunc(currencyHandler.ListRates)))
	mux.Handle("PUT /api/currency/rates", authMW(requireManager(http.HandlerFunc(currencyHandler.ReplaceRates))))
	mux.Handle("POST /api/currency/convert", authMW(http.HandlerFunc(currencyHandler.Convert)))

	// Corrections: scanning and review (all roles), status changes (manager+).
	mux.Handle("POST /api/corrections", authMW(http.HandlerFunc(correctionsHandler.Create)))
	mux.Handle("GET /api/corrections", authMW(http.HandlerFunc(correctionsHandler.List)))
	mux.Handle("GET /api/corrections/{id}", authMW(http.HandlerFunc(correctionsHandler.Get)))
	mux.Handle("PUT /api/corrections/{id}/status", authMW(requireManager(http.HandlerFunc(correctionsHandler.SetStatus))))

	// Reports (manager+).
	mux.Handle("GET /api/reports/payroll", authMW(requireManager(http.HandlerFunc(reportsHandler.Payroll))))
	mux.Handle("GET /api/reports/corrections/{id}", authMW(requireManager(http.HandlerFunc(reportsHandler.Correction))))

	return mux
}

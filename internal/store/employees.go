package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mwitek/magazyn/internal/model"
)

// CreateEmployee creates a new payroll employee.
func CreateEmployee(ctx context.Context, db *sql.DB, code, firstName, lastName string, hourlyRate float64) (*model.Employee, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO employees (code, first_name, last_name, hourly_rate) VALUES (?, ?, ?, ?)`,
		code, firstName, lastName, hourlyRate,
	)
	if err != nil {
		return nil, fmt.Errorf("creating employee: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting employee id: %w", err)
	}

	return GetEmployee(ctx, db, id)
}

// GetEmployee returns an employee by ID.
func GetEmployee(ctx context.Context, db *sql.DB, id int64) (*model.Employee, error) {
	e := &model.Employee{}
	err := db.QueryRowContext(ctx,
		`SELECT id, code, first_name, last_name, hourly_rate, created_at, deleted_at
		 FROM employees WHERE id = ?`, id,
	).Scan(&e.ID, &e.Code, &e.FirstName, &e.LastName, &e.HourlyRate, &e.CreatedAt, &e.DeletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting employee: %w", err)
	}
	return e, nil
}

// ListEmployees returns all non-deleted employees.
func ListEmployees(ctx context.Context, db *sql.DB) ([]model.Employee, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, code, first_name, last_name, hourly_rate, created_at, deleted_at
		 FROM employees WHERE deleted_at IS NULL ORDER BY last_name, first_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	defer rows.Close()

	var employees []model.Employee
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.Code, &e.FirstName, &e.LastName, &e.HourlyRate, &e.CreatedAt, &e.DeletedAt); err != nil {
			return nil, fmt.Errorf("scanning employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// UpdateEmployee updates an employee's details.
func UpdateEmployee(ctx context.Context, db *sql.DB, id int64, code, firstName, lastName string, hourlyRate float64) error {
	_, err := db.ExecContext(ctx,
		`UPDATE employees SET code = ?, first_name = ?, last_name = ?, hourly_rate = ?
		 WHERE id = ? AND deleted_at IS NULL`,
		code, firstName, lastName, hourlyRate, id,
	)
	if err != nil {
		return fmt.Errorf("updating employee: %w", err)
	}
	return nil
}

// DeleteEmployee soft-deletes an employee. Work-hours history is kept.
func DeleteEmployee(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx,
		`UPDATE employees SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("deleting employee: %w", err)
	}
	return nil
}

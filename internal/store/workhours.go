package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mwitek/magazyn/internal/model"
)

// CreateWorkHours stores a validated single-day work-hours entry. The
// (employee, date) pair is unique; re-submitting the same day replaces the
// previous entry.
func CreateWorkHours(ctx context.Context, db *sql.DB, employeeID int64, date, startTime, endTime string, minutes int, overnight bool) (*model.WorkHoursRecord, error) {
	_, err := db.ExecContext(ctx,
		`INSERT INTO work_hours (employee_id, date, start_time, end_time, minutes, overnight)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (employee_id, date) DO UPDATE SET
		     start_time = excluded.start_time,
		     end_time = excluded.end_time,
		     minutes = excluded.minutes,
		     overnight = excluded.overnight`,
		employeeID, date, startTime, endTime, minutes, overnight,
	)
	if err != nil {
		return nil, fmt.Errorf("creating work hours: %w", err)
	}

	// On an upsert the last insert id is unreliable; fetch by the unique
	// (employee, date) pair instead.
	var id int64
	err = db.QueryRowContext(ctx,
		`SELECT id FROM work_hours WHERE employee_id = ? AND date = ?`,
		employeeID, date,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("getting work hours id: %w", err)
	}

	return GetWorkHours(ctx, db, id)
}

// GetWorkHours returns a work-hours record by ID.
func GetWorkHours(ctx context.Context, db *sql.DB, id int64) (*model.WorkHoursRecord, error) {
	rec := &model.WorkHoursRecord{}
	err := db.QueryRowContext(ctx,
		`SELECT id, employee_id, date, start_time, end_time, minutes, overnight, created_at
		 FROM work_hours WHERE id = ?`, id,
	).Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &rec.StartTime, &rec.EndTime, &rec.Minutes, &rec.Overnight, &rec.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting work hours: %w", err)
	}
	return rec, nil
}

// ListWorkHours returns work-hours records for an employee, optionally
// limited to a month given as "YYYY-MM". Employee 0 lists all employees.
func ListWorkHours(ctx context.Context, db *sql.DB, employeeID int64, month string) ([]model.WorkHoursRecord, error) {
	query := `SELECT w.id, w.employee_id, w.date, w.start_time, w.end_time, w.minutes, w.overnight, w.created_at,
	                 e.first_name || ' ' || e.last_name
	          FROM work_hours w
	          JOIN employees e ON e.id = w.employee_id`
	var conds []string
	var args []any
	if employeeID > 0 {
		conds = append(conds, "w.employee_id = ?")
		args = append(args, employeeID)
	}
	if month != "" {
		conds = append(conds, "w.date LIKE ?")
		args = append(args, month+"%")
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY w.date, e.last_name"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing work hours: %w", err)
	}
	defer rows.Close()

	var records []model.WorkHoursRecord
	for rows.Next() {
		var rec model.WorkHoursRecord
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &rec.StartTime, &rec.EndTime,
			&rec.Minutes, &rec.Overnight, &rec.CreatedAt, &rec.EmployeeName); err != nil {
			return nil, fmt.Errorf("scanning work hours: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// DeleteWorkHours removes a work-hours record.
func DeleteWorkHours(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx, `DELETE FROM work_hours WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting work hours: %w", err)
	}
	return nil
}

package model

import "time"

// Employee represents a payroll employee. Employees are not backend accounts;
// they only exist for work-hours records and payroll reports.
type Employee struct {
	ID         int64      `json:"id"`
	Code       string     `json:"code"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	HourlyRate float64    `json:"hourly_rate"`
	CreatedAt  time.Time  `json:"created_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}

// WorkHoursRecord is a persisted single-day work-hours entry.
type WorkHoursRecord struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Minutes    int       `json:"minutes"`
	Overnight  bool      `json:"overnight"`
	CreatedAt  time.Time `json:"created_at"`

	// Joined fields (not always populated).
	EmployeeName string `json:"employee_name,omitempty"`
}

package store

import (
	"context"
	"testing"

	"github.com/mwitek/magazyn/internal/db"
)

func TestCreateAndListWorkHours(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	emp, _ := CreateEmployee(ctx, database, "E001", "Anna", "Kowalska", 30)

	rec, err := CreateWorkHours(ctx, database, emp.ID, "2024-01-15", "08:00", "16:00", 480, false)
	if err != nil {
		t.Fatalf("CreateWorkHours: %v", err)
	}
	if rec.Minutes != 480 || rec.Overnight {
		t.Errorf("unexpected record: %+v", rec)
	}

	records, err := ListWorkHours(ctx, database, emp.ID, "2024-01")
	if err != nil {
		t.Fatalf("ListWorkHours: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].EmployeeName != "Anna Kowalska" {
		t.Errorf("expected joined employee name, got %q", records[0].EmployeeName)
	}
}

func TestCreateWorkHoursReplacesSameDay(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	emp, _ := CreateEmployee(ctx, database, "E001", "Anna", "Kowalska", 30)

	CreateWorkHours(ctx, database, emp.ID, "2024-01-15", "08:00", "16:00", 480, false)
	rec, err := CreateWorkHours(ctx, database, emp.ID, "2024-01-15", "09:00", "17:00", 480, false)
	if err != nil {
		t.Fatalf("CreateWorkHours (replace): %v", err)
	}
	if rec.StartTime != "09:00" {
		t.Errorf("expected replaced start time 09:00, got %q", rec.StartTime)
	}

	records, _ := ListWorkHours(ctx, database, emp.ID, "")
	if len(records) != 1 {
		t.Errorf("expected 1 record after replacement, got %d", len(records))
	}
}

func TestListWorkHoursMonthFilter(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	emp, _ := CreateEmployee(ctx, database, "E001", "Anna", "Kowalska", 30)
	CreateWorkHours(ctx, database, emp.ID, "2024-01-15", "08:00", "16:00", 480, false)
	CreateWorkHours(ctx, database, emp.ID, "2024-02-01", "22:00", "06:00", 480, true)

	january, _ := ListWorkHours(ctx, database, emp.ID, "2024-01")
	if len(january) != 1 || january[0].Date != "2024-01-15" {
		t.Errorf("month filter failed: %+v", january)
	}

	all, _ := ListWorkHours(ctx, database, 0, "")
	if len(all) != 2 {
		t.Errorf("expected 2 records without filters, got %d", len(all))
	}

	february, _ := ListWorkHours(ctx, database, emp.ID, "2024-02")
	if len(february) != 1 || !february[0].Overnight {
		t.Errorf("expected one overnight record in february: %+v", february)
	}
}

func TestDeleteWorkHours(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	emp, _ := CreateEmployee(ctx, database, "E001", "Anna", "Kowalska", 30)
	rec, _ := CreateWorkHours(ctx, database, emp.ID, "2024-01-15", "08:00", "16:00", 480, false)

	if err := DeleteWorkHours(ctx, database, rec.ID); err != nil {
		t.Fatalf("DeleteWorkHours: %v", err)
	}

	records, _ := ListWorkHours(ctx, database, emp.ID, "")
	if len(records) != 0 {
		t.Errorf("expected 0 records after delete, got %d", len(records))
	}
}

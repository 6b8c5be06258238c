// Package report builds XLSX exports for payroll and stock corrections.
package report

import (
	"fmt"
	"math"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/mwitek/magazyn/internal/model"
	"github.com/mwitek/magazyn/internal/timesheet"
)

// PayrollRow is one employee's monthly summary.
type PayrollRow struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Days       int     `json:"days"`
	TotalHours float64 `json:"total_hours"`
	HourlyRate float64 `json:"hourly_rate"`
	Pay        float64 `json:"pay"`
}

// BuildPayroll aggregates work hour records into per-employee monthly rows.
// Records for employees missing from the employee list are skipped.
func BuildPayroll(employees []model.Employee, records []model.WorkHoursRecord) []PayrollRow {
	byID := make(map[int64]model.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	type acc struct {
		days    int
		minutes int
		pay     float64
	}
	totals := make(map[int64]*acc)

	for _, rec := range records {
		emp, ok := byID[rec.EmployeeID]
		if !ok {
			continue
		}
		a := totals[rec.EmployeeID]
		if a == nil {
			a = &acc{}
			totals[rec.EmployeeID] = a
		}
		a.days++
		a.minutes += rec.Minutes
		a.pay += timesheet.DailyPay(rec.StartTime, rec.EndTime, emp.HourlyRate)
	}

	rows := make([]PayrollRow, 0, len(totals))
	for id, a := range totals {
		emp := byID[id]
		rows = append(rows, PayrollRow{
			Code:       emp.Code,
			Name:       emp.FirstName + " " + emp.LastName,
			Days:       a.days,
			TotalHours: round2(float64(a.minutes) / 60),
			HourlyRate: emp.HourlyRate,
			Pay:        round2(a.pay),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

// PayrollWorkbook writes the monthly payroll into an XLSX file with a
// summary sheet and a per-shift detail sheet.
func PayrollWorkbook(month string, employees []model.Employee, records []model.WorkHoursRecord) (*excelize.File, error) {
	f := excelize.NewFile()

	summary := "Payroll " + month
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	header, err := headerStyle(f)
	if err != nil {
		return nil, err
	}

	for col, title := range []string{"Code", "Employee", "Days", "Hours", "Rate", "Pay"} {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(summary, cell, title)
		f.SetCellStyle(summary, cell, cell, header)
	}
	f.SetColWidth(summary, "B", "B", 28)

	rows := BuildPayroll(employees, records)
	for i, row := range rows {
		r := i + 2
		f.SetCellValue(summary, fmt.Sprintf("A%d", r), row.Code)
		f.SetCellValue(summary, fmt.Sprintf("B%d", r), row.Name)
		f.SetCellValue(summary, fmt.Sprintf("C%d", r), row.Days)
		f.SetCellValue(summary, fmt.Sprintf("D%d", r), row.TotalHours)
		f.SetCellValue(summary, fmt.Sprintf("E%d", r), row.HourlyRate)
		f.SetCellValue(summary, fmt.Sprintf("F%d", r), row.Pay)
	}

	detail := "Shifts"
	if _, err := f.NewSheet(detail); err != nil {
		return nil, fmt.Errorf("adding detail sheet: %w", err)
	}
	for col, title := range []string{"Date", "Employee", "Start", "End", "Hours", "Overnight"} {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(detail, cell, title)
		f.SetCellStyle(detail, cell, cell, header)
	}
	f.SetColWidth(detail, "B", "B", 28)

	for i, rec := range records {
		r := i + 2
		f.SetCellValue(detail, fmt.Sprintf("A%d", r), rec.Date)
		f.SetCellValue(detail, fmt.Sprintf("B%d", r), rec.EmployeeName)
		f.SetCellValue(detail, fmt.Sprintf("C%d", r), rec.StartTime)
		f.SetCellValue(detail, fmt.Sprintf("D%d", r), rec.EndTime)
		f.SetCellValue(detail, fmt.Sprintf("E%d", r), round2(float64(rec.Minutes)/60))
		if rec.Overnight {
			f.SetCellValue(detail, fmt.Sprintf("F%d", r), "yes")
		}
	}

	return f, nil
}

// CorrectionWorkbook writes a correction session into an XLSX file, one
// sheet per item class so write-off candidates are easy to review.
func CorrectionWorkbook(c *model.Correction) (*excelize.File, error) {
	f := excelize.NewFile()

	overview := "Correction"
	if err := f.SetSheetName("Sheet1", overview); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	header, err := headerStyle(f)
	if err != nil {
		return nil, err
	}

	f.SetCellValue(overview, "A1", "Session")
	f.SetCellValue(overview, "B1", c.ID)
	f.SetCellValue(overview, "A2", "Status")
	f.SetCellValue(overview, "B2", c.Status)
	f.SetCellValue(overview, "A3", "Created")
	f.SetCellValue(overview, "B3", c.CreatedAt.Format("2006-01-02 15:04"))
	f.SetColWidth(overview, "B", "B", 40)

	classes := []struct {
		class string
		sheet string
	}{
		{model.CorrectionClassMatched, "Matched"},
		{model.CorrectionClassMissing, "Missing"},
		{model.CorrectionClassDuplicate, "Duplicates"},
		{model.CorrectionClassUnscanned, "Write-offs"},
	}

	counts := make(map[string]int)
	for _, cl := range classes {
		if _, err := f.NewSheet(cl.sheet); err != nil {
			return nil, fmt.Errorf("adding sheet %s: %w", cl.sheet, err)
		}
		for col, title := range []string{"Barcode", "Name", "Size", "Symbol", "Count", "Value"} {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			f.SetCellValue(cl.sheet, cell, title)
			f.SetCellStyle(cl.sheet, cell, cell, header)
		}
		f.SetColWidth(cl.sheet, "B", "B", 32)

		r := 2
		for _, item := range c.Items {
			if item.Class != cl.class {
				continue
			}
			f.SetCellValue(cl.sheet, fmt.Sprintf("A%d", r), item.Barcode)
			f.SetCellValue(cl.sheet, fmt.Sprintf("B%d", r), item.Name)
			f.SetCellValue(cl.sheet, fmt.Sprintf("C%d", r), item.Size)
			f.SetCellValue(cl.sheet, fmt.Sprintf("D%d", r), item.Symbol)
			f.SetCellValue(cl.sheet, fmt.Sprintf("E%d", r), item.Matches)
			if item.Value != 0 {
				f.SetCellValue(cl.sheet, fmt.Sprintf("F%d", r), item.Value)
			}
			r++
			counts[cl.class]++
		}
	}

	row := 5
	for _, cl := range classes {
		f.SetCellValue(overview, fmt.Sprintf("A%d", row), cl.sheet)
		f.SetCellValue(overview, fmt.Sprintf("B%d", row), counts[cl.class])
		row++
	}

	return f, nil
}

func headerStyle(f *excelize.File) (int, error) {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return 0, fmt.Errorf("creating header style: %w", err)
	}
	return style, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package timesheet

import (
	"math"
	"reflect"
	"testing"
)

func TestValidTimeFormat(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"00:00", true},
		{"09:30", true},
		{"23:59", true},
		{"12:00", true},
		// Single-digit hour must be zero-padded.
		{"8:00", false},
		{"9:5", false},
		// Out of range.
		{"24:00", false},
		{"12:60", false},
		{"99:99", false},
		// Wrong separators and shapes.
		{"12.30", false},
		{"12-30", false},
		{"1230", false},
		{"12:300", false},
		{" 12:30", false},
		{"12:30 ", false},
		{"", false},
		{"ab:cd", false},
	}

	for _, tt := range tests {
		if got := ValidTimeFormat(tt.value); got != tt.expected {
			t.Errorf("ValidTimeFormat(%q) = %v, want %v", tt.value, got, tt.expected)
		}
	}
}

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		value   string
		minutes int
		ok      bool
	}{
		{"00:00", 0, true},
		{"00:01", 1, true},
		{"01:00", 60, true},
		{"12:30", 750, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"8:00", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		minutes, ok := ParseMinutes(tt.value)
		if minutes != tt.minutes || ok != tt.ok {
			t.Errorf("ParseMinutes(%q) = (%d, %v), want (%d, %v)", tt.value, minutes, ok, tt.minutes, tt.ok)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		s       string
		ok      bool
	}{
		{0, "00:00", true},
		{1, "00:01", true},
		{60, "01:00", true},
		{750, "12:30", true},
		{1439, "23:59", true},
		// A literal 24:00 does not exist.
		{1440, "", false},
		{-1, "", false},
		{100000, "", false},
	}

	for _, tt := range tests {
		s, ok := FormatMinutes(tt.minutes)
		if s != tt.s || ok != tt.ok {
			t.Errorf("FormatMinutes(%d) = (%q, %v), want (%q, %v)", tt.minutes, s, ok, tt.s, tt.ok)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for m := 0; m < 24*60; m++ {
		s, ok := FormatMinutes(m)
		if !ok {
			t.Fatalf("FormatMinutes(%d) not ok", m)
		}
		back, ok := ParseMinutes(s)
		if !ok || back != m {
			t.Fatalf("ParseMinutes(FormatMinutes(%d)) = (%d, %v)", m, back, ok)
		}
	}
}

func TestCalculateWorkHoursSameDay(t *testing.T) {
	shift := CalculateWorkHours("08:00", "16:30")
	if shift.Err != "" {
		t.Fatalf("unexpected error: %q", shift.Err)
	}
	if shift.TotalMinutes != 510 {
		t.Errorf("expected 510 minutes, got %d", shift.TotalMinutes)
	}
	if shift.TotalHours != 8.5 {
		t.Errorf("expected 8.5 hours, got %v", shift.TotalHours)
	}
	if shift.Overnight {
		t.Error("same-day shift reported as overnight")
	}
}

func TestCalculateWorkHoursOvernight(t *testing.T) {
	shift := CalculateWorkHours("22:00", "06:00")
	if shift.Err != "" {
		t.Fatalf("unexpected error: %q", shift.Err)
	}
	if shift.TotalMinutes != 480 || shift.TotalHours != 8 {
		t.Errorf("expected 480 minutes / 8 hours, got %d / %v", shift.TotalMinutes, shift.TotalHours)
	}
	if !shift.Overnight {
		t.Error("expected overnight shift")
	}

	// 20:00-02:00 is a valid 6-hour overnight shift.
	shift = CalculateWorkHours("20:00", "02:00")
	if shift.Err != "" || shift.TotalHours != 6 || !shift.Overnight {
		t.Errorf("CalculateWorkHours(20:00, 02:00) = %+v, want 6h overnight", shift)
	}
}

func TestCalculateWorkHoursSwappedEntry(t *testing.T) {
	// 16:00-08:00 as an overnight shift would be 16 hours, past the 12-hour
	// threshold, so it is a swapped start/end entry.
	shift := CalculateWorkHours("16:00", "08:00")
	if shift.Err != MsgEndBeforeStart {
		t.Errorf("expected %q, got %q", MsgEndBeforeStart, shift.Err)
	}
	if shift.TotalHours != 0 || shift.TotalMinutes != 0 {
		t.Errorf("error result must carry zero totals, got %+v", shift)
	}

	// Exactly 12 hours across midnight is still a valid overnight shift.
	shift = CalculateWorkHours("19:00", "07:00")
	if shift.Err != "" || shift.TotalHours != 12 || !shift.Overnight {
		t.Errorf("CalculateWorkHours(19:00, 07:00) = %+v, want 12h overnight", shift)
	}
}

func TestCalculateWorkHoursInvalidInput(t *testing.T) {
	tests := []struct{ start, end string }{
		{"8:00", "16:00"},
		{"08:00", "24:00"},
		{"", "16:00"},
		{"08:00", ""},
		{"abcde", "16:00"},
	}

	for _, tt := range tests {
		shift := CalculateWorkHours(tt.start, tt.end)
		if shift.Err != MsgInvalidTimeFormat {
			t.Errorf("CalculateWorkHours(%q, %q) error = %q, want %q", tt.start, tt.end, shift.Err, MsgInvalidTimeFormat)
		}
		if shift.TotalHours != 0 || shift.TotalMinutes != 0 || shift.Overnight {
			t.Errorf("CalculateWorkHours(%q, %q) = %+v, want zero result", tt.start, tt.end, shift)
		}
	}
}

func TestCalculateWorkHoursEqualTimes(t *testing.T) {
	shift := CalculateWorkHours("09:00", "09:00")
	if shift.Err != "" {
		t.Fatalf("unexpected error: %q", shift.Err)
	}
	if shift.TotalMinutes != 0 || shift.TotalHours != 0 || shift.Overnight {
		t.Errorf("expected zero-length same-day shift, got %+v", shift)
	}
}

func TestCalculateWorkHoursMatchesParsedDifference(t *testing.T) {
	pairs := [][2]string{
		{"00:00", "00:00"},
		{"00:00", "23:59"},
		{"06:15", "14:45"},
		{"09:00", "17:00"},
		{"13:30", "13:31"},
	}

	for _, p := range pairs {
		start, _ := ParseMinutes(p[0])
		end, _ := ParseMinutes(p[1])
		shift := CalculateWorkHours(p[0], p[1])
		if shift.Err != "" {
			t.Fatalf("CalculateWorkHours(%q, %q): %q", p[0], p[1], shift.Err)
		}
		if shift.TotalMinutes != end-start {
			t.Errorf("CalculateWorkHours(%q, %q) = %d minutes, want %d", p[0], p[1], shift.TotalMinutes, end-start)
		}
		if shift.Overnight {
			t.Errorf("CalculateWorkHours(%q, %q) reported overnight", p[0], p[1])
		}
	}
}

func TestWithinWorkHours(t *testing.T) {
	tests := []struct {
		check, start, end string
		expected          bool
	}{
		// Same-day window, boundaries inclusive.
		{"12:00", "09:00", "17:00", true},
		{"09:00", "09:00", "17:00", true},
		{"17:00", "09:00", "17:00", true},
		{"08:59", "09:00", "17:00", false},
		{"17:01", "09:00", "17:00", false},
		// Overnight window wraps past midnight.
		{"23:00", "22:00", "06:00", true},
		{"02:00", "22:00", "06:00", true},
		{"22:00", "22:00", "06:00", true},
		{"06:00", "22:00", "06:00", true},
		{"12:00", "22:00", "06:00", false},
		{"21:59", "22:00", "06:00", false},
		// Unparsable input is never inside.
		{"9:00", "09:00", "17:00", false},
		{"12:00", "bad", "17:00", false},
		{"12:00", "09:00", "", false},
	}

	for _, tt := range tests {
		got := WithinWorkHours(tt.check, tt.start, tt.end)
		if got != tt.expected {
			t.Errorf("WithinWorkHours(%q, %q, %q) = %v, want %v", tt.check, tt.start, tt.end, got, tt.expected)
		}
	}
}

func TestValidateRecordNil(t *testing.T) {
	v := ValidateRecord(nil)
	if v.Valid {
		t.Error("nil record reported valid")
	}
	if !reflect.DeepEqual(v.Errors, []string{MsgRecordRequired}) {
		t.Errorf("expected single %q error, got %v", MsgRecordRequired, v.Errors)
	}
}

func TestValidateRecordAccumulatesErrors(t *testing.T) {
	v := ValidateRecord(&Record{})
	want := []string{MsgEmployeeIDRequired, MsgDateRequired, MsgStartTimeFormat, MsgEndTimeFormat}
	if !reflect.DeepEqual(v.Errors, want) {
		t.Errorf("expected %v, got %v", want, v.Errors)
	}
}

func TestValidateRecord(t *testing.T) {
	tests := []struct {
		name    string
		rec     Record
		wantErr string
	}{
		{
			"valid",
			Record{EmployeeID: "E1", Date: "2024-01-15", StartTime: "08:00", EndTime: "16:00"},
			"",
		},
		{
			"valid overnight",
			Record{EmployeeID: "E1", Date: "2024-01-15", StartTime: "22:00", EndTime: "06:00"},
			"",
		},
		{
			"too long",
			Record{EmployeeID: "E", Date: "2024-01-15", StartTime: "06:00", EndTime: "23:00"},
			MsgExceedsDailyLimit,
		},
		{
			"too short",
			Record{EmployeeID: "E", Date: "2024-01-15", StartTime: "08:00", EndTime: "08:30"},
			MsgBelowDailyMinimum,
		},
		{
			"swapped times",
			Record{EmployeeID: "E", Date: "2024-01-15", StartTime: "16:00", EndTime: "08:00"},
			MsgEndBeforeStart,
		},
		{
			"bad start format",
			Record{EmployeeID: "E", Date: "2024-01-15", StartTime: "8:00", EndTime: "16:00"},
			MsgStartTimeFormat,
		},
		{
			"missing employee",
			Record{Date: "2024-01-15", StartTime: "08:00", EndTime: "16:00"},
			MsgEmployeeIDRequired,
		},
		{
			"missing date",
			Record{EmployeeID: "E", StartTime: "08:00", EndTime: "16:00"},
			MsgDateRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidateRecord(&tt.rec)
			if tt.wantErr == "" {
				if !v.Valid || len(v.Errors) != 0 {
					t.Errorf("expected valid, got %v", v.Errors)
				}
				return
			}
			if v.Valid {
				t.Fatal("expected invalid record")
			}
			found := false
			for _, e := range v.Errors {
				if e == tt.wantErr {
					found = true
				}
			}
			if !found {
				t.Errorf("expected %q in %v", tt.wantErr, v.Errors)
			}
		})
	}
}

func TestDailyPay(t *testing.T) {
	tests := []struct {
		start, end string
		rate       float64
		expected   float64
	}{
		{"08:00", "16:00", 30, 240},
		{"22:00", "06:00", 25, 200},
		{"08:00", "16:30", 20, 170},
		// Errors and non-positive rates pay nothing.
		{"16:00", "08:00", 30, 0},
		{"8:00", "16:00", 30, 0},
		{"08:00", "16:00", 0, 0},
		{"08:00", "16:00", -5, 0},
	}

	for _, tt := range tests {
		got := DailyPay(tt.start, tt.end, tt.rate)
		if math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("DailyPay(%q, %q, %v) = %v, want %v", tt.start, tt.end, tt.rate, got, tt.expected)
		}
	}
}

func TestTimeOptions(t *testing.T) {
	got := TimeOptions("06:00", "07:00", 15)
	want := []string{"06:00", "06:15", "06:30", "06:45", "07:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TimeOptions(06:00, 07:00, 15) = %v, want %v", got, want)
	}

	full := TimeOptions("00:00", "23:45", 15)
	if len(full) != 96 {
		t.Errorf("expected 96 quarter-hour options, got %d", len(full))
	}
	if full[0] != "00:00" || full[len(full)-1] != "23:45" {
		t.Errorf("unexpected bounds: %q .. %q", full[0], full[len(full)-1])
	}

	half := TimeOptions("06:00", "22:30", 30)
	if len(half) != 34 {
		t.Errorf("expected 34 half-hour options, got %d", len(half))
	}

	// Generation is stateless: a second call yields the same slice.
	again := TimeOptions("06:00", "22:30", 30)
	if !reflect.DeepEqual(half, again) {
		t.Error("TimeOptions is not deterministic")
	}

	if TimeOptions("6:00", "07:00", 15) != nil {
		t.Error("expected nil for invalid first bound")
	}
	if TimeOptions("06:00", "24:00", 15) != nil {
		t.Error("expected nil for invalid last bound")
	}
	if TimeOptions("08:00", "07:00", 15) != nil {
		t.Error("expected nil for reversed bounds")
	}
	if TimeOptions("06:00", "07:00", 0) != nil {
		t.Error("expected nil for zero step")
	}
}

// Package timesheet implements work-hours validation and calculation for
// payroll records. All functions are pure: bad input is reported through
// result fields and sentinel returns, never through panics.
package timesheet

import (
	"fmt"
	"regexp"
)

const (
	minutesPerDay = 24 * 60

	// maxOvernightMinutes disambiguates a swapped start/end entry from a
	// genuine overnight shift: anything longer than 12 hours across midnight
	// is treated as a data-entry error. Fixed business constant.
	maxOvernightMinutes = 12 * 60

	maxDailyHours = 16
	minDailyHours = 1
)

// User-facing validation and calculation messages. The mobile clients display
// these verbatim, so the exact text is part of the contract.
const (
	MsgInvalidTimeFormat  = "Invalid time format"
	MsgExceeds24Hours     = "Work hours exceed 24 hours"
	MsgEndBeforeStart     = "End time cannot be before start time"
	MsgRecordRequired     = "Work hours data is required"
	MsgEmployeeIDRequired = "Employee ID is required"
	MsgDateRequired       = "Date is required"
	MsgStartTimeFormat    = "Start time must be in HH:MM format"
	MsgEndTimeFormat      = "End time must be in HH:MM format"
	MsgExceedsDailyLimit  = "Work hours cannot exceed 16 hours per day"
	MsgBelowDailyMinimum  = "Work hours must be at least 1 hour"
)

var timeFormat = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidTimeFormat reports whether s is a zero-padded HH:MM wall-clock time
// with hours 00-23 and minutes 00-59.
func ValidTimeFormat(s string) bool {
	return timeFormat.MatchString(s)
}

// ParseMinutes converts an HH:MM string to minutes since midnight.
// ok is false for anything ValidTimeFormat rejects.
func ParseMinutes(s string) (minutes int, ok bool) {
	if !ValidTimeFormat(s) {
		return 0, false
	}
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	mins := int(s[3]-'0')*10 + int(s[4]-'0')
	return hours*60 + mins, true
}

// FormatMinutes converts minutes since midnight back to an HH:MM string.
// ok is false outside [0, 1439]; a literal "24:00" is never produced.
func FormatMinutes(minutes int) (s string, ok bool) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60), true
}

// Shift is the result of a work-hours calculation. A non-empty Err means the
// calculation failed and the numeric fields are zero.
type Shift struct {
	TotalHours   float64 `json:"total_hours"`
	TotalMinutes int     `json:"total_minutes"`
	Overnight    bool    `json:"is_overnight_shift"`
	Err          string  `json:"error,omitempty"`
}

// CalculateWorkHours computes the elapsed duration of a shift. A shift whose
// end is numerically before its start is treated as crossing midnight, but
// only up to maxOvernightMinutes: longer wraps are reported as swapped entry
// errors. Equal start and end is a valid zero-length shift.
func CalculateWorkHours(start, end string) Shift {
	startMin, okStart := ParseMinutes(start)
	endMin, okEnd := ParseMinutes(end)
	if !okStart || !okEnd {
		return Shift{Err: MsgInvalidTimeFormat}
	}

	var total int
	overnight := false
	if endMin >= startMin {
		total = endMin - startMin
	} else {
		total = minutesPerDay - startMin + endMin
		overnight = true
	}

	if total > minutesPerDay {
		// Unreachable with valid parses, kept as an explicit guard.
		return Shift{Err: MsgExceeds24Hours}
	}
	if overnight && total > maxOvernightMinutes {
		return Shift{Err: MsgEndBeforeStart}
	}

	return Shift{
		TotalHours:   float64(total) / 60,
		TotalMinutes: total,
		Overnight:    overnight,
	}
}

// WithinWorkHours reports whether the check time falls inside the shift
// window, boundaries inclusive. Overnight windows wrap past midnight, so the
// check matches when it is after the start or before the end. Any unparsable
// argument yields false.
func WithinWorkHours(check, start, end string) bool {
	checkMin, okCheck := ParseMinutes(check)
	startMin, okStart := ParseMinutes(start)
	endMin, okEnd := ParseMinutes(end)
	if !okCheck || !okStart || !okEnd {
		return false
	}

	if endMin >= startMin {
		return checkMin >= startMin && checkMin <= endMin
	}
	return checkMin >= startMin || checkMin <= endMin
}

// Record is a work-hours entry as submitted by a client, before persistence.
type Record struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

// Validation is the outcome of validating a Record. Errors accumulates every
// failed rule so a form can show all problems at once.
type Validation struct {
	Valid  bool     `json:"is_valid"`
	Errors []string `json:"errors"`
}

// ValidateRecord checks a record against all business rules. A nil record
// short-circuits with a single error; otherwise every rule is checked
// independently and the calculation error (if any) is propagated verbatim.
func ValidateRecord(rec *Record) Validation {
	if rec == nil {
		return Validation{Errors: []string{MsgRecordRequired}}
	}

	var errs []string
	if rec.EmployeeID == "" {
		errs = append(errs, MsgEmployeeIDRequired)
	}
	if rec.Date == "" {
		errs = append(errs, MsgDateRequired)
	}

	startOK := ValidTimeFormat(rec.StartTime)
	endOK := ValidTimeFormat(rec.EndTime)
	if !startOK {
		errs = append(errs, MsgStartTimeFormat)
	}
	if !endOK {
		errs = append(errs, MsgEndTimeFormat)
	}

	if startOK && endOK {
		shift := CalculateWorkHours(rec.StartTime, rec.EndTime)
		switch {
		case shift.Err != "":
			errs = append(errs, shift.Err)
		case shift.TotalHours > maxDailyHours:
			errs = append(errs, MsgExceedsDailyLimit)
		case shift.TotalHours < minDailyHours:
			errs = append(errs, MsgBelowDailyMinimum)
		}
	}

	return Validation{Valid: len(errs) == 0, Errors: errs}
}

// DailyPay returns the pay for one shift at the given hourly rate. Returns 0
// when the shift does not calculate or the rate is not positive. No rounding
// is applied; callers decide how to round money.
func DailyPay(start, end string, hourlyRate float64) float64 {
	if hourlyRate <= 0 {
		return 0
	}
	shift := CalculateWorkHours(start, end)
	if shift.Err != "" {
		return 0
	}
	return shift.TotalHours * hourlyRate
}

// TimeOptions generates the time strings from first to last (inclusive) at
// step-minute intervals, for populating selection lists. Returns nil when the
// bounds are invalid, out of order, or the step is not positive.
func TimeOptions(first, last string, step int) []string {
	firstMin, okFirst := ParseMinutes(first)
	lastMin, okLast := ParseMinutes(last)
	if !okFirst || !okLast || step <= 0 || lastMin < firstMin {
		return nil
	}

	var options []string
	for m := firstMin; m <= lastMin; m += step {
		s, _ := FormatMinutes(m)
		options = append(options, s)
	}
	return options
}

// Package dateutil provides date parsing and validation utilities.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Layouts used for user input and display.
const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// Validation errors.
var (
	ErrInvalidDateFormat  = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidMonthFormat = errors.New("month must be in YYYY-MM format")
	ErrInvalidWeekday     = errors.New("invalid weekday")
	ErrEndDateBeforeStart = errors.New("end date must be on or after start date")
)

// weekdayMap maps weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// DateRange represents a validated, complete date range.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange creates a new DateRange with validation.
// endDate can be empty (defaults to startDate).
func NewDateRange(startDate, endDate string) (*DateRange, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return nil, err
	}

	end := start
	if endDate != "" {
		end, err = ParseDate(endDate)
		if err != nil {
			return nil, err
		}
	}

	if end.Before(start) {
		return nil, ErrEndDateBeforeStart
	}

	return &DateRange{Start: start, End: end}, nil
}

// ParseDate parses a date string in YYYY-MM-DD format.
// If the string is empty, returns today's date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// ParseOptionalDate parses a YYYY-MM-DD date, returning nil for an empty
// string.
func ParseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseMonth parses a YYYY-MM string into the first day of that month.
// If the string is empty, returns the first day of the current month.
func ParseMonth(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(MonthLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidMonthFormat
	}
	return t, nil
}

// ParseWeekday parses a case-insensitive weekday name.
func ParseWeekday(s string) (time.Weekday, error) {
	d, ok := weekdayMap[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
	}
	return d, nil
}

// ParseWeekdays parses a list of weekday names.
func ParseWeekdays(names []string) ([]time.Weekday, error) {
	days := make([]time.Weekday, 0, len(names))
	for _, n := range names {
		d, err := ParseWeekday(n)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatRange renders an optional range as "start..end". Unset bounds are
// left empty; a single day renders as one date.
func FormatRange(start, end *time.Time) string {
	switch {
	case start == nil && end == nil:
		return ""
	case start != nil && end != nil && start.Equal(*end):
		return start.Format(DateLayout)
	}
	var b strings.Builder
	if start != nil {
		b.WriteString(start.Format(DateLayout))
	}
	b.WriteString("..")
	if end != nil {
		b.WriteString(end.Format(DateLayout))
	}
	return b.String()
}

// Days returns the number of days a range covers, counting both ends.
func (r DateRange) Days() int {
	start := time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(r.End.Year(), r.End.Month(), r.End.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours()/24) + 1
}

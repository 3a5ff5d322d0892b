// Package dateadapter defines the date capability set the calendar engine
// runs on, plus an implementation backed by time.Time.
//
// All calendar arithmetic in rangecal goes through an Adapter so that the
// engine stays independent of locale and calendar system.
package dateadapter

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Errors returned by the time-backed adapter.
var (
	ErrInvalidFirstDayOfWeek = errors.New("first day of week must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidDate           = errors.New("invalid date")
)

// NameStyle selects how month and weekday names are rendered.
type NameStyle int

const (
	NameLong NameStyle = iota
	NameShort
	NameNarrow
)

// Adapter is the date capability set consumed by the calendar engine.
// Months are 0-based (January == 0) and weekdays are 0-based from Sunday.
type Adapter interface {
	Today() time.Time
	CreateDate(year, month, day int) (time.Time, error)

	Year(d time.Time) int
	Month(d time.Time) int
	Date(d time.Time) int
	DayOfWeek(d time.Time) int
	FirstDayOfWeek() int
	NumDaysInMonth(d time.Time) int

	AddCalendarDays(d time.Time, days int) time.Time
	AddCalendarMonths(d time.Time, months int) time.Time
	AddCalendarYears(d time.Time, years int) time.Time

	// CompareDate returns a negative number, zero or a positive number when
	// a is before, on the same day as, or after b.
	CompareDate(a, b time.Time) int
	SameDate(a, b *time.Time) bool

	Format(d time.Time, layout string) string
	MonthNames(style NameStyle) []string
	DayOfWeekNames(style NameStyle) []string
	DateNames() []string

	Deserialize(value string) (time.Time, error)
	ValidDateOrNil(d *time.Time) *time.Time
	ClampDate(d time.Time, minDate, maxDate *time.Time) time.Time
}

// Time implements Adapter on top of the standard library calendar.
type Time struct {
	loc      *time.Location
	firstDay int
	now      func() time.Time
}

// Option configures a Time adapter.
type Option func(*Time)

// WithLocation sets the location dates are created in.
func WithLocation(loc *time.Location) Option {
	return func(t *Time) {
		if loc != nil {
			t.loc = loc
		}
	}
}

// WithFirstDayOfWeek sets the weekday (0=Sunday) that starts each grid row.
func WithFirstDayOfWeek(day int) Option {
	return func(t *Time) {
		t.firstDay = day
	}
}

// WithNow overrides the clock used by Today.
func WithNow(now func() time.Time) Option {
	return func(t *Time) {
		if now != nil {
			t.now = now
		}
	}
}

// NewTime creates a time-backed adapter.
func NewTime(opts ...Option) (*Time, error) {
	t := &Time{
		loc: time.Local,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.firstDay < 0 || t.firstDay > 6 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFirstDayOfWeek, t.firstDay)
	}
	return t, nil
}

// Today returns the current date at midnight.
func (t *Time) Today() time.Time {
	n := t.now().In(t.loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, t.loc)
}

// CreateDate builds a date, rejecting values time.Date would normalize.
func (t *Time) CreateDate(year, month, day int) (time.Time, error) {
	if month < 0 || month > 11 {
		return time.Time{}, fmt.Errorf("%w: month index %d out of range", ErrInvalidDate, month)
	}
	if day < 1 {
		return time.Time{}, fmt.Errorf("%w: day %d", ErrInvalidDate, day)
	}
	d := time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, t.loc)
	if d.Month() != time.Month(month+1) {
		return time.Time{}, fmt.Errorf("%w: %d-%02d-%02d", ErrInvalidDate, year, month+1, day)
	}
	return d, nil
}

func (t *Time) Year(d time.Time) int      { return d.Year() }
func (t *Time) Month(d time.Time) int     { return int(d.Month()) - 1 }
func (t *Time) Date(d time.Time) int      { return d.Day() }
func (t *Time) DayOfWeek(d time.Time) int { return int(d.Weekday()) }
func (t *Time) FirstDayOfWeek() int       { return t.firstDay }

// NumDaysInMonth returns the number of days in d's month.
func (t *Time) NumDaysInMonth(d time.Time) int {
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
	return first.AddDate(0, 1, -1).Day()
}

func (t *Time) AddCalendarDays(d time.Time, days int) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day()+days, 0, 0, 0, 0, d.Location())
}

// AddCalendarMonths adds months, clamping the day to the target month so
// Jan 31 + 1 month is Feb 28/29 rather than early March.
func (t *Time) AddCalendarMonths(d time.Time, months int) time.Time {
	first := time.Date(d.Year(), d.Month()+time.Month(months), 1, 0, 0, 0, 0, d.Location())
	day := min(d.Day(), t.NumDaysInMonth(first))
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, d.Location())
}

func (t *Time) AddCalendarYears(d time.Time, years int) time.Time {
	return t.AddCalendarMonths(d, years*12)
}

func (t *Time) CompareDate(a, b time.Time) int {
	if c := a.Year() - b.Year(); c != 0 {
		return c
	}
	if c := int(a.Month()) - int(b.Month()); c != 0 {
		return c
	}
	return a.Day() - b.Day()
}

// SameDate reports whether two optional dates fall on the same day.
// Two nil dates are considered the same.
func (t *Time) SameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return t.CompareDate(*a, *b) == 0
}

func (t *Time) Format(d time.Time, layout string) string {
	return d.Format(layout)
}

// MonthNames returns the twelve month names, January first.
func (t *Time) MonthNames(style NameStyle) []string {
	names := make([]string, 12)
	for i := range names {
		names[i] = shorten(time.Month(i+1).String(), style)
	}
	return names
}

// DayOfWeekNames returns the seven weekday names, Sunday first.
func (t *Time) DayOfWeekNames(style NameStyle) []string {
	names := make([]string, 7)
	for i := range names {
		names[i] = shorten(time.Weekday(i).String(), style)
	}
	return names
}

// DateNames returns display values for days 1..31.
func (t *Time) DateNames() []string {
	names := make([]string, 31)
	for i := range names {
		names[i] = fmt.Sprintf("%d", i+1)
	}
	return names
}

// Deserialize parses an ISO 8601 date (YYYY-MM-DD) or an RFC 3339 timestamp.
// An empty string deserializes to the zero time without error.
func (t *Time) Deserialize(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	if d, err := time.ParseInLocation("2006-01-02", value, t.loc); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	ts = ts.In(t.loc)
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, t.loc), nil
}

// ValidDateOrNil returns d when it is set and non-zero, nil otherwise.
func (t *Time) ValidDateOrNil(d *time.Time) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	return d
}

// ClampDate keeps d within the optional [min, max] bounds.
func (t *Time) ClampDate(d time.Time, minDate, maxDate *time.Time) time.Time {
	if minDate != nil && t.CompareDate(d, *minDate) < 0 {
		return *minDate
	}
	if maxDate != nil && t.CompareDate(d, *maxDate) > 0 {
		return *maxDate
	}
	return d
}

func shorten(name string, style NameStyle) string {
	switch style {
	case NameShort:
		return name[:3]
	case NameNarrow:
		return name[:1]
	default:
		return name
	}
}

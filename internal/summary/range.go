// Package summary provides shared range summary utilities.
package summary

import (
	"errors"
	"time"

	"github.com/javiermolinar/rangecal/internal/dateadapter"
	"github.com/javiermolinar/rangecal/internal/event"
	"github.com/javiermolinar/rangecal/internal/grid"
)

// ErrOpenRange is returned for a range missing either bound.
var ErrOpenRange = errors.New("range has no start or end")

// RangeSummary holds aggregated data about a date range.
type RangeSummary struct {
	Start time.Time
	End   time.Time

	Days       int // both ends counted
	Selectable int // days inside the bounds that pass the filter
	Overlap    int // days shared with the comparison range
}

// Options configures which days count as selectable and what the range is
// compared against.
type Options struct {
	MinDate    *time.Time
	MaxDate    *time.Time
	DateFilter func(time.Time) bool
	Comparison event.DateRange
}

// Summarize counts the days of r. Reversed bounds are swapped.
func Summarize(a dateadapter.Adapter, r event.DateRange, opts Options) (*RangeSummary, error) {
	if r.Start == nil || r.End == nil {
		return nil, ErrOpenRange
	}
	start, end := *r.Start, *r.End
	if a.CompareDate(end, start) < 0 {
		start, end = end, start
	}

	s := &RangeSummary{Start: start, End: end}
	cmpStart, cmpEnd := opts.Comparison.Start, opts.Comparison.End
	for d := start; a.CompareDate(d, end) <= 0; d = a.AddCalendarDays(d, 1) {
		s.Days++
		if grid.ShouldEnable(a, d, opts.MinDate, opts.MaxDate, opts.DateFilter) {
			s.Selectable++
		}
		if cmpStart != nil && cmpEnd != nil &&
			a.CompareDate(d, *cmpStart) >= 0 && a.CompareDate(d, *cmpEnd) <= 0 {
			s.Overlap++
		}
	}
	return s, nil
}

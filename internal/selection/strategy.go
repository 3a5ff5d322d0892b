// Package selection holds the selection model, the pluggable range
// strategies and the coordinator that sequences hover, drag and commit.
package selection

import (
	"time"

	"github.com/javiermolinar/rangecal/internal/dateadapter"
	"github.com/javiermolinar/rangecal/internal/event"
)

// Strategy computes ranges from user activity. A nil Strategy means plain
// single-date selection with no preview and no dragging.
type Strategy interface {
	// SelectionFinished returns the range after the user picked date.
	SelectionFinished(date *time.Time, current event.DateRange) event.DateRange
	// CreatePreview returns the range to preview while active is hovered
	// or focused. active is nil when nothing is hovered.
	CreatePreview(active *time.Time, current event.DateRange) event.DateRange
}

// DragCreator is implemented by strategies that support dragging an
// existing range. ok is false when no drag range can be produced.
type DragCreator interface {
	CreateDrag(origin time.Time, current event.DateRange, hover time.Time) (r event.DateRange, ok bool)
}

// DefaultRangeStrategy picks the start with the first activation and the
// end with the second, and moves or resizes a complete range by dragging.
type DefaultRangeStrategy struct {
	adapter dateadapter.Adapter
}

// NewDefaultRangeStrategy creates the default strategy.
func NewDefaultRangeStrategy(a dateadapter.Adapter) *DefaultRangeStrategy {
	return &DefaultRangeStrategy{adapter: a}
}

// SelectionFinished starts a range, closes an open one when date is not
// before its start, or restarts it otherwise.
func (s *DefaultRangeStrategy) SelectionFinished(date *time.Time, current event.DateRange) event.DateRange {
	start, end := current.Start, current.End
	switch {
	case start == nil:
		start = date
	case end == nil && date != nil && s.adapter.CompareDate(*date, *start) >= 0:
		end = date
	default:
		start, end = date, nil
	}
	return event.DateRange{Start: start, End: end}
}

// CreatePreview previews from an open range's start to the hovered date.
func (s *DefaultRangeStrategy) CreatePreview(active *time.Time, current event.DateRange) event.DateRange {
	if current.Start != nil && current.End == nil && active != nil {
		return event.DateRange{Start: current.Start, End: active}
	}
	return event.DateRange{}
}

// CreateDrag resizes the range when the drag started on one of its ends
// and moves it otherwise. Dragging a start past the end (or an end before
// the start) shifts the opposite bound by the same offset.
func (s *DefaultRangeStrategy) CreateDrag(origin time.Time, current event.DateRange, hover time.Time) (event.DateRange, bool) {
	if current.Start == nil || current.End == nil {
		return event.DateRange{}, false
	}
	a := s.adapter
	start, end := *current.Start, *current.End
	isRange := a.CompareDate(start, end) != 0

	diffYears := a.Year(hover) - a.Year(origin)
	diffMonths := a.Month(hover) - a.Month(origin)
	diffDays := a.Date(hover) - a.Date(origin)
	shift := func(d time.Time) time.Time {
		d = a.AddCalendarYears(d, diffYears)
		d = a.AddCalendarMonths(d, diffMonths)
		return a.AddCalendarDays(d, diffDays)
	}

	switch {
	case isRange && a.CompareDate(origin, *current.Start) == 0:
		start = hover
		if a.CompareDate(hover, end) > 0 {
			end = shift(end)
		}
	case isRange && a.CompareDate(origin, *current.End) == 0:
		end = hover
		if a.CompareDate(hover, start) < 0 {
			start = shift(start)
		}
	default:
		start = shift(start)
		end = shift(end)
	}
	return event.DateRange{Start: &start, End: &end}, true
}

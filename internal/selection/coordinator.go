package selection

import (
	"errors"
	"fmt"
	"time"

	"github.com/javiermolinar/rangecal/internal/dateadapter"
	"github.com/javiermolinar/rangecal/internal/event"
	"github.com/javiermolinar/rangecal/internal/grid"
	"github.com/javiermolinar/rangecal/internal/rangecmp"
)

// Configuration errors.
var (
	ErrMissingAdapter = errors.New("selection: date adapter is required")
	ErrMissingModel   = errors.New("selection: selection model is required")
)

// Ranges are the three numeric ranges a grid is classified against.
type Ranges struct {
	Main       rangecmp.Range
	Comparison rangecmp.Range
	Preview    rangecmp.Range
	IsRange    bool
}

// Coordinator sequences hover, drag and commit against the selection
// model. Range construction is delegated to the Strategy.
type Coordinator struct {
	adapter    dateadapter.Adapter
	model      *Model
	strategy   Strategy
	comparison event.DateRange
	preview    event.DateRange
}

// NewCoordinator creates a coordinator. strategy may be nil.
func NewCoordinator(a dateadapter.Adapter, model *Model, strategy Strategy) (*Coordinator, error) {
	if a == nil {
		return nil, ErrMissingAdapter
	}
	if model == nil {
		return nil, ErrMissingModel
	}
	return &Coordinator{adapter: a, model: model, strategy: strategy}, nil
}

// Model returns the selection model.
func (c *Coordinator) Model() *Model { return c.model }

// IsRange reports whether the coordinator works on ranges.
func (c *Coordinator) IsRange() bool { return c.model.Mode() == Range }

// SetComparison sets the comparison range shown next to the selection.
func (c *Coordinator) SetComparison(r event.DateRange) { c.comparison = r }

// Comparison returns the comparison range.
func (c *Coordinator) Comparison() event.DateRange { return c.comparison }

// Preview returns the current preview range.
func (c *Coordinator) Preview() event.DateRange { return c.preview }

// SetPreview replaces the preview, for hosts that mirror a preview built
// in another grid.
func (c *Coordinator) SetPreview(r event.DateRange) { c.preview = r }

// PreviewActive reports whether a preview end is showing.
func (c *Coordinator) PreviewActive() bool { return c.preview.End != nil }

// ClearPreview drops the preview.
func (c *Coordinator) ClearPreview() { c.preview = event.DateRange{} }

// DateFromDay resolves a day of the active month to a date.
func (c *Coordinator) DateFromDay(active time.Time, day int) (time.Time, error) {
	d, err := c.adapter.CreateDate(c.adapter.Year(active), c.adapter.Month(active), day)
	if err != nil {
		return time.Time{}, fmt.Errorf("resolving day %d: %w", day, err)
	}
	return d, nil
}

// Hover recomputes the preview for the hovered cell. While a drag is
// engaged, dragOrigin is set and the drag range overrides the preview.
func (c *Coordinator) Hover(hovered *grid.Cell, dragOrigin *time.Time) {
	if c.strategy == nil {
		c.preview = event.DateRange{}
		return
	}
	var value *time.Time
	if hovered != nil {
		v := hovered.RawValue
		value = &v
	}
	current := c.model.Selection().Bounds()
	c.preview = c.strategy.CreatePreview(value, current)

	if dragOrigin == nil || value == nil {
		return
	}
	if dc, ok := c.strategy.(DragCreator); ok {
		if r, ok := dc.CreateDrag(*dragOrigin, current, *value); ok {
			c.preview = r
		}
	}
}

// Commit applies a confirmed activation of day in the active month. A
// commit on the already selected single date still reports the user
// selection but not a value change.
func (c *Coordinator) Commit(active time.Time, day int) ([]event.Event, error) {
	date, err := c.DateFromDay(active, day)
	if err != nil {
		return nil, err
	}
	current := c.model.Selection().Bounds()

	var events []event.Event
	unchanged := c.model.Equal(current.Start, &date) && c.model.Equal(current.End, &date)
	if !unchanged {
		c.apply(date, current)
		events = append(events, event.SelectedValueChange{Date: &date})
	}
	events = append(events, event.UserSelection{Date: &date})
	c.ClearPreview()
	return events, nil
}

// DragEnd finishes a drag that started on origin. value is the date the
// pointer was released on, or nil when the drag was canceled.
func (c *Coordinator) DragEnd(origin time.Time, value *time.Time) []event.Event {
	defer c.ClearPreview()
	if value == nil {
		return []event.Event{event.DragEnded{}}
	}
	dc, ok := c.strategy.(DragCreator)
	if !ok {
		return []event.Event{event.DragEnded{}}
	}
	r, ok := dc.CreateDrag(origin, c.model.Selection().Bounds(), *value)
	if !ok {
		return []event.Event{event.DragEnded{}}
	}
	c.model.SetRange(r)
	return []event.Event{event.DragEnded{Range: &r}}
}

// Clear discards the selection, as Escape does during a preview.
func (c *Coordinator) Clear() []event.Event {
	c.model.Clear()
	c.ClearPreview()
	return []event.Event{event.SelectedValueChange{}, event.UserSelection{}}
}

// Ranges normalizes selection, comparison and preview into compare values.
func (c *Coordinator) Ranges() Ranges {
	return Ranges{
		Main:       c.toRange(c.model.Selection().Bounds()),
		Comparison: c.toRange(c.comparison),
		Preview:    c.toRange(c.preview),
		IsRange:    c.IsRange(),
	}
}

func (c *Coordinator) toRange(r event.DateRange) rangecmp.Range {
	return rangecmp.Range{
		Start: grid.CompareBound(c.adapter, r.Start),
		End:   grid.CompareBound(c.adapter, r.End),
	}
}

func (c *Coordinator) apply(date time.Time, current event.DateRange) {
	if c.model.Mode() == Single {
		c.model.SetDate(&date)
		return
	}
	if c.strategy != nil {
		c.model.SetRange(c.strategy.SelectionFinished(&date, current))
		return
	}
	// Range mode without a strategy fills start, then end, then restarts.
	switch {
	case current.Start == nil:
		c.model.SetRange(event.DateRange{Start: &date})
	case current.End == nil:
		c.model.SetRange(event.DateRange{Start: current.Start, End: &date})
	default:
		c.model.SetRange(event.DateRange{Start: &date})
	}
}

// Package drag implements the pointer gesture state machine used to drag a
// date range across a month grid.
//
// A Controller belongs to exactly one grid. Pointer releases arrive through
// a ReleaseBus shared by every grid on screen; each controller decides from
// the containment flag whether the release completes its own gesture.
package drag

import (
	"fmt"
	"time"

	"github.com/javiermolinar/rangecal/internal/grid"
	"github.com/javiermolinar/rangecal/internal/rangecmp"
)

// GridID identifies a grid instance.
type GridID int

// Target is a pointer position resolved against the grids on screen. Cell
// is nil when the pointer is not over any day cell.
type Target struct {
	Grid GridID
	Cell *grid.Cell
}

// Kind distinguishes mouse from touch input.
type Kind int

const (
	Mouse Kind = iota
	Touch
)

// Phase is the gesture phase.
type Phase int

const (
	Idle Phase = iota
	Engaged
	Completed
	Canceled
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Engaged:
		return "Engaged"
	case Completed:
		return "Completed"
	case Canceled:
		return "Canceled"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is the transient gesture state, reset at every press.
type State struct {
	Engaged bool
	Origin  time.Time
	DidMove bool
}

// Event is emitted by the controller.
type Event interface {
	dragEvent()
}

// Started is emitted once when a drag engages.
type Started struct {
	Origin time.Time
}

// PreviewChanged reports the hovered cell, or nil when the pointer is over
// a disabled cell or no cell at all.
type PreviewChanged struct {
	Cell *grid.Cell
}

// Ended is emitted once per engaged drag. Value is nil when the drag was
// released outside any cell or canceled.
type Ended struct {
	Value *time.Time
}

// Clicked is a click that should count as a selection.
type Clicked struct {
	Cell *grid.Cell
}

func (Started) dragEvent()        {}
func (PreviewChanged) dragEvent() {}
func (Ended) dragEvent()          {}
func (Clicked) dragEvent()        {}

// Controller is the drag state machine of one grid. The zero value is not
// usable; create controllers with New.
type Controller struct {
	id      GridID
	phase   Phase
	state   State
	main    rangecmp.Range
	isRange bool

	hoverSet bool
	hover    int64
}

// New creates an idle controller for the given grid.
func New(id GridID) Controller {
	return Controller{id: id}
}

// ID returns the owning grid.
func (c Controller) ID() GridID { return c.id }

// Phase returns the current phase.
func (c Controller) Phase() Phase { return c.phase }

// State returns a copy of the gesture state.
func (c Controller) State() State { return c.state }

// Engaged reports whether a drag is in progress.
func (c Controller) Engaged() bool { return c.phase == Engaged }

// SetRange updates the selection range drags may start from.
func (c *Controller) SetRange(main rangecmp.Range, isRange bool) {
	c.main = main
	c.isRange = isRange
}

// Press handles mousedown and touchstart. A drag engages only on an enabled
// cell of this grid that lies inside the current range. A press during an
// engaged drag means its release was lost; that drag is canceled first.
func (c *Controller) Press(t Target) []Event {
	var out []Event
	if c.phase == Engaged {
		out = append(out, Ended{})
	}
	c.phase = Idle
	c.state = State{}
	c.setHover(t)

	if !c.isRange || t.Grid != c.id || t.Cell == nil || !t.Cell.Enabled {
		return out
	}
	if !rangecmp.IsInRange(t.Cell.CompareValue, c.main.Start, c.main.End, true) {
		return out
	}
	c.phase = Engaged
	c.state = State{Engaged: true, Origin: t.Cell.RawValue}
	return append(out, Started{Origin: t.Cell.RawValue})
}

// Move handles mouseenter, focus and touchmove. For touch input,
// rawTargetDiffers reports whether the element under the finger differs
// from the element the touch started on, which separates a tap from a drag.
// A preview change is emitted only when the hovered cell changes.
func (c *Controller) Move(t Target, kind Kind, rawTargetDiffers bool) []Event {
	if kind == Touch && !c.isRange {
		return nil
	}
	changed := c.hoverChanged(t)
	if c.isRange {
		switch kind {
		case Touch:
			if rawTargetDiffers {
				c.state.DidMove = true
			}
		default:
			if changed {
				c.state.DidMove = true
			}
		}
	}
	if !changed {
		return nil
	}
	c.setHover(t)
	if t.Cell == nil || !t.Cell.Enabled || t.Grid != c.id {
		return []Event{PreviewChanged{}}
	}
	return []Event{PreviewChanged{Cell: t.Cell}}
}

// Leave handles the pointer leaving a cell. related is where the pointer
// went; the preview clears only when that is not a cell of this grid.
func (c *Controller) Leave(related Target) []Event {
	if !c.hoverSet || (related.Cell != nil && related.Grid == c.id) {
		return nil
	}
	c.setHover(Target{})
	return []Event{PreviewChanged{}}
}

// Release handles mouseup and touchend delivered through the release bus.
// contained reports whether the released-on cell belongs to this grid.
func (c *Controller) Release(t Target, contained bool) []Event {
	if c.phase != Engaged {
		return nil
	}
	c.state.Engaged = false
	if t.Cell == nil {
		c.phase = Canceled
		return []Event{Ended{}}
	}
	if !contained {
		// The release landed in another grid. That grid has no drag of its
		// own, so the gesture ends here without an event.
		c.phase = Idle
		return nil
	}
	c.phase = Completed
	v := t.Cell.RawValue
	return []Event{Ended{Value: &v}}
}

// Click handles a click on a cell. Clicks that close a drag which moved are
// swallowed so releasing on the origin does not start a new selection.
func (c *Controller) Click(t Target) []Event {
	if c.state.DidMove || t.Cell == nil || !t.Cell.Enabled {
		return nil
	}
	return []Event{Clicked{Cell: t.Cell}}
}

// Cancel ends an engaged drag without a value.
func (c *Controller) Cancel() []Event {
	if c.phase != Engaged {
		return nil
	}
	c.phase = Canceled
	c.state.Engaged = false
	return []Event{Ended{}}
}

func (c *Controller) hoverChanged(t Target) bool {
	if t.Cell == nil || t.Grid != c.id {
		return c.hoverSet
	}
	return !c.hoverSet || c.hover != t.Cell.CompareValue
}

func (c *Controller) setHover(t Target) {
	if t.Cell == nil || t.Grid != c.id {
		c.hoverSet = false
		c.hover = 0
		return
	}
	c.hoverSet = true
	c.hover = t.Cell.CompareValue
}

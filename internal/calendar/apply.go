package calendar

import (
	"time"

	"go.uber.org/zap"

	"github.com/javiermolinar/rangecal/internal/drag"
	"github.com/javiermolinar/rangecal/internal/event"
	"github.com/javiermolinar/rangecal/internal/grid"
	"github.com/javiermolinar/rangecal/internal/navigator"
	"github.com/javiermolinar/rangecal/internal/selection"
)

// Interaction is an input to Apply.
type Interaction interface {
	interaction()
}

// Press is a mousedown or touchstart.
type Press struct{ Target drag.Target }

// Move is a mouse entering a cell or a touchmove.
type Move struct {
	Target drag.Target
	Kind   drag.Kind
	// RawTargetDiffers is set for touch input when the element under the
	// finger differs from the one the touch started on.
	RawTargetDiffers bool
}

// Leave is the pointer leaving a cell for Related.
type Leave struct{ Related drag.Target }

// Release is a mouseup or touchend delivered by the release bus.
type Release struct {
	Target    drag.Target
	Contained bool
}

// Click is a click on a cell.
type Click struct{ Target drag.Target }

// Focus is a cell receiving focus.
type Focus struct{ Target drag.Target }

// Blur is the grid losing focus.
type Blur struct{}

// KeyDown is a key press.
type KeyDown struct{ Event navigator.KeyEvent }

// KeyUp is a key release.
type KeyUp struct{ Event navigator.KeyEvent }

// SetActiveDate moves the cursor without user input.
type SetActiveDate struct{ Date time.Time }

// SetSelection replaces the committed selection without emitting events.
type SetSelection struct{ Value selection.Selection }

// SetComparison replaces the comparison range.
type SetComparison struct{ Range event.DateRange }

// SetPreview replaces the preview, used to mirror a preview built by
// another month view.
type SetPreview struct{ Range event.DateRange }

func (Press) interaction()         {}
func (Move) interaction()          {}
func (Leave) interaction()         {}
func (Release) interaction()       {}
func (Click) interaction()         {}
func (Focus) interaction()         {}
func (Blur) interaction()          {}
func (KeyDown) interaction()       {}
func (KeyUp) interaction()         {}
func (SetActiveDate) interaction() {}
func (SetSelection) interaction()  {}
func (SetComparison) interaction() {}
func (SetPreview) interaction()    {}

// Apply feeds one interaction through the month view and returns the new
// state with the events it produced. Errors from the date adapter are
// logged and leave the state unchanged.
func Apply(st State, in Interaction) (State, []event.Event) {
	prev := st
	var out []event.Event

	switch in := in.(type) {
	case Press:
		out = st.dragEvents(st.Drag.Press(in.Target))
	case Move:
		out = st.dragEvents(st.Drag.Move(in.Target, in.Kind, in.RawTargetDiffers))
	case Leave:
		out = st.dragEvents(st.Drag.Leave(in.Related))
	case Release:
		out = st.dragEvents(st.Drag.Release(in.Target, in.Contained))
	case Click:
		out = st.click(in.Target)
	case Focus:
		out = st.focus(in.Target)
	case Blur:
		st.blur(&out)
	case KeyDown:
		out = st.keyDown(in.Event)
	case KeyUp:
		out = st.keyUp(in.Event)
	case SetActiveDate:
		st.Nav.SetActiveDate(in.Date)
	case SetSelection:
		in.Value.Mode = st.cfg.Mode
		st.Selection = in.Value
	case SetComparison:
		st.Comparison = in.Range
	case SetPreview:
		st.Preview = in.Range
	}

	if err := st.refresh(); err != nil {
		st.cfg.Logger.Error("month view update failed", zap.Error(err))
		return prev, nil
	}
	return st, out
}

// dragEvents turns drag controller output into month view events.
func (st *State) dragEvents(evs []drag.Event) []event.Event {
	var out []event.Event
	for _, ev := range evs {
		switch ev := ev.(type) {
		case drag.Started:
			out = append(out, event.DragStarted{Origin: ev.Origin})
		case drag.PreviewChanged:
			st.hover(ev.Cell)
			out = append(out, event.PreviewChange{Cell: ev.Cell})
		case drag.Ended:
			c := st.coordinator()
			out = append(out, c.DragEnd(st.Drag.State().Origin, ev.Value)...)
			st.absorb(c)
		case drag.Clicked:
			out = append(out, st.commit(ev.Cell.RawValue)...)
		}
	}
	return out
}

// hover recomputes the preview for cell, letting an engaged drag override
// it.
func (st *State) hover(cell *grid.Cell) {
	var origin *time.Time
	if st.Drag.Engaged() {
		o := st.Drag.State().Origin
		origin = &o
	}
	c := st.coordinator()
	c.Hover(cell, origin)
	st.absorb(c)
}

func (st *State) click(t drag.Target) []event.Event {
	if t.Grid != st.cfg.Grid || t.Cell == nil {
		return nil
	}
	var out []event.Event
	if t.Cell.Enabled {
		out = st.activate(t.Cell.RawValue)
	}
	return append(out, st.dragEvents(st.Drag.Click(t))...)
}

func (st *State) focus(t drag.Target) []event.Event {
	if st.Focus.SkipNextFocus {
		st.Focus.SkipNextFocus = false
		return nil
	}
	if t.Grid != st.cfg.Grid || t.Cell == nil {
		return nil
	}
	var out []event.Event
	if t.Cell.Enabled {
		out = st.activate(t.Cell.RawValue)
	}
	return append(out, st.dragEvents(st.Drag.Move(t, drag.Mouse, false))...)
}

// activate moves the cursor onto d, reporting the change.
func (st *State) activate(d time.Time) []event.Event {
	before := st.Nav.ActiveDate()
	st.Nav.SetActiveDate(d)
	after := st.Nav.ActiveDate()
	if st.cfg.Adapter.CompareDate(before, after) == 0 {
		return nil
	}
	return []event.Event{event.ActiveDateChange{Date: after}}
}

func (st *State) blur(out *[]event.Event) {
	st.Nav.Blur()
	if st.Drag.Engaged() {
		return
	}
	st.Drag.Leave(drag.Target{})
	if !st.Preview.Empty() {
		st.Preview = event.DateRange{}
		*out = append(*out, event.PreviewChange{})
	}
}

func (st *State) keyDown(k navigator.KeyEvent) []event.Event {
	res := st.Nav.KeyDown(k, navigator.Context{
		PreviewActive: st.Preview.End != nil,
		DragActive:    st.Drag.Engaged(),
	})
	st.LastKey = res

	var out []event.Event
	switch res.Escape {
	case navigator.EscapeCancelDrag:
		st.Preview = event.DateRange{}
		out = st.dragEvents(st.Drag.Cancel())
	case navigator.EscapeClearSelection:
		c := st.coordinator()
		out = c.Clear()
		st.absorb(c)
	}
	if res.Changed {
		out = append(out, event.ActiveDateChange{Date: res.ActiveDate})
		st.Focus.FocusPending = true
	}
	return out
}

func (st *State) keyUp(k navigator.KeyEvent) []event.Event {
	res := st.Nav.KeyUp(k)
	st.LastKey = res
	if !res.Commit {
		return nil
	}
	return st.commit(st.Nav.ActiveDate())
}

// commit confirms d, which lies in this view's month.
func (st *State) commit(d time.Time) []event.Event {
	c := st.coordinator()
	out, err := c.Commit(st.Nav.ActiveDate(), st.cfg.Adapter.Date(d))
	if err != nil {
		st.cfg.Logger.Error("commit failed", zap.Time("date", d), zap.Error(err))
		return nil
	}
	st.absorb(c)
	return out
}

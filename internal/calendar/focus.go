package calendar

import (
	"github.com/javiermolinar/rangecal/internal/drag"
	"github.com/javiermolinar/rangecal/internal/event"
)

// FocusScheduler moves focus to a cell once the host has rendered it.
// Requests are fire-and-forget; a newer request may supersede an unfired
// one and focusing twice is harmless.
type FocusScheduler interface {
	ScheduleFocus(grid drag.GridID, index int)
}

// FocusFunc adapts a function to FocusScheduler.
type FocusFunc func(grid drag.GridID, index int)

// ScheduleFocus calls f.
func (f FocusFunc) ScheduleFocus(grid drag.GridID, index int) { f(grid, index) }

// SyncScheduler focuses immediately by applying a Focus interaction to the
// state it points at. Hosts without a render cycle use it.
type SyncScheduler struct {
	State *State
	// Sink receives the events the focus produced. It may be nil.
	Sink func([]event.Event)
}

// ScheduleFocus focuses the cell at index right away.
func (s SyncScheduler) ScheduleFocus(id drag.GridID, index int) {
	if s.State == nil || s.State.cfg.Grid != id {
		return
	}
	cell, ok := s.State.Derived.Grid.CellAtIndex(index)
	if !ok {
		return
	}
	var evs []event.Event
	*s.State, evs = Apply(*s.State, Focus{Target: drag.Target{Grid: id, Cell: cell}})
	if s.Sink != nil && len(evs) > 0 {
		s.Sink(evs)
	}
}

// FlushFocus hands a pending focus request to the scheduler. When
// movePreview is false the focus the host produces is swallowed so the
// preview stays where it is.
func FlushFocus(st *State, s FocusScheduler, movePreview bool) {
	if !st.Focus.FocusPending || s == nil {
		return
	}
	st.Focus.FocusPending = false
	if !movePreview {
		st.Focus.SkipNextFocus = true
	}
	s.ScheduleFocus(st.cfg.Grid, st.Derived.ActiveIndex)
}

// Package navigator moves the keyboard cursor of a month grid.
//
// The navigator owns the active date. Arrow keys, Home/End and Page keys
// produce a new active date through the date adapter; Enter and Space arm
// a pending selection on keydown that is committed on the matching keyup.
package navigator

import (
	"time"

	"github.com/javiermolinar/rangecal/internal/dateadapter"
)

// Key is a navigation key.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyEnter
	KeySpace
	KeyEscape
)

// KeyEvent is a resolved key press or release.
type KeyEvent struct {
	Key Key
	// Alt switches Page keys from months to years.
	Alt bool
	// Modifier is set when any modifier key is held.
	Modifier bool
}

// EscapeAction tells the caller what Escape should do.
type EscapeAction int

const (
	EscapeNone EscapeAction = iota
	// EscapeCancelDrag ends the active drag without committing it.
	EscapeCancelDrag
	// EscapeClearSelection discards the half-built selection.
	EscapeClearSelection
)

// Context is the interaction state the navigator needs from its host.
type Context struct {
	PreviewActive bool
	DragActive    bool
}

// Result describes the outcome of a key event.
type Result struct {
	ActiveDate time.Time
	// Changed is set when the active date moved to another day.
	Changed bool
	// MonthChanged is set when the move crossed into another month or
	// year, which needs a full grid rebuild.
	MonthChanged bool

	PreventDefault  bool
	StopPropagation bool

	// Commit is set on the keyup that completes an Enter/Space selection.
	Commit bool
	Escape EscapeAction
}

// Options configures a Navigator.
type Options struct {
	MinDate    *time.Time
	MaxDate    *time.Time
	DateFilter func(time.Time) bool
	RTL        bool
}

// Navigator is the keyboard cursor of a month grid.
type Navigator struct {
	adapter          dateadapter.Adapter
	opts             Options
	activeDate       time.Time
	selectionPending bool
}

// New creates a navigator positioned on activeDate, clamped to the bounds.
func New(a dateadapter.Adapter, activeDate time.Time, opts Options) Navigator {
	n := Navigator{adapter: a, opts: opts}
	n.activeDate = n.clamp(activeDate)
	return n
}

// ActiveDate returns the current active date.
func (n *Navigator) ActiveDate() time.Time { return n.activeDate }

// SelectionPending reports whether Enter or Space is held down.
func (n *Navigator) SelectionPending() bool { return n.selectionPending }

// SetOptions replaces the bounds, filter and direction.
func (n *Navigator) SetOptions(opts Options) {
	n.opts = opts
	n.activeDate = n.clamp(n.activeDate)
}

// SetActiveDate moves the cursor programmatically. It reports whether the
// month changed.
func (n *Navigator) SetActiveDate(d time.Time) (monthChanged bool) {
	old := n.activeDate
	n.activeDate = n.clamp(d)
	return !n.sameMonth(old, n.activeDate)
}

// CanSelect reports whether d passes the date filter.
func (n *Navigator) CanSelect(d time.Time) bool {
	return n.opts.DateFilter == nil || n.opts.DateFilter(d)
}

// KeyDown handles a key press.
func (n *Navigator) KeyDown(ev KeyEvent, ctx Context) Result {
	a := n.adapter
	old := n.activeDate
	next := old

	switch ev.Key {
	case KeyLeft:
		next = a.AddCalendarDays(old, n.horizontal(-1))
	case KeyRight:
		next = a.AddCalendarDays(old, n.horizontal(1))
	case KeyUp:
		next = a.AddCalendarDays(old, -7)
	case KeyDown:
		next = a.AddCalendarDays(old, 7)
	case KeyHome:
		next = a.AddCalendarDays(old, 1-a.Date(old))
	case KeyEnd:
		next = a.AddCalendarDays(old, a.NumDaysInMonth(old)-a.Date(old))
	case KeyPageUp:
		if ev.Alt {
			next = a.AddCalendarYears(old, -1)
		} else {
			next = a.AddCalendarMonths(old, -1)
		}
	case KeyPageDown:
		if ev.Alt {
			next = a.AddCalendarYears(old, 1)
		} else {
			next = a.AddCalendarMonths(old, 1)
		}
	case KeyEnter, KeySpace:
		res := Result{ActiveDate: old}
		if n.CanSelect(old) {
			n.selectionPending = true
			res.PreventDefault = true
		}
		return res
	case KeyEscape:
		return n.escape(ev, ctx)
	default:
		return Result{ActiveDate: old}
	}

	n.activeDate = n.clamp(next)
	res := Result{ActiveDate: n.activeDate, PreventDefault: true}
	if a.CompareDate(old, n.activeDate) != 0 {
		res.Changed = true
		res.MonthChanged = !n.sameMonth(old, n.activeDate)
	}
	return res
}

// KeyUp handles a key release. Only the release of Enter or Space matters:
// it commits the selection armed by the matching keydown.
func (n *Navigator) KeyUp(ev KeyEvent) Result {
	res := Result{ActiveDate: n.activeDate}
	if ev.Key != KeyEnter && ev.Key != KeySpace {
		return res
	}
	if n.selectionPending && n.CanSelect(n.activeDate) {
		res.Commit = true
	}
	n.selectionPending = false
	return res
}

// Blur drops a pending selection, so focus leaving the grid between
// keydown and keyup cannot also select.
func (n *Navigator) Blur() {
	n.selectionPending = false
}

func (n *Navigator) escape(ev KeyEvent, ctx Context) Result {
	res := Result{ActiveDate: n.activeDate}
	if ev.Modifier || !(ctx.PreviewActive || ctx.DragActive) {
		return res
	}
	res.PreventDefault = true
	res.StopPropagation = true
	if ctx.DragActive {
		res.Escape = EscapeCancelDrag
	} else {
		res.Escape = EscapeClearSelection
	}
	return res
}

func (n *Navigator) horizontal(step int) int {
	if n.opts.RTL {
		return -step
	}
	return step
}

func (n *Navigator) clamp(d time.Time) time.Time {
	return n.adapter.ClampDate(d, n.opts.MinDate, n.opts.MaxDate)
}

func (n *Navigator) sameMonth(a, b time.Time) bool {
	return n.adapter.Year(a) == n.adapter.Year(b) && n.adapter.Month(a) == n.adapter.Month(b)
}

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rangecal/internal/calendar"
	"github.com/javiermolinar/rangecal/internal/dateutil"
	"github.com/javiermolinar/rangecal/internal/drag"
	"github.com/javiermolinar/rangecal/internal/event"
	"github.com/javiermolinar/rangecal/internal/selection"
	"github.com/javiermolinar/rangecal/internal/tui/commands"
)

type emitted struct {
	grid   drag.GridID
	events []event.Event
}

// eventQueue collects what the month views emit, including releases
// delivered by the bus, until the model handles them.
type eventQueue struct {
	items []emitted
}

func (q *eventQueue) push(id drag.GridID, evs []event.Event) {
	q.items = append(q.items, emitted{grid: id, events: evs})
}

func (q *eventQueue) drain() []emitted {
	items := q.items
	q.items = nil
	return items
}

// dispatch applies an interaction to view i and handles what it emitted.
func (m *Model) dispatch(i int, in calendar.Interaction) []tea.Cmd {
	if i < 0 || i >= len(m.views) {
		return nil
	}
	m.views[i].Dispatch(in)
	return m.handleEmitted()
}

// handleEmitted mirrors the emitting view's selection and preview into the
// other views and persists completed selections.
func (m *Model) handleEmitted() []tea.Cmd {
	var cmds []tea.Cmd
	for _, it := range m.queue.drain() {
		LogEmit(it.grid, it.events)
		src := m.viewIndex(it.grid)
		if src < 0 {
			continue
		}
		st := m.views[src].State()
		m.broadcast(src, calendar.SetSelection{Value: st.Selection})
		m.broadcast(src, calendar.SetPreview{Range: st.Preview})

		for _, ev := range it.events {
			switch ev := ev.(type) {
			case event.DragStarted:
				LogDrag(it.grid, drag.Engaged, "press in range")
			case event.DragEnded:
				LogDrag(it.grid, st.Drag.Phase(), "release")
				if ev.Range != nil {
					cmds = append(cmds, m.save(st.Selection))
				}
			case event.UserSelection:
				if ev.Date != nil && complete(st.Selection) {
					cmds = append(cmds, m.save(st.Selection))
				}
			}
		}
	}
	return cmds
}

func (m *Model) broadcast(src int, in calendar.Interaction) {
	for i, v := range m.views {
		if i != src {
			v.Dispatch(in)
		}
	}
	// Set interactions emit nothing, but keep the queue clean regardless.
	m.queue.drain()
}

func (m *Model) save(sel selection.Selection) tea.Cmd {
	if m.repo == nil {
		return nil
	}
	return commands.SaveSelection(m.repo, sel, m.now())
}

// complete reports whether a selection is worth persisting: a date, or a
// range with both ends.
func complete(sel selection.Selection) bool {
	if sel.Mode == selection.Single {
		return sel.Date != nil
	}
	return sel.Range.Complete()
}

// realign moves every other view so the boxes show consecutive months
// around view i.
func (m *Model) realign(i int) {
	if i < 0 || i >= len(m.views) {
		return
	}
	a := m.adapter
	active := m.views[i].State().ActiveDate()
	first := a.AddCalendarDays(active, 1-a.Date(active))
	for j, v := range m.views {
		if j == i {
			continue
		}
		v.Dispatch(calendar.SetActiveDate{Date: a.AddCalendarMonths(first, j-i)})
	}
	m.queue.drain()
}

// cycleFocus moves keyboard focus to the next or previous month box.
func (m *Model) cycleFocus(step int) {
	if len(m.views) < 2 {
		return
	}
	next := (m.focused + step + len(m.views)) % len(m.views)
	m.dispatch(m.focused, calendar.Blur{})
	m.focused = next
	if cell, ok := m.focusedView().State().Derived.ActiveCell(); ok {
		m.dispatch(next, calendar.Focus{Target: drag.Target{Grid: m.focusedView().ID(), Cell: cell}})
	}
}

// teaScheduler defers focus to a command, so the cell is focused after the
// frame showing it has rendered.
type teaScheduler struct {
	gen int
	cmd tea.Cmd
}

func (s *teaScheduler) ScheduleFocus(grid drag.GridID, index int) {
	s.gen++
	gen := s.gen
	s.cmd = tea.Tick(0, func(time.Time) tea.Msg {
		return focusMsg{grid: grid, index: index, gen: gen}
	})
}

// flushFocus schedules the focus the focused view asked for, if any.
func (m *Model) flushFocus() tea.Cmd {
	sched := &teaScheduler{gen: m.focusGen}
	m.focusedView().FlushFocus(sched, true)
	m.focusGen = sched.gen
	return sched.cmd
}

func (m Model) focusedView() *calendar.MonthView {
	return m.views[m.focused]
}

func (m Model) viewIndex(id drag.GridID) int {
	for i, v := range m.views {
		if v.ID() == id {
			return i
		}
	}
	return -1
}

// selectionText renders the committed selection as "start..end".
func (m Model) selectionText() string {
	b := m.focusedView().State().Selection.Bounds()
	return dateutil.FormatRange(b.Start, b.End)
}

// restoredSelection converts a saved selection to the configured mode.
func (m Model) restoredSelection(s *selection.Saved) selection.Selection {
	mode := selection.Single
	if m.config.IsRange() {
		mode = selection.Range
	}
	return s.SelectionAs(mode)
}

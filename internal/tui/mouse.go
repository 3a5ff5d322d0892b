package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rangecal/internal/calendar"
	"github.com/javiermolinar/rangecal/internal/drag"
	"github.com/javiermolinar/rangecal/internal/grid"
)

// handleMouseMsg turns terminal mouse reports into pointer interactions.
// Press and motion go to the month under the pointer; a release goes to
// every month through the release bus, followed by a click when it lands
// on the pressed cell.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	target, idx := m.targetAt(msg.X, msg.Y)
	LogMouse(msg, target)

	var cmds []tea.Cmd
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.pressed = nil
		if target.Cell == nil {
			return m, nil
		}
		if idx != m.focused {
			cmds = append(cmds, m.dispatch(m.focused, calendar.Blur{})...)
			m.focused = idx
		}
		pressed := target
		m.pressed = &pressed
		cmds = append(cmds, m.dispatch(idx, calendar.Press{Target: target})...)

	case tea.MouseActionMotion:
		cmds = m.pointerMove(target, idx)

	case tea.MouseActionRelease:
		m.bus.Publish(target)
		cmds = m.handleEmitted()
		if m.pressed != nil && sameCell(*m.pressed, target) {
			cmds = append(cmds, m.dispatch(idx, calendar.Click{Target: target})...)
		}
		m.pressed = nil
	}
	return m, tea.Batch(cmds...)
}

// pointerMove reports the pointer leaving the previously hovered month and
// entering a cell.
func (m *Model) pointerMove(target drag.Target, idx int) []tea.Cmd {
	var cmds []tea.Cmd
	if m.hoverView >= 0 && (idx != m.hoverView || target.Cell == nil) {
		cmds = append(cmds, m.dispatch(m.hoverView, calendar.Leave{Related: target})...)
	}
	m.hoverView = -1
	if target.Cell != nil {
		m.hoverView = idx
		cmds = append(cmds, m.dispatch(idx, calendar.Move{Target: target, Kind: drag.Mouse})...)
	}
	return cmds
}

// targetAt resolves a screen position to a day cell. idx is the month box
// under the position, or -1.
func (m Model) targetAt(x, y int) (target drag.Target, idx int) {
	box, contentX, ok := m.layout.boxAt(x, len(m.views))
	if !ok {
		return drag.Target{Grid: -1}, -1
	}
	v := m.views[box]
	st := v.State()
	g := st.Derived.Grid

	row := y - m.layout.Top - 1 - monthPreambleLines
	if g.LabelRow {
		row--
	}
	visual := contentX / cellWidth
	if st.Config().RTL {
		visual = grid.DaysPerWeek - 1 - visual
	}

	cell, ok := g.CellAtVisual(row, visual)
	if !ok {
		return drag.Target{Grid: v.ID()}, box
	}
	return drag.Target{Grid: v.ID(), Cell: cell}, box
}

func sameCell(a, b drag.Target) bool {
	return a.Cell != nil && b.Cell != nil && a.Grid == b.Grid && a.Cell.CompareValue == b.Cell.CompareValue
}

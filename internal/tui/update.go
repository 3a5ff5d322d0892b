package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rangecal/internal/calendar"
	"github.com/javiermolinar/rangecal/internal/drag"
	"github.com/javiermolinar/rangecal/internal/tui/commands"
)

// focusMsg delivers a scheduled focus after the frame that needed it has
// rendered.
type focusMsg struct {
	grid  drag.GridID
	index int
	gen   int
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout = m.buildLayoutCache(m.width, m.height)
		return m, nil

	case focusMsg:
		if msg.gen != m.focusGen {
			// Superseded by a newer request.
			return m, nil
		}
		i := m.viewIndex(msg.grid)
		if i < 0 {
			return m, nil
		}
		cell, ok := m.views[i].State().Derived.Grid.CellAtIndex(msg.index)
		if !ok {
			return m, nil
		}
		cmds := m.dispatch(i, calendar.Focus{Target: drag.Target{Grid: msg.grid, Cell: cell}})
		return m, tea.Batch(cmds...)

	case commands.LatestLoadedMsg:
		if msg.Saved == nil {
			return m, nil
		}
		sel := m.restoredSelection(msg.Saved)
		for _, v := range m.views {
			v.Dispatch(calendar.SetSelection{Value: sel})
		}
		m.dispatch(m.focused, calendar.SetActiveDate{Date: msg.Saved.Start})
		m.realign(m.focused)
		return m, nil

	case commands.SelectionSavedMsg:
		m.statusMsg = "Saved " + m.selectionText()
		m.statusErr = false
		m.statusTime = m.now().Add(3 * time.Second)
		return m, clearStatusAfter(3 * time.Second)

	case commands.ErrMsg:
		LogError("command", msg.Err)
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusErr = true
		m.statusTime = m.now().Add(5 * time.Second)
		return m, clearStatusAfter(5 * time.Second)

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusErr = false
		m.statusTime = m.now().Add(3 * time.Second)
		return m, clearStatusAfter(3 * time.Second)

	case commands.ClearStatusMsg:
		if !m.now().Before(m.statusTime) {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}

	return m, nil
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}

func statusCmd(msg string) tea.Cmd {
	return func() tea.Msg {
		return commands.StatusMsgCmd{Msg: msg}
	}
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return commands.ErrMsg{Err: err}
	}
}

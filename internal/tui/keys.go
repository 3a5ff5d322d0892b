// Package tui provides the terminal user interface for rangecal.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rangecal/internal/calendar"
	"github.com/javiermolinar/rangecal/internal/navigator"
	"github.com/javiermolinar/rangecal/internal/tui/commands"
)

// KeyMap holds the host bindings on top of the calendar navigation keys.
type KeyMap struct {
	Nav navigator.KeyMap

	NextMonth key.Binding
	PrevMonth key.Binding
	Today     key.Binding
	Copy      key.Binding
	Init      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default host bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Nav:       navigator.DefaultKeyMap(),
		NextMonth: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next month box")),
		PrevMonth: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev month box")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Init:      key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "initialize")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return append(km.Nav.ShortHelp(), km.NextMonth, km.Copy, km.Help, km.Quit)
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return append(km.Nav.FullHelp(),
		[]key.Binding{km.NextMonth, km.PrevMonth, km.Today},
		[]key.Binding{km.Copy, km.Init, km.Help, km.Quit},
	)
}

// handleKeyMsg routes a key press. Terminals report no key releases, so a
// navigation key is fed to the focused month as a keydown followed by the
// matching keyup.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Init) && m.initState.NeedsInit:
		updated, err := m.initializeStorage()
		if err != nil {
			LogError("initialize storage", err)
			return updated, errCmd(err)
		}
		updated.initState.NeedsInit = false
		updated.layout = updated.buildLayoutCache(updated.width, updated.height)
		return updated, tea.Batch(commands.LoadLatest(updated.repo), statusCmd("Initialized "+updated.initState.DBPath))
	case key.Matches(msg, m.keys.NextMonth):
		m.cycleFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevMonth):
		m.cycleFocus(-1)
		return m, nil
	case key.Matches(msg, m.keys.Today):
		m.dispatch(m.focused, calendar.SetActiveDate{Date: m.adapter.Today()})
		m.realign(m.focused)
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		return m, commands.Copy(m.selectionText(), m.copy)
	}

	ev, ok := m.keys.Nav.Resolve(msg)
	if !ok {
		return m, nil
	}

	cmds := m.dispatch(m.focused, calendar.KeyDown{Event: ev})
	down := m.focusedView().State().LastKey
	cmds = append(cmds, m.dispatch(m.focused, calendar.KeyUp{Event: ev})...)

	if ev.Key == navigator.KeyEscape && !down.StopPropagation {
		// The calendar had nothing to cancel.
		m.help.ShowAll = false
		m.statusMsg = ""
	}
	if down.Changed {
		m.realign(m.focused)
		cmds = append(cmds, m.flushFocus())
	}
	return m, tea.Batch(cmds...)
}

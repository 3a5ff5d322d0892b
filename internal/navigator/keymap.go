package navigator

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap binds terminal keys to navigation keys.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	YearUp   key.Binding
	YearDown key.Binding
	Select   key.Binding
	Space    key.Binding
	Escape   key.Binding
}

// DefaultKeyMap returns arrow-key and vim-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "first day")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "last day")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "["), key.WithHelp("pgup", "prev month")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "]"), key.WithHelp("pgdn", "next month")),
		YearUp:   key.NewBinding(key.WithKeys("alt+pgup", "{"), key.WithHelp("alt+pgup", "prev year")),
		YearDown: key.NewBinding(key.WithKeys("alt+pgdown", "}"), key.WithHelp("alt+pgdn", "next year")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Space:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// Resolve maps a terminal key to a navigation key event.
func (km KeyMap) Resolve(msg fmt.Stringer) (KeyEvent, bool) {
	switch {
	case key.Matches(msg, km.Left):
		return KeyEvent{Key: KeyLeft}, true
	case key.Matches(msg, km.Right):
		return KeyEvent{Key: KeyRight}, true
	case key.Matches(msg, km.Up):
		return KeyEvent{Key: KeyUp}, true
	case key.Matches(msg, km.Down):
		return KeyEvent{Key: KeyDown}, true
	case key.Matches(msg, km.Home):
		return KeyEvent{Key: KeyHome}, true
	case key.Matches(msg, km.End):
		return KeyEvent{Key: KeyEnd}, true
	case key.Matches(msg, km.YearUp):
		return KeyEvent{Key: KeyPageUp, Alt: true, Modifier: true}, true
	case key.Matches(msg, km.YearDown):
		return KeyEvent{Key: KeyPageDown, Alt: true, Modifier: true}, true
	case key.Matches(msg, km.PageUp):
		return KeyEvent{Key: KeyPageUp}, true
	case key.Matches(msg, km.PageDown):
		return KeyEvent{Key: KeyPageDown}, true
	case key.Matches(msg, km.Select):
		return KeyEvent{Key: KeyEnter}, true
	case key.Matches(msg, km.Space):
		return KeyEvent{Key: KeySpace}, true
	case key.Matches(msg, km.Escape):
		return KeyEvent{Key: KeyEscape}, true
	}
	return KeyEvent{}, false
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Left, km.Right, km.Up, km.Down, km.Select, km.Escape}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Up, km.Down},
		{km.Home, km.End, km.PageUp, km.PageDown, km.YearUp, km.YearDown},
		{km.Select, km.Space, km.Escape},
	}
}

// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rangecal/internal/selection"
)

// LatestLoadedMsg is sent when the most recent saved selection is loaded.
// Saved is nil when nothing has been saved yet.
type LatestLoadedMsg struct {
	Saved *selection.Saved
}

// SelectionSavedMsg is sent when a committed selection was persisted.
type SelectionSavedMsg struct {
	Saved *selection.Saved
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// WriteFunc writes text to the system clipboard.
type WriteFunc func(text string) error

// LoadLatest loads the most recently saved selection.
func LoadLatest(repo selection.Repository) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return LatestLoadedMsg{}
		}
		saved, err := repo.Latest(context.Background())
		if errors.Is(err, selection.ErrNotFound) {
			return LatestLoadedMsg{}
		}
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading last selection: %w", err)}
		}
		return LatestLoadedMsg{Saved: saved}
	}
}

// SaveSelection persists a committed selection.
func SaveSelection(repo selection.Repository, sel selection.Selection, now time.Time) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return nil
		}
		saved, err := selection.NewSaved(sel, "", now)
		if err != nil {
			return ErrMsg{Err: err}
		}
		if err := repo.Save(context.Background(), saved); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving selection: %w", err)}
		}
		return SelectionSavedMsg{Saved: saved}
	}
}

// Copy writes text to the clipboard. A nil write uses the system clipboard.
func Copy(text string, write WriteFunc) tea.Cmd {
	if write == nil {
		write = clipboard.WriteAll
	}
	return func() tea.Msg {
		if text == "" {
			return StatusMsgCmd{Msg: "Nothing selected"}
		}
		if err := write(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copy failed: %w", err)}
		}
		return StatusMsgCmd{Msg: "Copied " + text}
	}
}

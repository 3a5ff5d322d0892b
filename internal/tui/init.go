package tui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/javiermolinar/rangecal/internal/config"
	"github.com/javiermolinar/rangecal/internal/db"
	"github.com/javiermolinar/rangecal/internal/selection"
)

// ErrNoStorePath is returned when the selection store has no configured file.
var ErrNoStorePath = errors.New("selection store path is empty")

// InitState records which of the config file and the selection store are
// absent at startup. Until both exist, committed selections are not saved.
type InitState struct {
	NeedsInit     bool
	ConfigMissing bool
	DBMissing     bool
	ConfigPath    string
	DBPath        string
}

// Pending names the files that pressing i will create.
func (s InitState) Pending() string {
	var names []string
	if s.ConfigMissing {
		names = append(names, "config")
	}
	if s.DBMissing {
		names = append(names, "selection store")
	}
	return strings.Join(names, " and ")
}

// DetectInitState looks for the config file and the selection store.
func DetectInitState(cfg *config.Config) (InitState, error) {
	configPath := config.DefaultConfigPath()
	configMissing, err := pathMissing(configPath)
	if err != nil {
		return InitState{}, fmt.Errorf("checking config path: %w", err)
	}
	dbMissing, err := pathMissing(cfg.Storage.DBPath)
	if err != nil {
		return InitState{}, fmt.Errorf("checking selection store: %w", err)
	}
	return InitState{
		NeedsInit:     configMissing || dbMissing,
		ConfigMissing: configMissing,
		DBMissing:     dbMissing,
		ConfigPath:    configPath,
		DBPath:        cfg.Storage.DBPath,
	}, nil
}

func pathMissing(path string) (bool, error) {
	if path == "" {
		return true, nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

// openRepo opens the selection store at path, creating its directory.
func openRepo(path string) (selection.Repository, error) {
	if path == "" {
		return nil, ErrNoStorePath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating selection store directory: %w", err)
	}
	store, err := db.New(path)
	if err != nil {
		return nil, fmt.Errorf("opening selection store: %w", err)
	}
	return store, nil
}

// initializeStorage writes the default config if it is absent and opens
// the selection store, after which commits are persisted.
func (m Model) initializeStorage() (Model, error) {
	if m.initState.ConfigMissing {
		if err := m.config.SaveTo(m.initState.ConfigPath); err != nil {
			return m, fmt.Errorf("saving config: %w", err)
		}
		m.initState.ConfigMissing = false
	}
	if m.repo != nil {
		return m, nil
	}
	repo, err := openRepo(m.initState.DBPath)
	if err != nil {
		return m, err
	}
	m.repo = repo
	m.initState.DBMissing = false
	return m, nil
}

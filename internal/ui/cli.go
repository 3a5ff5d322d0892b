package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/rangecal/internal/config"
	"github.com/javiermolinar/rangecal/internal/db"
	"github.com/javiermolinar/rangecal/internal/selection"
	"github.com/javiermolinar/rangecal/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo     selection.Repository
	ownsRepo bool // repo was opened by ensureRepo
	config   *config.Config
	root     *cobra.Command
	debug    bool // Enable debug logging
	verbose  bool
	logger   *zap.Logger
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repo is opened from the configured database path on first use.
func NewApp(repo selection.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg, logger: zap.NewNop()}

	a.root = &cobra.Command{
		Use:   "rangecal",
		Short: "A terminal date range picker",
		Long: `Rangecal is a keyboard and mouse driven calendar for picking dates
and date ranges in the terminal.

Run without a command to open the interactive picker. Committed
selections are saved and restored on the next start.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.initLogger()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.repo, a.config, a.debug)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to temp file)")
	a.root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log command activity to stderr")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.deleteCmd())

	return a
}

// initLogger builds the command logger. Only warnings reach stderr unless
// --verbose is set.
func (a *App) initLogger() error {
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if a.verbose {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	a.logger = logger
	return nil
}

// ensureRepo opens the configured database if no repository was injected.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	path := a.config.Storage.DBPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(path)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	a.logger.Debug("opened store", zap.String("path", path))
	a.repo = repo
	a.ownsRepo = true
	return nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rangecal %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases a repository opened by the app and flushes the logger.
func (a *App) Close() error {
	_ = a.logger.Sync()
	if a.ownsRepo && a.repo != nil {
		err := a.repo.Close()
		a.repo = nil
		a.ownsRepo = false
		return err
	}
	return nil
}

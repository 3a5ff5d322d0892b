// Package tui provides the terminal user interface for rangecal.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/rangecal/internal/calendar"
	"github.com/javiermolinar/rangecal/internal/config"
	"github.com/javiermolinar/rangecal/internal/dateadapter"
	"github.com/javiermolinar/rangecal/internal/drag"
	"github.com/javiermolinar/rangecal/internal/event"
	"github.com/javiermolinar/rangecal/internal/selection"
	"github.com/javiermolinar/rangecal/internal/tui/commands"
	"github.com/javiermolinar/rangecal/internal/tui/theme"
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   selection.Repository
	config *config.Config

	// Theme and styles
	theme      *theme.Theme
	styles     *Styles
	styleCache StyleCache
	keys       KeyMap
	help       help.Model

	// Month views, one per box, sharing a release bus. Their events are
	// collected in queue and handled after every dispatch.
	adapter dateadapter.Adapter
	bus     *drag.ReleaseBus
	views   []*calendar.MonthView
	queue   *eventQueue
	focused int

	// Pointer state
	hoverView int          // view under the pointer, -1 when over no cell
	pressed   *drag.Target // cell under the last press, for click detection

	// focusGen identifies the newest focus request; older ones are dropped.
	focusGen int

	initState InitState

	// Terminal dimensions and layout
	width  int
	height int
	layout LayoutCache

	// Messages
	statusMsg  string    // Temporary status/error message
	statusErr  bool      // Render the status as an error
	statusTime time.Time // When to clear message

	now    func() time.Time
	copy   commands.WriteFunc
	logger *zap.Logger
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithInitState sets the startup initialization state.
func WithInitState(state InitState) ModelOption {
	return func(m *Model) {
		m.initState = state
	}
}

// WithNow sets the clock used for today and for saved timestamps.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write commands.WriteFunc) ModelOption {
	return func(m *Model) {
		m.copy = write
	}
}

// WithLogger sets the logger handed to the month views.
func WithLogger(l *zap.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates a new TUI model.
func New(repo selection.Repository, cfg *config.Config, opts ...ModelOption) (Model, error) {
	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		return Model{}, err
	}
	styles := NewStyles(t)

	m := Model{
		repo:       repo,
		config:     cfg,
		theme:      t,
		styles:     styles,
		styleCache: NewStyleCache(styles),
		keys:       DefaultKeyMap(),
		help:       newHelp(styles),
		bus:        drag.NewReleaseBus(),
		queue:      &eventQueue{},
		hoverView:  -1,
		now:        time.Now,
		logger:     debugLog,
	}
	for _, opt := range opts {
		opt(&m)
	}

	adapter, err := NewAdapter(cfg, m.now)
	if err != nil {
		return Model{}, err
	}
	m.adapter = adapter
	if err := m.buildViews(); err != nil {
		return Model{}, err
	}
	m.layout = m.buildLayoutCache(0, 0)
	return m, nil
}

// NewAdapter creates the date adapter described by cfg.
func NewAdapter(cfg *config.Config, now func() time.Time) (*dateadapter.Time, error) {
	return dateadapter.NewTime(
		dateadapter.WithFirstDayOfWeek(int(cfg.FirstWeekday())),
		dateadapter.WithNow(now),
	)
}

// CalendarConfig builds the month view configuration described by cfg,
// along with the comparison range to show.
func CalendarConfig(cfg *config.Config, a dateadapter.Adapter, logger *zap.Logger) (calendar.Config, event.DateRange, error) {
	minDate, maxDate, err := cfg.Bounds()
	if err != nil {
		return calendar.Config{}, event.DateRange{}, err
	}
	start, end, err := cfg.Comparison()
	if err != nil {
		return calendar.Config{}, event.DateRange{}, err
	}

	cc := calendar.Config{
		Adapter: a,
		Mode:    selection.Single,
		Comparator: func(x, y time.Time) bool {
			return a.CompareDate(x, y) == 0
		},
		MinDate:               minDate,
		MaxDate:               maxDate,
		DateFilter:            cfg.DateFilter(),
		RTL:                   cfg.Calendar.RTL,
		LabelMinRequiredCells: cfg.Calendar.LabelMinCells,
		Logger:                logger,
	}
	if cfg.IsRange() {
		cc.Mode = selection.Range
		cc.Strategy = selection.NewDefaultRangeStrategy(a)
	}
	return cc, event.DateRange{Start: start, End: end}, nil
}

// buildViews creates one month view per box, the first showing today and
// the rest the months after it.
func (m *Model) buildViews() error {
	base, comparison, err := CalendarConfig(m.config, m.adapter, m.logger)
	if err != nil {
		return fmt.Errorf("configuring calendar: %w", err)
	}

	n := max(1, m.config.Calendar.MonthsShown)
	today := m.adapter.Today()
	for i := 0; i < n; i++ {
		vc := base
		vc.Grid = drag.GridID(i)
		v, err := calendar.NewMonthView(vc, today)
		if err != nil {
			return fmt.Errorf("creating month view: %w", err)
		}
		v.Dispatch(calendar.SetComparison{Range: comparison})
		v.Attach(m.bus, m.queue.push)
		m.views = append(m.views, v)
	}
	m.realign(0)
	return nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.initState.NeedsInit {
		return nil
	}
	return commands.LoadLatest(m.repo)
}

// Close detaches the month views from the release bus.
func (m Model) Close() {
	for _, v := range m.views {
		v.Detach()
	}
}

// Run starts the TUI.
func Run(repo selection.Repository, cfg *config.Config) error {
	return RunWithDebug(repo, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo selection.Repository, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	initialRepo := repo
	var initState InitState

	if repo == nil {
		state, err := DetectInitState(cfg)
		if err != nil {
			return err
		}
		initState = state
		if !state.NeedsInit {
			repo, err = openRepo(state.DBPath)
			if err != nil {
				return err
			}
		}
	}

	model, err := New(repo, cfg, WithInitState(initState))
	if err != nil {
		return err
	}
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	finalModel, err := p.Run()
	if initialRepo == nil {
		if m, ok := finalModel.(Model); ok && m.repo != nil {
			_ = m.repo.Close()
		}
	}
	return err
}

func newHelp(styles *Styles) help.Model {
	h := help.New()
	h.Styles.ShortKey = styles.HelpStyle.Bold(true)
	h.Styles.ShortDesc = styles.HelpStyle
	h.Styles.ShortSeparator = styles.HelpStyle
	h.Styles.FullKey = styles.HelpStyle.Bold(true)
	h.Styles.FullDesc = styles.HelpStyle
	h.Styles.FullSeparator = styles.HelpStyle
	h.Styles.Ellipsis = styles.HelpStyle
	return h
}

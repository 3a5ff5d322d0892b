package calendar

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/javiermolinar/rangecal/internal/dateadapter"
	"github.com/javiermolinar/rangecal/internal/drag"
	"github.com/javiermolinar/rangecal/internal/event"
	"github.com/javiermolinar/rangecal/internal/navigator"
	"github.com/javiermolinar/rangecal/internal/selection"
)

// Config is the fixed configuration of a month view.
type Config struct {
	Adapter dateadapter.Adapter
	// Strategy builds ranges; nil means plain single-date selection.
	Strategy   selection.Strategy
	Mode       selection.Mode
	Comparator selection.Comparator

	MinDate    *time.Time
	MaxDate    *time.Time
	DateFilter func(time.Time) bool
	DateClass  func(time.Time) []string
	RTL        bool

	LabelMinRequiredCells int

	// Grid identifies this view on a shared release bus.
	Grid   drag.GridID
	Logger *zap.Logger
}

// FocusState holds the focus flags of a month view.
type FocusState struct {
	// SkipNextFocus drops the next Focus interaction, which the host
	// produces when it moves focus itself.
	SkipNextFocus bool
	// FocusPending is set when the active cell should receive focus once
	// the host has rendered.
	FocusPending bool
}

// State is the complete state of a month view. It is a value: Apply
// returns a new State and leaves its argument untouched.
type State struct {
	cfg Config

	Selection  selection.Selection
	Comparison event.DateRange
	Preview    event.DateRange

	Drag  drag.Controller
	Nav   navigator.Navigator
	Focus FocusState

	// LastKey is the outcome of the most recent key interaction, which
	// tells the host whether to suppress default handling.
	LastKey navigator.Result

	Derived DerivedState
}

// New creates the state of a month view showing activeDate.
func New(cfg Config, activeDate time.Time) (State, error) {
	if cfg.Adapter == nil {
		return State{}, ErrMissingAdapter
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	st := State{
		cfg:       cfg,
		Selection: selection.Selection{Mode: cfg.Mode},
		Drag:      drag.New(cfg.Grid),
		Nav: navigator.New(cfg.Adapter, activeDate, navigator.Options{
			MinDate:    cfg.MinDate,
			MaxDate:    cfg.MaxDate,
			DateFilter: cfg.DateFilter,
			RTL:        cfg.RTL,
		}),
	}
	if err := st.refresh(); err != nil {
		return State{}, err
	}
	return st, nil
}

// Config returns the view configuration.
func (s State) Config() Config { return s.cfg }

// ActiveDate returns the date under the keyboard cursor.
func (s State) ActiveDate() time.Time { return s.Nav.ActiveDate() }

// IsRange reports whether the view selects ranges.
func (s State) IsRange() bool { return s.cfg.Mode == selection.Range }

// Dragging reports whether a drag is engaged.
func (s State) Dragging() bool { return s.Drag.Engaged() }

func (s State) inputs() Inputs {
	return Inputs{
		Adapter:               s.cfg.Adapter,
		ActiveDate:            s.Nav.ActiveDate(),
		MinDate:               s.cfg.MinDate,
		MaxDate:               s.cfg.MaxDate,
		DateFilter:            s.cfg.DateFilter,
		DateClass:             s.cfg.DateClass,
		Selection:             s.Selection.Bounds(),
		Comparison:            s.Comparison,
		Preview:               s.Preview,
		IsRange:               s.IsRange(),
		LabelMinRequiredCells: s.cfg.LabelMinRequiredCells,
		Grid:                  s.Derived.Grid,
	}
}

// refresh recomputes the derived state and hands the new selection range
// to the drag controller.
func (s *State) refresh() error {
	d, err := ComputeDerivedState(s.inputs())
	if err != nil {
		return fmt.Errorf("computing month view: %w", err)
	}
	s.Derived = d
	s.Drag.SetRange(toRange(s.cfg.Adapter, s.Selection.Bounds()), s.IsRange())
	return nil
}

// coordinator rebuilds a selection coordinator over a copy of the state's
// selection, so the state itself is never shared.
func (s State) coordinator() *selection.Coordinator {
	model := selection.NewModel(s.cfg.Mode,
		selection.WithComparator(s.cfg.Comparator),
		selection.WithLogger(s.cfg.Logger),
	)
	model.SetDate(s.Selection.Date)
	model.SetRange(s.Selection.Range)

	c, err := selection.NewCoordinator(s.cfg.Adapter, model, s.cfg.Strategy)
	if err != nil {
		// New guarantees an adapter and the model is built above.
		panic(err)
	}
	c.SetComparison(s.Comparison)
	c.SetPreview(s.Preview)
	return c
}

// absorb copies the coordinator's selection and preview back into s.
func (s *State) absorb(c *selection.Coordinator) {
	s.Selection = c.Model().Selection()
	s.Preview = c.Preview()
}

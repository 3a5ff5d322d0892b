package selection

import (
	"time"

	"go.uber.org/zap"

	"github.com/javiermolinar/rangecal/internal/event"
)

// Mode is the kind of value a Model holds.
type Mode int

const (
	Single Mode = iota
	Range
)

func (m Mode) String() string {
	if m == Range {
		return "range"
	}
	return "single"
}

// Selection is the value held by a Model.
type Selection struct {
	Mode  Mode
	Date  *time.Time      // Single mode
	Range event.DateRange // Range mode
}

// Bounds returns the selection as a range. A single date is a degenerate
// range.
func (s Selection) Bounds() event.DateRange {
	if s.Mode == Range {
		return s.Range
	}
	return event.DateRange{Start: s.Date, End: s.Date}
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return s.Bounds().Empty()
}

// Comparator reports whether two dates are the same value for the
// consumer. It may panic; Model recovers and treats that as no match.
type Comparator func(a, b time.Time) bool

// Model holds the committed selection.
type Model struct {
	sel     Selection
	compare Comparator
	logger  *zap.Logger
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithComparator sets the equality used to detect an unchanged selection.
func WithComparator(c Comparator) ModelOption {
	return func(m *Model) {
		if c != nil {
			m.compare = c
		}
	}
}

// WithLogger sets the logger used for developer warnings.
func WithLogger(l *zap.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewModel creates an empty model in the given mode.
func NewModel(mode Mode, opts ...ModelOption) *Model {
	m := &Model{
		sel:    Selection{Mode: mode},
		logger: zap.NewNop(),
		compare: func(a, b time.Time) bool {
			return a.Year() == b.Year() && a.YearDay() == b.YearDay()
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Selection returns the committed selection.
func (m *Model) Selection() Selection { return m.sel }

// Mode returns the model's mode.
func (m *Model) Mode() Mode { return m.sel.Mode }

// SetDate replaces a single-date selection.
func (m *Model) SetDate(d *time.Time) {
	m.sel.Date = d
}

// SetRange replaces a range selection.
func (m *Model) SetRange(r event.DateRange) {
	m.sel.Range = r
}

// Clear empties the selection.
func (m *Model) Clear() {
	m.sel = Selection{Mode: m.sel.Mode}
}

// Equal compares two optional dates with the consumer comparator. A
// panicking comparator is logged and counts as no match.
func (m *Model) Equal(a, b *time.Time) (same bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	defer func() {
		if r := recover(); r != nil {
			m.logger.Warn("date comparator panicked; treating values as different",
				zap.Any("panic", r),
				zap.Time("a", *a),
				zap.Time("b", *b),
			)
			same = false
		}
	}()
	return m.compare(*a, *b)
}

// Package grid builds month grids and maps dates to grid positions.
//
// A month grid is a list of week rows. Row 0 holds only the days of the
// first week, so it is shorter than the others whenever the month does not
// start on the first day of the week; its first cell sits at visual column
// FirstRowOffset. Every other row holds up to seven cells.
package grid

import (
	"strings"
	"time"

	"github.com/javiermolinar/rangecal/internal/dateadapter"
	"github.com/javiermolinar/rangecal/internal/rangecmp"
)

// DaysPerWeek is the number of columns in a grid.
const DaysPerWeek = 7

// DefaultLabelMinRequiredCells is the leading blank width needed to host
// the month label inside row 0.
const DefaultLabelMinRequiredCells = 3

// DefaultAriaLabelLayout formats a cell's accessible label.
const DefaultAriaLabelLayout = "January 2, 2006"

// Cell is one day of a month grid.
type Cell struct {
	Value        int
	DisplayValue string
	AriaLabel    string
	Enabled      bool
	CSSClasses   []string
	CompareValue int64
	// RawValue belongs to the caller's date domain.
	RawValue time.Time
}

// Weekday is a column header.
type Weekday struct {
	ID     int
	Long   string
	Narrow string
}

// BuildOptions configures Build.
type BuildOptions struct {
	ActiveDate time.Time
	MinDate    *time.Time
	MaxDate    *time.Time
	DateFilter func(time.Time) bool
	DateClass  func(time.Time) []string

	LabelMinRequiredCells int
	AriaLabelLayout       string
}

// MonthGrid is the week grid of one month.
type MonthGrid struct {
	Year  int
	Month int // 0-based

	FirstRowOffset    int
	Rows              [][]Cell
	Weekdays          []Weekday
	MonthLabel        string
	TodayCompareValue rangecmp.Bound

	// LabelRow is true when the month label needs a row of its own because
	// row 0's leading blanks are too narrow to hold it.
	LabelRow bool
}

// FirstRowOffset returns the number of leading blank cells in row 0.
func FirstRowOffset(dayOfWeekOfFirst, firstDayOfWeek int) int {
	return (DaysPerWeek + dayOfWeekOfFirst - firstDayOfWeek) % DaysPerWeek
}

// ActiveCellIndex converts a (row, col) position to a linear cell index.
// Rows after the first are corrected for the cells missing from row 0.
func ActiveCellIndex(row, col, firstRowOffset int) int {
	idx := row*DaysPerWeek + col
	if row > 0 {
		idx -= firstRowOffset
	}
	return idx
}

// RowCol is the inverse of ActiveCellIndex.
func RowCol(index, firstRowOffset int) (row, col int) {
	firstRowLen := DaysPerWeek - firstRowOffset
	if index < firstRowLen {
		return 0, index
	}
	shifted := index + firstRowOffset
	return shifted / DaysPerWeek, shifted % DaysPerWeek
}

// VisualColumn returns the screen column of the cell at (row, col).
func VisualColumn(row, col, firstRowOffset int) int {
	if row == 0 {
		return col + firstRowOffset
	}
	return col
}

// CompareValue returns the epoch milliseconds of d normalized to midnight
// UTC of its year, month and day, so values from different grids order
// correctly as plain integers.
func CompareValue(a dateadapter.Adapter, d time.Time) int64 {
	return time.Date(a.Year(d), time.Month(a.Month(d)+1), a.Date(d), 0, 0, 0, 0, time.UTC).UnixMilli()
}

// CompareBound is CompareValue for an optional date.
func CompareBound(a dateadapter.Adapter, d *time.Time) rangecmp.Bound {
	if d == nil {
		return rangecmp.None
	}
	return rangecmp.At(CompareValue(a, *d))
}

// ShouldEnable reports whether d is within the bounds and passes the filter.
func ShouldEnable(a dateadapter.Adapter, d time.Time, minDate, maxDate *time.Time, filter func(time.Time) bool) bool {
	if minDate != nil && a.CompareDate(d, *minDate) < 0 {
		return false
	}
	if maxDate != nil && a.CompareDate(d, *maxDate) > 0 {
		return false
	}
	return filter == nil || filter(d)
}

// Build creates the grid for the month containing opts.ActiveDate.
func Build(a dateadapter.Adapter, opts BuildOptions) (*MonthGrid, error) {
	labelMin := opts.LabelMinRequiredCells
	if labelMin <= 0 {
		labelMin = DefaultLabelMinRequiredCells
	}
	ariaLayout := opts.AriaLabelLayout
	if ariaLayout == "" {
		ariaLayout = DefaultAriaLabelLayout
	}

	year, month := a.Year(opts.ActiveDate), a.Month(opts.ActiveDate)
	first, err := a.CreateDate(year, month, 1)
	if err != nil {
		return nil, err
	}

	g := &MonthGrid{
		Year:           year,
		Month:          month,
		FirstRowOffset: FirstRowOffset(a.DayOfWeek(first), a.FirstDayOfWeek()),
		Weekdays:       weekdays(a),
		MonthLabel:     strings.ToUpper(a.MonthNames(dateadapter.NameShort)[month]),
	}
	g.LabelRow = g.FirstRowOffset < labelMin

	today := a.Today()
	if a.Year(today) == year && a.Month(today) == month {
		g.TodayCompareValue = rangecmp.At(CompareValue(a, today))
	}

	daysInMonth := a.NumDaysInMonth(first)
	dateNames := a.DateNames()
	g.Rows = [][]Cell{{}}
	for i, cell := 0, g.FirstRowOffset; i < daysInMonth; i, cell = i+1, cell+1 {
		if cell == DaysPerWeek {
			g.Rows = append(g.Rows, make([]Cell, 0, DaysPerWeek))
			cell = 0
		}
		date, err := a.CreateDate(year, month, i+1)
		if err != nil {
			return nil, err
		}
		c := Cell{
			Value:        i + 1,
			DisplayValue: dateNames[i],
			AriaLabel:    a.Format(date, ariaLayout),
			Enabled:      ShouldEnable(a, date, opts.MinDate, opts.MaxDate, opts.DateFilter),
			CompareValue: CompareValue(a, date),
			RawValue:     date,
		}
		if opts.DateClass != nil {
			c.CSSClasses = opts.DateClass(date)
		}
		last := len(g.Rows) - 1
		g.Rows[last] = append(g.Rows[last], c)
	}
	return g, nil
}

func weekdays(a dateadapter.Adapter) []Weekday {
	long := a.DayOfWeekNames(dateadapter.NameLong)
	narrow := a.DayOfWeekNames(dateadapter.NameNarrow)
	first := a.FirstDayOfWeek()

	days := make([]Weekday, DaysPerWeek)
	for i := range days {
		id := (first + i) % DaysPerWeek
		days[i] = Weekday{ID: id, Long: long[id], Narrow: narrow[id]}
	}
	return days
}

// NumCells returns the number of days in the grid.
func (g *MonthGrid) NumCells() int {
	n := 0
	for _, row := range g.Rows {
		n += len(row)
	}
	return n
}

// CellAt returns the cell at (row, col). Positions outside the grid miss
// without panicking, since a gesture may resolve against a grid that has
// just been rebuilt.
func (g *MonthGrid) CellAt(row, col int) (*Cell, bool) {
	if g == nil || row < 0 || row >= len(g.Rows) || col < 0 || col >= len(g.Rows[row]) {
		return nil, false
	}
	return &g.Rows[row][col], true
}

// CellAtIndex returns the cell with the given linear index.
func (g *MonthGrid) CellAtIndex(index int) (*Cell, bool) {
	if g == nil || index < 0 {
		return nil, false
	}
	row, col := RowCol(index, g.FirstRowOffset)
	return g.CellAt(row, col)
}

// CellAtVisual resolves a screen column (0..6) in the given row.
func (g *MonthGrid) CellAtVisual(row, visualCol int) (*Cell, bool) {
	if g == nil {
		return nil, false
	}
	col := visualCol
	if row == 0 {
		col -= g.FirstRowOffset
	}
	return g.CellAt(row, col)
}

// CellForDay returns the cell of the given day of the month.
func (g *MonthGrid) CellForDay(day int) (*Cell, bool) {
	return g.CellAtIndex(IndexForDay(day))
}

// IndexForDay returns the linear index of a day of the month.
func IndexForDay(day int) int {
	return day - 1
}

// Position returns the (row, col) of the cell at index.
func (g *MonthGrid) Position(index int) (row, col int) {
	return RowCol(index, g.FirstRowOffset)
}

// RowCount implements rangecmp.Rows.
func (g *MonthGrid) RowCount() int {
	if g == nil {
		return 0
	}
	return len(g.Rows)
}

// RowLen implements rangecmp.Rows.
func (g *MonthGrid) RowLen(row int) int {
	if g == nil || row < 0 || row >= len(g.Rows) {
		return 0
	}
	return len(g.Rows[row])
}

// CompareValueAt implements rangecmp.Rows.
func (g *MonthGrid) CompareValueAt(row, col int) (int64, bool) {
	c, ok := g.CellAt(row, col)
	if !ok {
		return 0, false
	}
	return c.CompareValue, true
}

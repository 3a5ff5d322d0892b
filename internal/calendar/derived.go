// Package calendar is the month view of the range-selection engine.
//
// ComputeDerivedState turns inputs into the grid and per-cell markers a
// renderer needs. Apply is the reducer that feeds pointer, focus and key
// interactions through the drag controller, the navigator and the
// selection coordinator, returning the new state and the events to emit.
package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/javiermolinar/rangecal/internal/dateadapter"
	"github.com/javiermolinar/rangecal/internal/event"
	"github.com/javiermolinar/rangecal/internal/grid"
	"github.com/javiermolinar/rangecal/internal/rangecmp"
)

// ErrMissingAdapter is returned when no date adapter is configured.
var ErrMissingAdapter = errors.New("calendar: date adapter is required")

// Inputs is everything the derived state depends on.
type Inputs struct {
	Adapter    dateadapter.Adapter
	ActiveDate time.Time
	MinDate    *time.Time
	MaxDate    *time.Time
	DateFilter func(time.Time) bool
	DateClass  func(time.Time) []string

	Selection  event.DateRange
	Comparison event.DateRange
	Preview    event.DateRange
	IsRange    bool

	LabelMinRequiredCells int

	// Grid is reused when it already shows the active month.
	Grid *grid.MonthGrid
}

// DerivedState is the read-only view of a month.
type DerivedState struct {
	Grid *grid.MonthGrid

	TodayCompareValue rangecmp.Bound
	RangeStart        rangecmp.Bound
	RangeEnd          rangecmp.Bound
	ComparisonStart   rangecmp.Bound
	ComparisonEnd     rangecmp.Bound
	PreviewStart      rangecmp.Bound
	PreviewEnd        rangecmp.Bound
	IsRange           bool
	FirstRowOffset    int
	MonthLabel        string

	// ActiveIndex is the linear index of the active date's cell.
	ActiveIndex int
	// Classes holds the markers of every cell, indexed like Grid.Rows.
	Classes [][]rangecmp.Classes
}

// ComputeDerivedState builds the grid for the active month and classifies
// every cell against the selection, comparison and preview ranges.
func ComputeDerivedState(in Inputs) (DerivedState, error) {
	a := in.Adapter
	if a == nil {
		return DerivedState{}, ErrMissingAdapter
	}

	g := in.Grid
	if g == nil || g.Year != a.Year(in.ActiveDate) || g.Month != a.Month(in.ActiveDate) {
		built, err := grid.Build(a, grid.BuildOptions{
			ActiveDate:            in.ActiveDate,
			MinDate:               in.MinDate,
			MaxDate:               in.MaxDate,
			DateFilter:            in.DateFilter,
			DateClass:             in.DateClass,
			LabelMinRequiredCells: in.LabelMinRequiredCells,
		})
		if err != nil {
			return DerivedState{}, fmt.Errorf("building month grid: %w", err)
		}
		g = built
	}

	main := toRange(a, in.Selection)
	comparison := toRange(a, in.Comparison)
	preview := toRange(a, in.Preview)

	d := DerivedState{
		Grid:              g,
		TodayCompareValue: g.TodayCompareValue,
		RangeStart:        main.Start,
		RangeEnd:          main.End,
		ComparisonStart:   comparison.Start,
		ComparisonEnd:     comparison.End,
		PreviewStart:      preview.Start,
		PreviewEnd:        preview.End,
		IsRange:           in.IsRange,
		FirstRowOffset:    g.FirstRowOffset,
		MonthLabel:        g.MonthLabel,
		ActiveIndex:       grid.IndexForDay(a.Date(in.ActiveDate)),
	}

	cl := rangecmp.Classifier{
		Main:       main,
		Comparison: comparison,
		Preview:    preview,
		IsRange:    in.IsRange,
		Today:      g.TodayCompareValue,
	}
	d.Classes = make([][]rangecmp.Classes, len(g.Rows))
	for r, row := range g.Rows {
		d.Classes[r] = make([]rangecmp.Classes, len(row))
		for c, cell := range row {
			d.Classes[r][c] = cl.Classify(cell.CompareValue, r, c, g)
		}
	}
	return d, nil
}

// ClassesAt returns the markers of the cell at (row, col).
func (d DerivedState) ClassesAt(row, col int) (rangecmp.Classes, bool) {
	if row < 0 || row >= len(d.Classes) || col < 0 || col >= len(d.Classes[row]) {
		return 0, false
	}
	return d.Classes[row][col], true
}

// ActiveCell returns the cell under the keyboard cursor.
func (d DerivedState) ActiveCell() (*grid.Cell, bool) {
	return d.Grid.CellAtIndex(d.ActiveIndex)
}

func toRange(a dateadapter.Adapter, r event.DateRange) rangecmp.Range {
	return rangecmp.Range{
		Start: grid.CompareBound(a, r.Start),
		End:   grid.CompareBound(a, r.End),
	}
}

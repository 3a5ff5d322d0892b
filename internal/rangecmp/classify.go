package rangecmp

import "strings"

// Classes is the set of range markers a cell renders with.
type Classes uint32

const (
	Selected Classes = 1 << iota
	Today
	RangeStart
	RangeEnd
	InRange
	ComparisonStart
	ComparisonEnd
	InComparisonRange
	ComparisonIdentical
	ComparisonBridgeStart
	ComparisonBridgeEnd
	PreviewStart
	PreviewEnd
	InPreview
)

var classNames = []struct {
	c    Classes
	name string
}{
	{Selected, "selected"},
	{Today, "today"},
	{RangeStart, "range-start"},
	{RangeEnd, "range-end"},
	{InRange, "in-range"},
	{ComparisonStart, "comparison-start"},
	{ComparisonEnd, "comparison-end"},
	{InComparisonRange, "in-comparison-range"},
	{ComparisonIdentical, "comparison-identical"},
	{ComparisonBridgeStart, "comparison-bridge-start"},
	{ComparisonBridgeEnd, "comparison-bridge-end"},
	{PreviewStart, "preview-start"},
	{PreviewEnd, "preview-end"},
	{InPreview, "in-preview"},
}

// Has reports whether all markers in m are set.
func (c Classes) Has(m Classes) bool {
	return c&m == m
}

// String lists the set markers, space separated.
func (c Classes) String() string {
	var names []string
	for _, cn := range classNames {
		if c.Has(cn.c) {
			names = append(names, cn.name)
		}
	}
	return strings.Join(names, " ")
}

// Classifier composes the main, comparison and preview ranges for
// rendering. It is the only place the three ranges meet.
type Classifier struct {
	Main       Range
	Comparison Range
	Preview    Range
	// IsRange is false in single-date mode, which disables every in-range
	// marker.
	IsRange bool
	Today   Bound
}

// Classify returns the markers for the cell at (row, col) holding v.
func (cl Classifier) Classify(v int64, row, col int, rows Rows) Classes {
	var c Classes
	if cl.Main.Start.Is(v) || cl.Main.End.Is(v) {
		c |= Selected
	}
	if cl.Today.Is(v) {
		c |= Today
	}

	if IsStart(v, cl.Main.Start, cl.Main.End) {
		c |= RangeStart
	}
	if IsEnd(v, cl.Main.Start, cl.Main.End) {
		c |= RangeEnd
	}
	if IsInRange(v, cl.Main.Start, cl.Main.End, cl.IsRange) {
		c |= InRange
	}

	if IsStart(v, cl.Comparison.Start, cl.Comparison.End) {
		c |= ComparisonStart
	}
	if IsEnd(v, cl.Comparison.Start, cl.Comparison.End) {
		c |= ComparisonEnd
	}
	if IsInRange(v, cl.Comparison.Start, cl.Comparison.End, cl.IsRange) {
		c |= InComparisonRange
	}
	if IsIdentical(v, cl.Comparison.Start, cl.Comparison.End) {
		c |= ComparisonIdentical
	}
	if cl.IsRange {
		if IsBridgeStart(v, row, col, rows, cl.Main, cl.Comparison) {
			c |= ComparisonBridgeStart
		}
		if IsBridgeEnd(v, row, col, rows, cl.Main, cl.Comparison) {
			c |= ComparisonBridgeEnd
		}
	}

	if IsStart(v, cl.Preview.Start, cl.Preview.End) {
		c |= PreviewStart
	}
	if IsEnd(v, cl.Preview.Start, cl.Preview.End) {
		c |= PreviewEnd
	}
	if IsInRange(v, cl.Preview.Start, cl.Preview.End, cl.IsRange) {
		c |= InPreview
	}
	return c
}

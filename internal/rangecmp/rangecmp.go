// Package rangecmp classifies grid values against numeric date ranges.
//
// Values are compare values (see grid.CompareValue). Every predicate is
// pure and looks at a single range; composing the main selection, the
// comparison range and the hover preview is left to Classifier.
package rangecmp

// Bound is an optional compare value.
type Bound struct {
	Value int64
	Valid bool
}

// At returns a set bound.
func At(v int64) Bound {
	return Bound{Value: v, Valid: true}
}

// None is the unset bound.
var None = Bound{}

// Is reports whether b is set and equal to v.
func (b Bound) Is(v int64) bool {
	return b.Valid && b.Value == v
}

// Range is a pair of optional bounds with Start <= End when both are set.
type Range struct {
	Start Bound
	End   Bound
}

// Degenerate reports whether both bounds are set and equal.
func (r Range) Degenerate() bool {
	return r.Start.Valid && r.End.Valid && r.Start.Value == r.End.Value
}

// Empty reports whether neither bound is set.
func (r Range) Empty() bool {
	return !r.Start.Valid && !r.End.Valid
}

// IsStart reports whether v is the start cap of a non-degenerate range.
func IsStart(v int64, s, e Bound) bool {
	return e.Valid && s != e && v < e.Value && s.Is(v)
}

// IsEnd reports whether v is the end cap of a non-degenerate range.
func IsEnd(v int64, s, e Bound) bool {
	return s.Valid && s != e && v >= s.Value && e.Is(v)
}

// IsInRange reports whether v lies inside a complete, non-degenerate range.
// It is always false when enabled is false.
func IsInRange(v int64, s, e Bound, enabled bool) bool {
	return enabled && s.Valid && e.Valid && s != e && v >= s.Value && v <= e.Value
}

// IsIdentical reports whether v is the single value of a degenerate range.
// IsStart and IsEnd are both false in that case.
func IsIdentical(v int64, s, e Bound) bool {
	return s == e && s.Is(v)
}

// Rows gives positional access to the compare values of a grid. Row 0 may
// be shorter than the others.
type Rows interface {
	RowCount() int
	RowLen(row int) int
	CompareValueAt(row, col int) (int64, bool)
}

// IsBridgeStart reports whether the comparison range starts at v inside the
// main range, away from the main start, and without the previous cell
// closing the main range. Such a cell connects the two ranges visually.
func IsBridgeStart(v int64, row, col int, rows Rows, main, comparison Range) bool {
	if !IsStart(v, comparison.Start, comparison.End) ||
		IsStart(v, main.Start, main.End) ||
		!IsInRange(v, main.Start, main.End, true) {
		return false
	}
	prev, ok := previousValue(rows, row, col)
	return ok && !IsEnd(prev, main.Start, main.End)
}

// IsBridgeEnd is the mirror of IsBridgeStart for the comparison end and the
// following cell.
func IsBridgeEnd(v int64, row, col int, rows Rows, main, comparison Range) bool {
	if !IsEnd(v, comparison.Start, comparison.End) ||
		IsEnd(v, main.Start, main.End) ||
		!IsInRange(v, main.Start, main.End, true) {
		return false
	}
	next, ok := nextValue(rows, row, col)
	return ok && !IsStart(next, main.Start, main.End)
}

func previousValue(rows Rows, row, col int) (int64, bool) {
	if rows == nil {
		return 0, false
	}
	if col > 0 {
		return rows.CompareValueAt(row, col-1)
	}
	if row == 0 {
		return 0, false
	}
	return rows.CompareValueAt(row-1, rows.RowLen(row-1)-1)
}

func nextValue(rows Rows, row, col int) (int64, bool) {
	if rows == nil {
		return 0, false
	}
	if col+1 < rows.RowLen(row) {
		return rows.CompareValueAt(row, col+1)
	}
	if row+1 >= rows.RowCount() {
		return 0, false
	}
	return rows.CompareValueAt(row+1, 0)
}

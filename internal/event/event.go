// Package event defines the events a month view emits to its host.
package event

import (
	"fmt"
	"time"

	"github.com/javiermolinar/rangecal/internal/grid"
)

// Event is implemented by every month view event.
type Event interface {
	Name() string
}

// DateRange is a possibly incomplete date range. A nil bound is unset.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Complete reports whether both bounds are set.
func (r DateRange) Complete() bool {
	return r.Start != nil && r.End != nil
}

// Empty reports whether neither bound is set.
func (r DateRange) Empty() bool {
	return r.Start == nil && r.End == nil
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", formatDate(r.Start), formatDate(r.End))
}

// SelectedValueChange reports a new selected date. Date is nil when the
// selection was cleared.
type SelectedValueChange struct {
	Date *time.Time
}

// UserSelection reports any user-confirmed activation, including one that
// left the selection unchanged. Date is nil when the user cleared it.
type UserSelection struct {
	Date *time.Time
}

// ActiveDateChange reports that keyboard navigation moved the active date.
type ActiveDateChange struct {
	Date time.Time
}

// PreviewChange reports the hovered cell; Cell is nil when nothing is
// hovered or the hovered cell is disabled.
type PreviewChange struct {
	Cell *grid.Cell
}

// DragStarted reports a drag engaging on Origin.
type DragStarted struct {
	Origin time.Time
}

// DragEnded reports the range a drag produced, or nil when it was canceled
// or released outside any cell.
type DragEnded struct {
	Range *DateRange
}

func (SelectedValueChange) Name() string { return "selectedValueChange" }
func (UserSelection) Name() string       { return "userSelection" }
func (ActiveDateChange) Name() string    { return "activeDateChange" }
func (PreviewChange) Name() string       { return "previewChange" }
func (DragStarted) Name() string         { return "dragStarted" }
func (DragEnded) Name() string           { return "dragEnded" }

func formatDate(d *time.Time) string {
	if d == nil {
		return "_"
	}
	return d.Format("2006-01-02")
}

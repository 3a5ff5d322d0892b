package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/rangecal/internal/calendar"
	"github.com/javiermolinar/rangecal/internal/dateadapter"
	"github.com/javiermolinar/rangecal/internal/dateutil"
	"github.com/javiermolinar/rangecal/internal/grid"
	"github.com/javiermolinar/rangecal/internal/selection"
	"github.com/javiermolinar/rangecal/internal/summary"
	"github.com/javiermolinar/rangecal/internal/tui"
)

const (
	showCellWidth = 3
	showGridWidth = showCellWidth * grid.DaysPerWeek
	showGap       = "   "
)

func (a *App) showCmd() *cobra.Command {
	var (
		month   string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the calendar with the last saved selection",
		Long: `Print the configured months side by side without starting the
interactive picker.

The last saved selection and the configured comparison range are
highlighted. Without --month the calendar starts at the current month.`,
		Example: `  rangecal show
  rangecal show --month=2025-03`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			return a.runShow(cmd.Context(), cmd.OutOrStdout(), month, termWidth())
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "First month to show (YYYY-MM, defaults to the current month)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

func (a *App) runShow(ctx context.Context, w io.Writer, month string, width int) error {
	adapter, err := tui.NewAdapter(a.config, time.Now)
	if err != nil {
		return err
	}
	cc, comparison, err := tui.CalendarConfig(a.config, adapter, a.logger)
	if err != nil {
		return fmt.Errorf("configuring calendar: %w", err)
	}

	first := adapter.Today()
	if month != "" {
		m, err := dateutil.ParseMonth(month)
		if err != nil {
			return err
		}
		if first, err = adapter.CreateDate(m.Year(), int(m.Month())-1, 1); err != nil {
			return err
		}
	}

	sel, err := a.savedSelection(ctx, cc.Mode)
	if err != nil {
		return err
	}

	n := max(1, a.config.Calendar.MonthsShown)
	blocks := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		st, err := calendar.New(cc, adapter.AddCalendarMonths(first, i))
		if err != nil {
			return fmt.Errorf("creating month view: %w", err)
		}
		st, _ = calendar.Apply(st, calendar.SetComparison{Range: comparison})
		st, _ = calendar.Apply(st, calendar.SetSelection{Value: sel})
		blocks = append(blocks, monthLines(adapter, st))
	}

	perRow := max(1, (width+len(showGap))/(showGridWidth+len(showGap)))
	for start := 0; start < len(blocks); start += perRow {
		end := min(start+perRow, len(blocks))
		for _, line := range joinBlocks(blocks[start:end]) {
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
	}

	b := sel.Bounds()
	fmt.Fprintf(w, "%s %s\n", formatMuted("selection: "), orNone(dateutil.FormatRange(b.Start, b.End)))
	if comparison.Start != nil || comparison.End != nil {
		fmt.Fprintf(w, "%s %s\n", formatMuted("comparison:"), dateutil.FormatRange(comparison.Start, comparison.End))
	}
	sum, err := summary.Summarize(adapter, b, summary.Options{
		MinDate:    cc.MinDate,
		MaxDate:    cc.MaxDate,
		DateFilter: cc.DateFilter,
		Comparison: comparison,
	})
	if err == nil {
		fmt.Fprintf(w, "%s %s\n", formatMuted("days:      "), describeSummary(sum))
	}
	return nil
}

func describeSummary(s *summary.RangeSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d", s.Days)
	if s.Selectable != s.Days {
		fmt.Fprintf(&b, " (%d selectable)", s.Selectable)
	}
	if s.Overlap > 0 {
		fmt.Fprintf(&b, ", %d shared with comparison", s.Overlap)
	}
	return b.String()
}

// savedSelection returns the latest saved selection, or an empty one when
// nothing has been saved. A missing database is not created.
func (a *App) savedSelection(ctx context.Context, mode selection.Mode) (selection.Selection, error) {
	empty := selection.Selection{Mode: mode}
	if a.repo == nil {
		if _, err := os.Stat(a.config.Storage.DBPath); errors.Is(err, os.ErrNotExist) {
			a.logger.Debug("no store yet", zap.String("path", a.config.Storage.DBPath))
			return empty, nil
		}
	}
	if err := a.ensureRepo(); err != nil {
		return empty, err
	}
	saved, err := a.repo.Latest(ctx)
	if errors.Is(err, selection.ErrNotFound) {
		return empty, nil
	}
	if err != nil {
		return empty, fmt.Errorf("loading selection: %w", err)
	}
	return saved.SelectionAs(mode), nil
}

// monthLines renders one month as fixed-width lines: the title, the
// weekday header and the week rows.
func monthLines(a dateadapter.Adapter, st calendar.State) []string {
	g := st.Derived.Grid
	rtl := st.Config().RTL

	title := a.Format(st.ActiveDate(), "January 2006")
	pad := max(0, showGridWidth-len(title))
	lines := []string{formatHeader(strings.Repeat(" ", pad/2) + title + strings.Repeat(" ", pad-pad/2))}

	header := make([]string, len(g.Weekdays))
	for c, wd := range g.Weekdays {
		header[c] = fmt.Sprintf("%*s", showCellWidth, wd.Long[:2])
	}
	lines = append(lines, formatMuted(joinRow(header, rtl)))

	blank := strings.Repeat(" ", showCellWidth)
	for r, row := range g.Rows {
		cells := make([]string, grid.DaysPerWeek)
		for i := range cells {
			cells[i] = blank
		}
		for c, cell := range row {
			text := fmt.Sprintf("%*s", showCellWidth, cell.DisplayValue)
			classes, _ := st.Derived.ClassesAt(r, c)
			if col := dayColor(classes, cell.Enabled); col != nil {
				text = col.Sprint(text)
			}
			cells[grid.VisualColumn(r, c, g.FirstRowOffset)] = text
		}
		lines = append(lines, joinRow(cells, rtl))
	}
	return lines
}

// joinRow concatenates cells, mirrored for right-to-left.
func joinRow(cells []string, rtl bool) string {
	if !rtl {
		return strings.Join(cells, "")
	}
	var b strings.Builder
	for i := len(cells) - 1; i >= 0; i-- {
		b.WriteString(cells[i])
	}
	return b.String()
}

// joinBlocks lays month blocks side by side. Every block line is
// showGridWidth columns wide, so shorter blocks are padded with blank lines.
func joinBlocks(blocks [][]string) []string {
	height := 0
	for _, b := range blocks {
		height = max(height, len(b))
	}
	blank := strings.Repeat(" ", showGridWidth)
	out := make([]string, height)
	for i := range out {
		parts := make([]string, len(blocks))
		for j, b := range blocks {
			parts[j] = blank
			if i < len(b) {
				parts[j] = b[i]
			}
		}
		out[i] = strings.TrimRight(strings.Join(parts, showGap), " ")
	}
	return out
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

package ui

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rangecal/internal/dateutil"
	"github.com/javiermolinar/rangecal/internal/selection"
)

func (a *App) listCmd() *cobra.Command {
	var (
		limit     int
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved selections",
		Long: `List saved selections, most recent first.

If --start is specified, only selections touching that day are listed.
If both --start and --end are specified, only selections overlapping
that range (inclusive) are listed.

The short ID in the first column can be passed to 'rangecal delete'.`,
		Example: `  rangecal list
  rangecal list --limit=5
  rangecal list --start=2025-01-15 --end=2025-01-20`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var within *dateutil.DateRange
			if startDate != "" {
				dr, err := dateutil.NewDateRange(startDate, endDate)
				if err != nil {
					return err
				}
				within = dr
			} else if endDate != "" {
				return errors.New("--end requires --start")
			}

			if err := a.ensureRepo(); err != nil {
				return err
			}

			fetch := limit
			if within != nil {
				fetch = 0
			}
			saved, err := a.repo.List(cmd.Context(), fetch)
			if err != nil {
				return fmt.Errorf("listing selections: %w", err)
			}
			if within != nil {
				saved = overlapping(saved, *within)
				if limit > 0 && len(saved) > limit {
					saved = saved[:limit]
				}
			}

			out := cmd.OutOrStdout()
			if len(saved) == 0 {
				fmt.Fprintln(out, "No saved selections.")
				return nil
			}
			printSaved(out, saved)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of selections to show (0 for all)")
	cmd.Flags().StringVar(&startDate, "start", "", "Start date of the range to filter by (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "End date of the range to filter by (YYYY-MM-DD, defaults to start date)")
	return cmd
}

func printSaved(w io.Writer, saved []*selection.Saved) {
	fmt.Fprintln(w, formatHeader(fmt.Sprintf("%-8s  %-6s  %-22s  %4s  %s", "ID", "MODE", "DATES", "DAYS", "SAVED")))
	for _, s := range saved {
		start := s.Start
		fmt.Fprintf(w, "%-8s  %-6s  %-22s  %4s  %s\n",
			shortID(s),
			s.Mode,
			dateutil.FormatRange(&start, s.End),
			days(s),
			formatMuted(s.CreatedAt.Local().Format("2006-01-02 15:04")),
		)
	}
}

// overlapping keeps the selections sharing at least one day with r. An open
// range only covers its start date.
func overlapping(saved []*selection.Saved, r dateutil.DateRange) []*selection.Saved {
	from, to := r.Start.Format(dateutil.DateLayout), r.End.Format(dateutil.DateLayout)
	var out []*selection.Saved
	for _, s := range saved {
		start := s.Start.Format(dateutil.DateLayout)
		end := start
		if s.End != nil {
			end = s.End.Format(dateutil.DateLayout)
		}
		if start <= to && end >= from {
			out = append(out, s)
		}
	}
	return out
}

func shortID(s *selection.Saved) string {
	return s.ID.String()[:8]
}

// days counts the dates a saved selection covers; an open range has no
// count.
func days(s *selection.Saved) string {
	switch {
	case s.Mode == selection.Single:
		return "1"
	case s.End == nil:
		return "-"
	}
	return strconv.Itoa(dateutil.DateRange{Start: s.Start, End: *s.End}.Days())
}

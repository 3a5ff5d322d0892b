package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/javiermolinar/rangecal/internal/rangecmp"
)

// Color definitions for consistent styling across the UI.
var (
	// Selection: reverse video on the edges, cyan inside
	colorRangeEdge = color.New(color.FgBlack, color.BgCyan, color.Bold)
	colorRange     = color.New(color.FgCyan)

	// Comparison range: magenta
	colorComparisonEdge = color.New(color.FgBlack, color.BgMagenta)
	colorComparison     = color.New(color.FgMagenta)

	// Overlap of selection and comparison
	colorOverlap = color.New(color.FgBlue, color.Bold)

	colorToday    = color.New(color.Underline, color.Bold)
	colorDisabled = color.New(color.FgWhite, color.Faint)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// dayColor picks the color for a day cell. Selection wins over the
// comparison range, which wins over today.
func dayColor(c rangecmp.Classes, enabled bool) *color.Color {
	switch {
	case !enabled:
		return colorDisabled
	case c.Has(rangecmp.InRange) && c.Has(rangecmp.InComparisonRange):
		return colorOverlap
	case c.Has(rangecmp.RangeStart) || c.Has(rangecmp.RangeEnd) || c.Has(rangecmp.Selected):
		return colorRangeEdge
	case c.Has(rangecmp.InRange):
		return colorRange
	case c.Has(rangecmp.ComparisonStart) || c.Has(rangecmp.ComparisonEnd):
		return colorComparisonEdge
	case c.Has(rangecmp.InComparisonRange):
		return colorComparison
	case c.Has(rangecmp.Today):
		return colorToday
	}
	return nil
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

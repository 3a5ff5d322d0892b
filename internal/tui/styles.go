// Package tui provides the terminal user interface for rangecal.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/rangecal/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorRange       lipgloss.Color
	colorComparison  lipgloss.Color
	colorPreview     lipgloss.Color
	colorToday       lipgloss.Color
	colorWarning     lipgloss.Color

	colorTextOnAccent     lipgloss.Color
	colorTextOnRange      lipgloss.Color
	colorTextOnComparison lipgloss.Color

	// Range fills
	colorRangeBg      lipgloss.Color
	colorComparisonBg lipgloss.Color
	colorPreviewBg    lipgloss.Color
	colorOverlapBg    lipgloss.Color

	// Title style
	TitleStyle lipgloss.Style

	// Month box
	MonthBoxStyle        lipgloss.Style
	MonthBoxFocusedStyle lipgloss.Style
	MonthTitleStyle      lipgloss.Style
	MonthLabelStyle      lipgloss.Style
	WeekdayStyle         lipgloss.Style

	// Day cells
	DayStyle            lipgloss.Style
	DayDisabledStyle    lipgloss.Style
	DayTodayStyle       lipgloss.Style
	DayCursorStyle      lipgloss.Style
	RangeEdgeStyle      lipgloss.Style
	InRangeStyle        lipgloss.Style
	ComparisonEdgeStyle lipgloss.Style
	InComparisonStyle   lipgloss.Style
	OverlapStyle        lipgloss.Style
	PreviewEdgeStyle    lipgloss.Style
	InPreviewStyle      lipgloss.Style

	// Status message
	StatusStyle      lipgloss.Style
	StatusErrorStyle lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style

	// Init banner
	BannerStyle lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorRange = palette.Range
	s.colorComparison = palette.Comparison
	s.colorPreview = palette.Preview
	s.colorToday = palette.Today
	s.colorWarning = palette.Warning

	s.colorTextOnAccent = palette.TextOnAccent
	s.colorTextOnRange = palette.TextOnRange
	s.colorTextOnComparison = palette.TextOnComparison

	s.colorRangeBg = palette.RangeBg
	s.colorComparisonBg = palette.ComparisonBg
	s.colorPreviewBg = palette.PreviewBg
	s.colorOverlapBg = palette.OverlapBg

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.MonthBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorBg).
		Background(s.colorBg).
		Padding(0, monthBoxPadX)

	s.MonthBoxFocusedStyle = s.MonthBoxStyle.
		BorderForeground(s.colorAccent)

	s.MonthTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Width(gridWidth).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.MonthLabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.WeekdayStyle = lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(cellWidth).
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	// Day cells share one width so fills join into a continuous band.
	s.DayStyle = lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(cellWidth).
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.DayDisabledStyle = s.DayStyle.
		Foreground(s.colorFgMuted).
		Faint(true)

	s.DayTodayStyle = s.DayStyle.
		Foreground(s.colorToday).
		Bold(true).
		Underline(true)

	s.DayCursorStyle = s.DayStyle.
		Foreground(s.colorTextOnAccent).
		Background(s.colorAccent).
		Bold(true)

	s.RangeEdgeStyle = s.DayStyle.
		Foreground(s.colorTextOnRange).
		Background(s.colorRange).
		Bold(true)

	s.InRangeStyle = s.DayStyle.
		Background(s.colorRangeBg)

	s.ComparisonEdgeStyle = s.DayStyle.
		Foreground(s.colorTextOnComparison).
		Background(s.colorComparison).
		Bold(true)

	s.InComparisonStyle = s.DayStyle.
		Background(s.colorComparisonBg)

	s.OverlapStyle = s.DayStyle.
		Background(s.colorOverlapBg)

	s.PreviewEdgeStyle = s.DayStyle.
		Foreground(s.colorPreview).
		Background(s.colorPreviewBg).
		Bold(true).
		Underline(true)

	s.InPreviewStyle = s.DayStyle.
		Background(s.colorPreviewBg)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.StatusErrorStyle = s.StatusStyle.
		Foreground(s.colorWarning).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.BannerStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg)

	return s
}

// Package tui provides the terminal user interface for rangecal.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/rangecal/internal/rangecmp"
)

// StyleCache resolves the style of a day cell from its markers. Resolved
// styles are memoized per marker set.
type StyleCache struct {
	styles   *Styles
	resolved map[cellKey]lipgloss.Style
}

type cellKey struct {
	classes rangecmp.Classes
	enabled bool
	cursor  bool
}

// NewStyleCache creates an empty cache over styles.
func NewStyleCache(styles *Styles) StyleCache {
	return StyleCache{styles: styles, resolved: make(map[cellKey]lipgloss.Style)}
}

// Cell returns the style of a day cell. The keyboard cursor wins over
// every range marker, and the main range wins over the comparison, which
// wins over the preview.
func (c StyleCache) Cell(classes rangecmp.Classes, enabled, cursor bool) lipgloss.Style {
	k := cellKey{classes: classes, enabled: enabled, cursor: cursor}
	if st, ok := c.resolved[k]; ok {
		return st
	}
	st := c.resolve(k)
	if c.resolved != nil {
		c.resolved[k] = st
	}
	return st
}

func (c StyleCache) resolve(k cellKey) lipgloss.Style {
	s := c.styles
	cl := k.classes
	inMain := cl.Has(rangecmp.InRange)
	inComparison := cl.Has(rangecmp.InComparisonRange)

	switch {
	case k.cursor:
		return s.DayCursorStyle
	case !k.enabled:
		return s.DayDisabledStyle
	case cl.Has(rangecmp.Selected), cl.Has(rangecmp.RangeStart), cl.Has(rangecmp.RangeEnd):
		return s.RangeEdgeStyle
	case cl.Has(rangecmp.ComparisonBridgeStart), cl.Has(rangecmp.ComparisonBridgeEnd):
		return s.OverlapStyle.Bold(true)
	case inMain && inComparison:
		return s.OverlapStyle
	case inMain:
		return s.InRangeStyle
	case cl.Has(rangecmp.ComparisonStart), cl.Has(rangecmp.ComparisonEnd), cl.Has(rangecmp.ComparisonIdentical):
		return s.ComparisonEdgeStyle
	case inComparison:
		return s.InComparisonStyle
	case cl.Has(rangecmp.PreviewStart), cl.Has(rangecmp.PreviewEnd):
		return s.PreviewEdgeStyle
	case cl.Has(rangecmp.InPreview):
		return s.InPreviewStyle
	case cl.Has(rangecmp.Today):
		return s.DayTodayStyle
	}
	return s.DayStyle
}

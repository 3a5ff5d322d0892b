// Package tui provides the terminal user interface for rangecal.
package tui

import "github.com/charmbracelet/lipgloss"

// Grid geometry. Every month box has the same width, so the screen
// position of a day follows from the box index, the row and the column.
const (
	cellWidth    = 4
	gridWidth    = cellWidth * 7
	monthBoxPadX = 1
	// monthBoxWidth includes the border and the padding.
	monthBoxWidth = gridWidth + 2*monthBoxPadX + 2
	monthBoxGap   = 1
	headerHeight  = 1
	// Lines inside a box above the first week row: title and weekdays.
	monthPreambleLines = 2
)

// LayoutCache stores layout dimensions derived from the window size.
type LayoutCache struct {
	Width  int
	Height int

	// Top is the screen row of the month boxes' top border.
	Top int
	// Left is the screen column of the first month box.
	Left int

	FooterStyle lipgloss.Style
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	total := len(m.views)*monthBoxWidth + max(0, len(m.views)-1)*monthBoxGap
	left := 0
	if width > total {
		left = (width - total) / 2
	}
	top := headerHeight
	if m.initState.NeedsInit {
		top++
	}
	return LayoutCache{
		Width:       width,
		Height:      height,
		Top:         top,
		Left:        left,
		FooterStyle: lipgloss.NewStyle().Width(max(0, width)).Background(m.styles.colorBg),
	}
}

// boxLeft returns the screen column of month box i.
func (l LayoutCache) boxLeft(i int) int {
	return l.Left + i*(monthBoxWidth+monthBoxGap)
}

// boxAt returns the month box under screen column x and the column inside
// its content area.
func (l LayoutCache) boxAt(x, views int) (box, contentX int, ok bool) {
	if x < l.Left {
		return 0, 0, false
	}
	box = (x - l.Left) / (monthBoxWidth + monthBoxGap)
	if box >= views {
		return 0, 0, false
	}
	contentX = x - l.boxLeft(box) - 1 - monthBoxPadX
	if contentX < 0 || contentX >= gridWidth {
		return 0, 0, false
	}
	return box, contentX, true
}

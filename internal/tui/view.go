package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/rangecal/internal/calendar"
	"github.com/javiermolinar/rangecal/internal/grid"
)

// View renders the header, the month boxes side by side and the footer.
func (m Model) View() string {
	sections := []string{m.renderHeader()}
	if m.initState.NeedsInit {
		sections = append(sections, m.renderBanner())
	}
	sections = append(sections, m.renderMonths(), m.renderFooter())
	return m.styles.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderHeader() string {
	title := m.styles.TitleStyle.Render("rangecal")
	sel := m.selectionText()
	if sel == "" {
		sel = "no selection"
	}
	right := m.styles.StatusStyle.Render(sel)
	if cmp := m.focusedView().State().Comparison; !cmp.Empty() {
		right += m.styles.HelpStyle.Render("  vs " + cmp.String())
	}
	return fitLine(title, right, m.width, m.styles.StatusStyle)
}

func (m Model) renderBanner() string {
	pending := m.initState.Pending()
	if pending == "" {
		pending = "selection store"
	}
	text := "Selections are not saved yet. Press i to create the " + pending + "."
	if m.width > 0 {
		text = ansi.Truncate(text, m.width, "…")
	}
	return m.styles.BannerStyle.Render(text)
}

func (m Model) renderMonths() string {
	parts := make([]string, 0, 2*len(m.views))
	gap := m.styles.AppStyle.Render(strings.Repeat(" ", monthBoxGap))
	for i, v := range m.views {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, m.renderMonth(i, v.State()))
	}
	months := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if m.layout.Left > 0 {
		months = m.styles.AppStyle.PaddingLeft(m.layout.Left).Render(months)
	}
	return months
}

// renderMonth draws one month box: the title, the weekday header, the
// optional label row and the week rows.
func (m Model) renderMonth(i int, st calendar.State) string {
	g := st.Derived.Grid
	rtl := st.Config().RTL
	s := m.styles

	lines := []string{
		s.MonthTitleStyle.Render(m.adapter.Format(st.ActiveDate(), "January 2006")),
	}

	header := make([]string, len(g.Weekdays))
	for c, wd := range g.Weekdays {
		header[c] = s.WeekdayStyle.Render(wd.Narrow)
	}
	lines = append(lines, joinCells(header, rtl))

	if g.LabelRow {
		lines = append(lines, s.MonthLabelStyle.Width(gridWidth).Render(" "+g.MonthLabel))
	}

	focused := i == m.focused
	for r, row := range g.Rows {
		cells := make([]string, 0, grid.DaysPerWeek)
		for c, cell := range row {
			classes, _ := st.Derived.ClassesAt(r, c)
			cursor := focused && grid.ActiveCellIndex(r, c, g.FirstRowOffset) == st.Derived.ActiveIndex
			cells = append(cells, m.styleCache.Cell(classes, cell.Enabled, cursor).Render(cell.DisplayValue))
		}
		for len(cells) < grid.DaysPerWeek && r > 0 {
			cells = append(cells, s.DayStyle.Render(""))
		}

		line := joinCells(cells, rtl)
		if r == 0 && g.FirstRowOffset > 0 {
			lead := s.DayStyle.Width(g.FirstRowOffset * cellWidth).Render("")
			if !g.LabelRow {
				w := g.FirstRowOffset * cellWidth
				lead = s.MonthLabelStyle.Width(w).Render(ansi.Truncate(" "+g.MonthLabel, w, ""))
			}
			if rtl {
				line += lead
			} else {
				line = lead + line
			}
		}
		lines = append(lines, line)
	}

	box := s.MonthBoxStyle
	if focused {
		box = s.MonthBoxFocusedStyle
	}
	return box.Render(strings.Join(lines, "\n"))
}

func (m Model) renderFooter() string {
	status := m.statusMsg
	style := m.styles.StatusStyle
	if m.statusErr {
		style = m.styles.StatusErrorStyle
	}
	if status == "" {
		status = " "
	}
	if m.width > 0 {
		status = ansi.Truncate(status, m.width, "…")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		style.Render(status),
		m.help.View(m.keys),
	)
}

// joinCells concatenates rendered cells, mirrored for right-to-left.
func joinCells(cells []string, rtl bool) string {
	if !rtl {
		return strings.Join(cells, "")
	}
	rev := make([]string, len(cells))
	for i, c := range cells {
		rev[len(cells)-1-i] = c
	}
	return strings.Join(rev, "")
}

// fitLine places left and right on one line of the given width, padding
// the gap with style. Without a width the parts are joined by two spaces.
func fitLine(left, right string, width int, style lipgloss.Style) string {
	if width <= 0 {
		return left + style.Render("  ") + right
	}
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		return ansi.Truncate(left+style.Render(" ")+right, width, "…")
	}
	return left + style.Render(strings.Repeat(" ", gap)) + right
}

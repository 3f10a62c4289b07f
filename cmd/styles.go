package cmd

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sumwatshade/surfmap/cmd/metric"
)

// Centralized styles for consistent UX across views.
var (
	appTitle       = "surfmap"
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("25")).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("247"))
	activeTabStyle = tabStyle.Bold(true).Foreground(lipgloss.Color("51")).Background(lipgloss.Color("236"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
	statusErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Padding(0, 1)
	dividerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	legendTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	legendNote     = lipgloss.NewStyle().Faint(true)
	bannerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("124")).Padding(1, 2)
	bannerHint     = lipgloss.NewStyle().Faint(true).Padding(1, 2)
)

// tabs renders the metric selector: one tab per registry metric, the
// active one highlighted.
func tabs(current string, width int) string {
	var rendered []string
	for _, k := range metric.Keys() {
		title := metric.Lookup(k).Title
		if k == current {
			rendered = append(rendered, activeTabStyle.Render(title))
		} else {
			rendered = append(rendered, tabStyle.Render(title))
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	if width > 0 {
		// Ensure line doesn't overflow; truncate softly.
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}

// legendView renders the active metric's legend verbatim from its style
// record: title, swatch+label per band, optional note.
func legendView(metricKey string, width int) string {
	l := metric.LegendFor(metricKey)
	lines := []string{legendTitle.Render(l.Title)}
	for _, b := range l.Bands {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(b.Color)).Render("●")
		lines = append(lines, swatch+" "+b.Label)
	}
	if l.Note != "" {
		lines = append(lines, legendNote.Width(max(10, width)).Render(l.Note))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

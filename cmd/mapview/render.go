package mapview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	markerRune      = "●"
	markerHoverRune = "◎"
	markerPopupRune = "◉"
)

var (
	waterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("24"))
	tooltipStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).Padding(0, 1)
	emptyMapStyle = lipgloss.NewStyle().Faint(true)
)

// View renders the canvas: spot markers tinted by the compiled step
// function, over a sparse water texture. The popup spot gets a distinct
// marker so the popup's anchor stays visible across refreshes.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.collection == nil {
		return emptyMapStyle.Render("loading conditions...")
	}

	cells := make([][]string, m.height)
	for y := range cells {
		cells[y] = make([]string, m.width)
		for x := range cells[y] {
			if (x+y*3)%7 == 0 {
				cells[y][x] = waterStyle.Render("·")
			} else {
				cells[y][x] = " "
			}
		}
	}

	hoveredID := m.interaction.HoveredID()
	popupID := m.interaction.PopupID()
	for i := range m.collection.Spots {
		s := &m.collection.Spots[i]
		x, y := m.camera.project(s.Lon, s.Lat, m.width, m.height)
		if x < 0 || x >= m.width || y < 0 || y >= m.height {
			continue
		}
		r := markerRune
		style := lipgloss.NewStyle().Foreground(m.scale.Color(s.Metric(m.activeMetric)))
		switch s.ID {
		case popupID:
			r = markerPopupRune
			style = style.Bold(true)
		case hoveredID:
			r = markerHoverRune
			style = style.Bold(true)
		}
		cells[y][x] = style.Render(r)
	}

	rows := make([]string, m.height)
	for y := range cells {
		rows[y] = strings.Join(cells[y], "")
	}
	return strings.Join(rows, "\n")
}

// TooltipView renders the boxed hover summary, or "" while the tooltip
// is hidden or suppressed.
func (m *Model) TooltipView() string {
	s, ok := m.TooltipSpot()
	if !ok {
		return ""
	}
	return tooltipStyle.Render(TooltipLine(&s))
}

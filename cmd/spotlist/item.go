package spotlist

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sumwatshade/surfmap/cmd/metric"
	"github.com/sumwatshade/surfmap/cmd/spots"
)

var (
	itemTitleStyle     = lipgloss.NewStyle().Bold(true)
	itemDescStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	selectedMarkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
	selectedDescStyle  = itemDescStyle.Foreground(lipgloss.Color("245"))
	unselectedPrefix   = "  "
	selectedItemPrefix = "> "
)

type spotItem struct {
	spot  spots.Spot
	scale metric.Scale
}

func (i spotItem) Title() string { return i.spot.Name }

func (i spotItem) Description() string {
	parts := []string{shortVal("q", i.spot.QualityScore, 0)}
	if v := i.spot.WaveHeightFt; v != nil && !math.IsNaN(*v) {
		parts = append(parts, fmt.Sprintf("%.1f ft", *v))
	}
	if v := i.spot.WindSpeedMph; v != nil && !math.IsNaN(*v) {
		parts = append(parts, fmt.Sprintf("%.0f mph", *v))
	}
	if i.spot.Region != "" {
		parts = append(parts, i.spot.Region)
	}
	return strings.Join(parts, " · ")
}

func shortVal(label string, v *float64, prec int) string {
	if v == nil || math.IsNaN(*v) {
		return label + " —"
	}
	return fmt.Sprintf("%s %.*f", label, prec, *v)
}

func (i spotItem) FilterValue() string {
	return strings.ToLower(i.spot.Name + " " + i.spot.Region)
}

// itemDelegate tints each title with the spot's current color band so
// the list mirrors the map's coloring.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 2 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	it, ok := listItem.(spotItem)
	if !ok {
		io.WriteString(w, "?")
		return
	}
	band := it.scale.Color(it.spot.Metric(it.scale.Style().Key))
	title := itemTitleStyle.Foreground(band).Render(it.Title())
	desc := itemDescStyle.Render(it.Description())
	prefix := unselectedPrefix
	if index == m.Index() {
		prefix = selectedMarkStyle.Render(selectedItemPrefix)
		desc = selectedDescStyle.Render(it.Description())
	}
	io.WriteString(w, lipgloss.JoinVertical(lipgloss.Left, prefix+title, "  "+desc))
}

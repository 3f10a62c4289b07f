package spotlist

import (
	"sort"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sumwatshade/surfmap/cmd/metric"
	"github.com/sumwatshade/surfmap/cmd/spots"
)

var (
	titleBarStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
	faintStyle    = lipgloss.NewStyle().Faint(true)
)

// Model is the filterable spot list pane: spots ranked descending by the
// active metric, titles tinted with their current color band.
type Model struct {
	list    list.Model
	ready   bool
	pending []list.Item // items that arrived before the first sizing
	width   int
	height  int
}

func New() *Model { return &Model{} }

func (m *Model) ensureList(width, height int) {
	if width == 0 || height == 0 {
		return
	}
	m.width = width
	m.height = height
	listHeight := maxInt(5, height-2)
	if !m.ready {
		l := list.New(nil, itemDelegate{}, width-2, listHeight)
		l.Title = "Spots"
		l.SetShowStatusBar(true)
		l.SetShowPagination(true)
		l.SetFilteringEnabled(true)
		l.SetShowHelp(false)
		l.Styles.Title = titleBarStyle
		l.Styles.StatusBar = statusStyle
		l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		m.list = l
		m.ready = true
		return
	}
	m.list.SetSize(width-2, listHeight)
}

// SetSpots rebuilds the items from a dataset snapshot, ranked by the
// active metric with unreadable spots last. Called on every refresh and
// metric change.
func (m *Model) SetSpots(coll *spots.Collection, metricKey string) {
	if coll == nil {
		return
	}
	scale := metric.Compile(metricKey)
	ranked := make([]spots.Spot, len(coll.Spots))
	copy(ranked, coll.Spots)
	sort.SliceStable(ranked, func(i, j int) bool {
		vi := ranked[i].Metric(scale.Style().Key)
		vj := ranked[j].Metric(scale.Style().Key)
		switch {
		case vi == nil:
			return false
		case vj == nil:
			return true
		default:
			return *vi > *vj
		}
	})
	items := make([]list.Item, len(ranked))
	for i, s := range ranked {
		items[i] = spotItem{spot: s, scale: scale}
	}
	if m.ready {
		m.list.SetItems(items)
	} else {
		m.pending = items
	}
}

// Update sizes the list lazily (first window size message) and routes
// everything else to the bubbles list.
func (m *Model) Update(msg tea.Msg, width, height int) tea.Cmd {
	m.ensureList(width, height)
	if !m.ready {
		return nil
	}
	if m.pending != nil {
		m.list.SetItems(m.pending)
		m.pending = nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return cmd
}

// Filtering reports whether the list is capturing keystrokes for its
// filter, so the caller can suspend global key bindings.
func (m *Model) Filtering() bool {
	return m.ready && m.list.FilterState() == list.Filtering
}

// SelectedID returns the highlighted spot's id, or "".
func (m *Model) SelectedID() string {
	if !m.ready {
		return ""
	}
	if it, ok := m.list.SelectedItem().(spotItem); ok {
		return it.spot.ID
	}
	return ""
}

func (m *Model) View() string {
	if !m.ready {
		return titleBarStyle.Render("Spots") + "\n" + faintStyle.Render("loading...")
	}
	return m.list.View()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

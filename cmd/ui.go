package cmd

import (
	"strings"
	"time"

	bhelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sumwatshade/surfmap/cmd/mapview"
	"github.com/sumwatshade/surfmap/cmd/metric"
	"github.com/sumwatshade/surfmap/cmd/spotlist"
	"github.com/sumwatshade/surfmap/cmd/spots"
)

// Layout constants: the canvas starts below the header and separator
// rows, and the rows under it hold the tooltip, status and help lines.
const (
	canvasTop    = 2
	chromeHeight = 5
)

type model struct {
	svc          spots.Service
	missingToken bool

	mapPane  mapview.Model
	spotList *spotlist.Model

	generatedAt time.Time
	lastErr     error

	width  int
	height int
	// help / key bindings
	keys keyMap
	help bhelp.Model
}

func initialModel(svc spots.Service, missingToken bool) model {
	return model{
		svc:          svc,
		missingToken: missingToken,
		mapPane:      mapview.New(),
		spotList:     spotlist.New(),
		keys:         keys,
		help:         bhelp.New(),
	}
}

func (m model) Init() tea.Cmd {
	// Missing credential: nothing starts; the banner view is all there is.
	if m.missingToken {
		return nil
	}
	return tea.Batch(spots.LoadCmd(m.svc), spots.ScheduleRefresh())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.missingToken {
		if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, m.keys.Quit) {
			return m, tea.Quit
		}
		if ws, ok := msg.(tea.WindowSizeMsg); ok {
			m.width, m.height = ws.Width, ws.Height
		}
		return m, nil
	}

	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.mapPane.SetSize(m.canvasWidth(), m.canvasHeight())

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case spots.LoadedMsg:
		m.lastErr = msg.Err
		if msg.Collection != nil {
			m.mapPane.SetCollection(msg.Collection)
			m.spotList.SetSpots(msg.Collection, m.mapPane.ActiveMetric())
		}
		// Zero when the summary fetch failed: status shows "unknown"
		// rather than a stale time.
		m.generatedAt = msg.GeneratedAt
		if msg.History != nil {
			m.mapPane.SetHistory(msg.History)
		}

	case spots.RefreshTickMsg:
		return m, tea.Batch(spots.LoadCmd(m.svc), spots.ScheduleRefresh())
	}

	if cmd := m.spotList.Update(msg, m.rightPaneWidth(), m.canvasHeight()); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

// handleKey applies global bindings. Returns handled=false for keys the
// spot list should consume instead (navigation, filter input).
func (m *model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	// While the list filter is capturing input, every key belongs to it.
	if m.spotList.Filtering() {
		return nil, false
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, m.keys.Close):
		if _, open := m.mapPane.PopupSpot(); open {
			m.mapPane.ClosePopup()
			return nil, true
		}
		return nil, false // let the list clear an applied filter
	case key.Matches(msg, m.keys.Select):
		if id := m.spotList.SelectedID(); id != "" {
			m.mapPane.OpenPopup(id)
		}
		return nil, true
	case key.Matches(msg, m.keys.ZoomIn):
		m.mapPane.Zoom(0.5)
		return nil, true
	case key.Matches(msg, m.keys.ZoomOut):
		m.mapPane.Zoom(-0.5)
		return nil, true
	}

	switch s := msg.String(); s {
	case "m":
		m.setMetric(metric.Cycle(m.mapPane.ActiveMetric()))
		return nil, true
	case "1", "2", "3", "4":
		if ks := metric.Keys(); int(s[0]-'1') < len(ks) {
			m.setMetric(ks[s[0]-'1'])
		}
		return nil, true
	case "up":
		m.mapPane.Pan(0, -2)
		return nil, true
	case "down":
		m.mapPane.Pan(0, 2)
		return nil, true
	case "left":
		m.mapPane.Pan(-4, 0)
		return nil, true
	case "right":
		m.mapPane.Pan(4, 0)
		return nil, true
	}
	return nil, false
}

// setMetric restyles the layer and re-ranks the list; hover and popup
// state stay untouched.
func (m *model) setMetric(metricKey string) {
	m.mapPane.SetMetric(metricKey)
	m.spotList.SetSpots(m.mapPane.Collection(), m.mapPane.ActiveMetric())
}

// handleMouse translates terminal coordinates into canvas cells.
func (m *model) handleMouse(msg tea.MouseMsg) {
	x := msg.X
	y := msg.Y - canvasTop
	inside := x >= 0 && x < m.canvasWidth() && y >= 0 && y < m.canvasHeight()

	switch msg.Action {
	case tea.MouseActionMotion:
		if inside {
			m.mapPane.Pointer(x, y)
		} else {
			m.mapPane.PointerLeft()
		}
	case tea.MouseActionPress:
		if !inside {
			return
		}
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.mapPane.Click(x, y)
		case tea.MouseButtonWheelUp:
			m.mapPane.Zoom(0.5)
		case tea.MouseButtonWheelDown:
			m.mapPane.Zoom(-0.5)
		}
	}
}

func (m model) View() string {
	if m.missingToken {
		return m.bannerView()
	}

	header := headerStyle.Render(appTitle) + " " + tabs(m.mapPane.ActiveMetric(), max(0, m.width-10))
	sep := dividerStyle.Render(strings.Repeat("─", max(0, m.width)))

	canvas := lipgloss.NewStyle().
		Width(m.canvasWidth()).Height(m.canvasHeight()).
		MaxWidth(m.canvasWidth()).MaxHeight(m.canvasHeight()).
		Render(m.mapPane.View())
	right := lipgloss.NewStyle().Width(m.rightPaneWidth()).Render(m.rightPaneView())
	body := lipgloss.JoinHorizontal(lipgloss.Top, canvas, dividerStyle.Render("│"), right)

	tooltip := m.mapPane.TooltipView()
	if tooltip == "" {
		tooltip = " "
	}

	layout := lipgloss.JoinVertical(lipgloss.Left,
		header, sep, body, tooltip, m.statusView(), m.help.View(m.keys))
	if m.width > 0 {
		layout = lipgloss.NewStyle().Width(m.width).Render(layout)
	}
	return layout
}

// rightPaneView shows the open popup's detail (with its trend chart) or,
// when no popup is open, the ranked spot list; the legend sits below
// either one.
func (m model) rightPaneView() string {
	w := m.rightPaneWidth()
	var top string
	if s, ok := m.mapPane.PopupSpot(); ok {
		parts := mapview.PopupLines(&s)
		if chart := m.mapPane.Trend(max(12, w-4), 8); chart != "" {
			parts = append(parts, "", chart)
		}
		top = lipgloss.JoinVertical(lipgloss.Left, parts...)
	} else {
		top = m.spotList.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, top, "", legendView(m.mapPane.ActiveMetric(), w-2))
}

func (m model) statusView() string {
	updated := "updated —"
	if !m.generatedAt.IsZero() {
		updated = "updated " + m.generatedAt.Local().Format("2006-01-02 15:04 MST")
	}
	s := statusStyle.Render(updated)
	if m.lastErr != nil {
		s += statusErrStyle.Render("refresh failed, retrying next tick")
	}
	return s
}

// bannerView is the persistent missing-credential screen: without the
// feed token nothing else starts.
func (m model) bannerView() string {
	b := bannerStyle.Render("surfmap needs a feed access token")
	hint := bannerHint.Render("Set SURFMAP_FEED_TOKEN or run `surfmap configure`.\nPress q to quit.")
	return lipgloss.JoinVertical(lipgloss.Left, b, hint)
}

func (m model) rightPaneWidth() int {
	if m.width == 0 {
		return 34
	}
	return max(30, m.width/3)
}

func (m model) canvasWidth() int {
	return max(20, m.width-m.rightPaneWidth()-1)
}

func (m model) canvasHeight() int {
	return max(5, m.height-chromeHeight)
}

package mapview

import (
	"github.com/sumwatshade/surfmap/cmd/metric"
	"github.com/sumwatshade/surfmap/cmd/spots"
)

// Model is the map pane: the live collection, the camera, the compiled
// color scale for the active metric, and the pointer state machine. All
// mutation happens from the single event loop, so no locking.
type Model struct {
	collection *spots.Collection
	history    spots.History

	camera Camera
	framed bool // initial fit happens exactly once

	activeMetric string
	scale        metric.Scale

	interaction Interaction

	width, height int
}

// New returns a map pane showing the fallback framing until the first
// collection arrives.
func New() Model {
	return Model{
		camera:       Camera{Lon: fallbackLon, Lat: fallbackLat, Zoom: fallbackZoom}.Clamped(),
		activeMetric: metric.DefaultKey,
		scale:        metric.Compile(metric.DefaultKey),
	}
}

// SetSize resizes the canvas.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
}

func (m *Model) Size() (int, int) { return m.width, m.height }

// SetCollection swaps the dataset in place. The camera is framed on the
// first successful load only; later swaps leave camera, active metric
// and any open popup untouched, except that state referencing a spot no
// longer in the dataset is released.
func (m *Model) SetCollection(c *spots.Collection) {
	m.collection = c
	if !m.framed {
		m.camera = fitCamera(c, m.width, m.height)
		m.framed = true
	}
	m.interaction.DropMissing(func(id string) bool {
		_, ok := c.Get(id)
		return ok
	})
}

// SetHistory swaps the 72h trend document.
func (m *Model) SetHistory(h spots.History) { m.history = h }

// Collection returns the live dataset snapshot (nil before first load).
func (m *Model) Collection() *spots.Collection { return m.collection }

// SetMetric switches the active metric, recompiling the color scale.
// Orthogonal to the pointer machine: hover and popup state are kept.
// Unknown keys resolve to the default metric.
func (m *Model) SetMetric(key string) {
	m.activeMetric = metric.Lookup(key).Key
	m.scale = metric.Compile(key)
}

// CycleMetric advances to the next registry metric.
func (m *Model) CycleMetric() { m.SetMetric(metric.Cycle(m.activeMetric)) }

// ActiveMetric returns the key currently driving point colors.
func (m *Model) ActiveMetric() string { return m.activeMetric }

// Camera returns the current (already clamped) camera.
func (m *Model) Camera() Camera { return m.camera }

// Pan moves the camera by a number of cells, clamped to the buffered
// coverage rectangle.
func (m *Model) Pan(dxCells, dyCells int) {
	s := cellsPerDegree(m.camera.Zoom)
	m.camera.Lon += float64(dxCells) / s
	m.camera.Lat -= float64(dyCells) / (s * cellAspect)
	m.camera = m.camera.Clamped()
}

// Zoom adjusts the zoom level, clamped to the permanent range.
func (m *Model) Zoom(delta float64) {
	m.camera.Zoom += delta
	m.camera = m.camera.Clamped()
}

// hitTest finds the spot marker at a canvas cell, tolerating one cell of
// slop so small pointer misses still register.
func (m *Model) hitTest(x, y int) string {
	if m.collection == nil {
		return ""
	}
	bestID := ""
	bestDist := 3 // dx+dy, strictly below: one cell of slop
	for i := range m.collection.Spots {
		s := &m.collection.Spots[i]
		px, py := m.camera.project(s.Lon, s.Lat, m.width, m.height)
		d := abs(px-x) + abs(py-y)
		if d < bestDist {
			bestDist = d
			bestID = s.ID
		}
	}
	return bestID
}

// Pointer handles mouse motion at a canvas cell: entering a marker
// starts (or moves) the hover, leaving all markers drops it.
func (m *Model) Pointer(x, y int) {
	if id := m.hitTest(x, y); id != "" {
		m.interaction.HoverEnter(id)
	} else {
		m.interaction.HoverLeave()
	}
}

// PointerLeft handles the pointer leaving the canvas entirely.
func (m *Model) PointerLeft() { m.interaction.HoverLeave() }

// Click handles a left click at a canvas cell. Clicking a marker opens
// its popup (closing any other); clicking open water changes nothing.
func (m *Model) Click(x, y int) {
	if id := m.hitTest(x, y); id != "" {
		m.interaction.Click(id)
	}
}

// OpenPopup opens the popup for a known spot id, for example from the
// spot list. Unknown ids are ignored.
func (m *Model) OpenPopup(id string) {
	if _, ok := m.collection.Get(id); ok {
		m.interaction.Click(id)
	}
}

// ClosePopup dismisses the open popup, if any.
func (m *Model) ClosePopup() { m.interaction.ClosePopup() }

// PopupSpot returns the spot behind the open popup, looked up in the
// current dataset so refreshed readings show immediately.
func (m *Model) PopupSpot() (spots.Spot, bool) {
	if id := m.interaction.PopupID(); id != "" {
		return m.collection.Get(id)
	}
	return spots.Spot{}, false
}

// TooltipSpot returns the spot whose tooltip is visible, applying the
// popup-dedup suppression rule.
func (m *Model) TooltipSpot() (spots.Spot, bool) {
	if id := m.interaction.TooltipID(); id != "" {
		return m.collection.Get(id)
	}
	return spots.Spot{}, false
}

// Trend renders the 72h chart for the open popup's spot and the active
// metric; "" when unavailable.
func (m *Model) Trend(width, height int) string {
	id := m.interaction.PopupID()
	if id == "" || m.history == nil {
		return ""
	}
	return renderTrend(m.history, id, m.activeMetric, width, height)
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

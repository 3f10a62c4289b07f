package mapview

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/sumwatshade/surfmap/cmd/spots"
)

// coverage is the hand-tuned rectangle around the covered coastline
// (San Francisco down through Half Moon Bay). Panning is permanently
// clamped to this rectangle expanded by the buffers below.
var coverage = orb.Bound{
	Min: orb.Point{-122.60, 37.40},
	Max: orb.Point{-122.30, 37.85},
}

const (
	lonBuffer = 0.15
	latBuffer = 0.10

	minZoom = 3.0
	maxZoom = 9.0
	// initial framing never zooms tighter than this, so a tight cluster
	// of spots still shows surrounding coastline
	fitMaxZoom = 8.0
	fitPadding = 2 // cells

	fallbackLon  = -122.47
	fallbackLat  = 37.64
	fallbackZoom = 5.0
)

// cellAspect compensates for terminal cells being roughly twice as tall
// as they are wide.
const cellAspect = 0.5

// Camera is the current view: a center coordinate and a zoom level.
// Zoom is logarithmic; each +1 doubles the cells per degree.
type Camera struct {
	Lon, Lat, Zoom float64
}

func clampf(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// Clamped returns the camera constrained to the buffered coverage
// rectangle and the permanent zoom range.
func (c Camera) Clamped() Camera {
	return Camera{
		Lon:  clampf(c.Lon, coverage.Min[0]-lonBuffer, coverage.Max[0]+lonBuffer),
		Lat:  clampf(c.Lat, coverage.Min[1]-latBuffer, coverage.Max[1]+latBuffer),
		Zoom: clampf(c.Zoom, minZoom, maxZoom),
	}
}

func cellsPerDegree(zoom float64) float64 {
	return math.Pow(2, zoom) * 2
}

// project maps a coordinate to a cell in a width x height canvas
// centered on the camera.
func (c Camera) project(lon, lat float64, width, height int) (int, int) {
	s := cellsPerDegree(c.Zoom)
	x := (lon-c.Lon)*s + float64(width)/2
	y := (c.Lat-lat)*s*cellAspect + float64(height)/2
	return int(math.Round(x)), int(math.Round(y))
}

// fitCamera frames the camera once over a loaded collection: center on
// the points' bounding box at the largest zoom that fits it with
// padding, capped so a tight cluster doesn't over-zoom. An empty
// collection falls back to a fixed framing.
func fitCamera(coll *spots.Collection, width, height int) Camera {
	if coll == nil || len(coll.Spots) == 0 {
		return Camera{Lon: fallbackLon, Lat: fallbackLat, Zoom: fallbackZoom}.Clamped()
	}
	b := coll.Bound()
	center := b.Center()
	cam := Camera{Lon: center.Lon(), Lat: center.Lat(), Zoom: fitMaxZoom}

	availW := float64(width - 2*fitPadding)
	availH := float64(height - 2*fitPadding)
	lonSpan := b.Max.Lon() - b.Min.Lon()
	latSpan := b.Max.Lat() - b.Min.Lat()
	if availW > 0 && availH > 0 {
		s := math.Inf(1)
		if lonSpan > 0 {
			s = math.Min(s, availW/lonSpan)
		}
		if latSpan > 0 {
			s = math.Min(s, availH/(latSpan*cellAspect))
		}
		if !math.IsInf(s, 1) {
			cam.Zoom = math.Min(fitMaxZoom, math.Log2(s/2))
		}
	}
	return cam.Clamped()
}

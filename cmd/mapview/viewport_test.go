package mapview

import (
	"math"
	"testing"

	"github.com/sumwatshade/surfmap/cmd/spots"
)

func TestCameraClamp(t *testing.T) {
	cases := []struct {
		name string
		in   Camera
		want Camera
	}{
		{
			"west of buffered coverage",
			Camera{Lon: -130, Lat: 37.6, Zoom: 5},
			Camera{Lon: coverage.Min[0] - lonBuffer, Lat: 37.6, Zoom: 5},
		},
		{
			"north of buffered coverage",
			Camera{Lon: -122.4, Lat: 45, Zoom: 5},
			Camera{Lon: -122.4, Lat: coverage.Max[1] + latBuffer, Zoom: 5},
		},
		{
			"zoom below range",
			Camera{Lon: -122.4, Lat: 37.6, Zoom: 0},
			Camera{Lon: -122.4, Lat: 37.6, Zoom: minZoom},
		},
		{
			"zoom above range",
			Camera{Lon: -122.4, Lat: 37.6, Zoom: 20},
			Camera{Lon: -122.4, Lat: 37.6, Zoom: maxZoom},
		},
		{
			"in bounds untouched",
			Camera{Lon: -122.4, Lat: 37.6, Zoom: 5},
			Camera{Lon: -122.4, Lat: 37.6, Zoom: 5},
		},
	}
	for _, tc := range cases {
		if got := tc.in.Clamped(); got != tc.want {
			t.Errorf("%s: got %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestFitCameraEmptyFallsBack(t *testing.T) {
	got := fitCamera(&spots.Collection{}, 80, 24)
	want := Camera{Lon: fallbackLon, Lat: fallbackLat, Zoom: fallbackZoom}
	if got != want {
		t.Errorf("empty collection framed %+v, want fallback %+v", got, want)
	}
	if got2 := fitCamera(nil, 80, 24); got2 != want {
		t.Errorf("nil collection framed %+v, want fallback %+v", got2, want)
	}
}

func TestFitCameraCapsZoomForTightCluster(t *testing.T) {
	coll := &spots.Collection{Spots: []spots.Spot{
		{ID: "a", Lon: -122.5100, Lat: 37.7600},
		{ID: "b", Lon: -122.5101, Lat: 37.7601},
	}}
	cam := fitCamera(coll, 80, 24)
	if cam.Zoom != fitMaxZoom {
		t.Errorf("tight cluster zoom = %v, want capped at %v", cam.Zoom, fitMaxZoom)
	}
}

func TestFitCameraCentersAndFits(t *testing.T) {
	coll := &spots.Collection{Spots: []spots.Spot{
		{ID: "a", Lon: -122.51, Lat: 37.76},
		{ID: "b", Lon: -122.45, Lat: 37.50},
	}}
	w, h := 80, 24
	cam := fitCamera(coll, w, h)
	if math.Abs(cam.Lon-(-122.48)) > 1e-9 || math.Abs(cam.Lat-37.63) > 1e-9 {
		t.Errorf("camera center = (%v, %v), want bbox center (-122.48, 37.63)", cam.Lon, cam.Lat)
	}
	for _, s := range coll.Spots {
		x, y := cam.project(s.Lon, s.Lat, w, h)
		if x < 0 || x >= w || y < 0 || y >= h {
			t.Errorf("spot %s projected off-canvas at (%d, %d)", s.ID, x, y)
		}
	}
}

func TestPanAndZoomStayClamped(t *testing.T) {
	m := New()
	m.SetSize(80, 24)
	for i := 0; i < 500; i++ {
		m.Pan(-10, 0)
	}
	if got := m.Camera().Lon; got != coverage.Min[0]-lonBuffer {
		t.Errorf("panned west to %v, want clamped at %v", got, coverage.Min[0]-lonBuffer)
	}
	for i := 0; i < 100; i++ {
		m.Zoom(0.5)
	}
	if got := m.Camera().Zoom; got != maxZoom {
		t.Errorf("zoomed to %v, want clamped at %v", got, maxZoom)
	}
	for i := 0; i < 100; i++ {
		m.Zoom(-0.5)
	}
	if got := m.Camera().Zoom; got != minZoom {
		t.Errorf("zoomed out to %v, want clamped at %v", got, minZoom)
	}
}

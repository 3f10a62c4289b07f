package spots

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Spot is a single mapped surf location and its latest readings. Metric
// fields are pointers: nil means "no reading", which is distinct from a
// legitimate zero value.
type Spot struct {
	ID              string
	Name            string
	Region          string
	PrimaryExposure string
	Lon             float64
	Lat             float64

	QualityScore     *float64
	WaveHeightFt     *float64
	DominantPeriodS  *float64
	WaveDirectionDeg *float64
	WindSpeedMph     *float64
	WindDirectionDeg *float64
	WindSuitability  *float64
	TideHeightFt     *float64
	TideTrend        string // rising, falling, steady or empty

	SwellScore *float64
	WindScore  *float64
	TideScore  *float64

	WindSource  string
	Notes       string
	NDBCStation string
	TideStation string

	GeneratedAt time.Time // zero when the feed omitted it
	ObservedAt  time.Time // buoy observation time, zero when absent
}

// Metric returns the reading that drives coloring for a selector key.
// Unknown keys return nil, which colors as the style's default band.
func (s *Spot) Metric(key string) *float64 {
	switch key {
	case "qualityScore":
		return s.QualityScore
	case "waveHeightFt":
		return s.WaveHeightFt
	case "windSuitability":
		return s.WindSuitability
	case "tideHeightFt":
		return s.TideHeightFt
	}
	return nil
}

// Collection is one snapshot of the point dataset. It is replaced
// wholesale on every refresh; spots correlate across snapshots by ID.
type Collection struct {
	Spots []Spot
}

// Get looks a spot up by id.
func (c *Collection) Get(id string) (Spot, bool) {
	if c == nil {
		return Spot{}, false
	}
	for _, s := range c.Spots {
		if s.ID == id {
			return s, true
		}
	}
	return Spot{}, false
}

// Bound returns the bounding box of all spot coordinates. Only valid for
// a non-empty collection.
func (c *Collection) Bound() orb.Bound {
	pts := make(orb.MultiPoint, len(c.Spots))
	for i, s := range c.Spots {
		pts[i] = orb.Point{s.Lon, s.Lat}
	}
	return pts.Bound()
}

// FromFeatureCollection converts a decoded GeoJSON document into a
// Collection. Every feature must be a point and carry a non-empty id
// property; an id-less feature is a data-quality error in the feed and
// fails the whole snapshot.
func FromFeatureCollection(fc *geojson.FeatureCollection) (*Collection, error) {
	coll := &Collection{Spots: make([]Spot, 0, len(fc.Features))}
	for i, f := range fc.Features {
		pt, ok := f.Geometry.(orb.Point)
		if !ok {
			return nil, fmt.Errorf("feature %d: geometry is %T, want point", i, f.Geometry)
		}
		p := f.Properties
		id := stringProp(p, "id")
		if id == "" {
			return nil, fmt.Errorf("feature %d (%s): missing id", i, stringProp(p, "name"))
		}
		s := Spot{
			ID:              id,
			Name:            stringProp(p, "name"),
			Region:          stringProp(p, "region"),
			PrimaryExposure: stringProp(p, "primaryExposure"),
			Lon:             pt.Lon(),
			Lat:             pt.Lat(),

			QualityScore:     floatProp(p, "qualityScore"),
			WaveHeightFt:     floatProp(p, "waveHeightFt"),
			DominantPeriodS:  floatProp(p, "dominantPeriodS"),
			WaveDirectionDeg: floatProp(p, "waveDirectionDeg"),
			WindSpeedMph:     floatProp(p, "windSpeedMph"),
			WindDirectionDeg: floatProp(p, "windDirectionDeg"),
			WindSuitability:  floatProp(p, "windSuitability"),
			TideHeightFt:     floatProp(p, "tideHeightFt"),
			TideTrend:        stringProp(p, "tideTrend"),

			SwellScore: floatProp(p, "swellScore"),
			WindScore:  floatProp(p, "windScore"),
			TideScore:  floatProp(p, "tideScore"),

			WindSource:  stringProp(p, "windSource"),
			Notes:       stringProp(p, "notes"),
			NDBCStation: stringProp(p, "ndbcStation"),
			TideStation: stringProp(p, "tideStation"),
		}
		if src, ok := p["sources"].(map[string]interface{}); ok {
			if s.NDBCStation == "" {
				s.NDBCStation = stringProp(src, "ndbcStation")
			}
			if s.TideStation == "" {
				s.TideStation = stringProp(src, "tideStation")
			}
			if s.WindSource == "" {
				s.WindSource = stringProp(src, "wind")
			}
		}
		if ts, ok := p["timestamps"].(map[string]interface{}); ok {
			s.GeneratedAt = timeProp(ts, "generatedAt")
			s.ObservedAt = timeProp(ts, "ndbcObservedAt")
		}
		coll.Spots = append(coll.Spots, s)
	}
	return coll, nil
}

// floatProp reads a numeric property. The feed occasionally carries
// numeric-looking strings, so those are coerced; anything else (null,
// NaN, non-numeric text) is "no reading".
func floatProp(p map[string]interface{}, key string) *float64 {
	v, ok := p[key]
	if !ok || v == nil {
		return nil
	}
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) {
			return nil
		}
		return &n
	case int:
		f := float64(n)
		return &f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) {
			return nil
		}
		return &f
	}
	return nil
}

func stringProp(p map[string]interface{}, key string) string {
	if v, ok := p[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func timeProp(p map[string]interface{}, key string) time.Time {
	v, ok := p[key].(string)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}
	}
	return t
}

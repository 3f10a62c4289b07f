package spots

import (
	"encoding/json"
	"sort"
	"time"
)

// Summary is the feed's build manifest. Only the generation time matters
// here; source-health details are ignored.
type Summary struct {
	GeneratedAt time.Time
}

func parseSummary(data []byte) (Summary, error) {
	var raw struct {
		GeneratedAt string `json:"generatedAt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Summary{}, err
	}
	t, err := time.Parse(time.RFC3339, raw.GeneratedAt)
	if err != nil {
		return Summary{}, err
	}
	return Summary{GeneratedAt: t}, nil
}

// Sample is one (time, value) reading in a trend series.
type Sample struct {
	Time  time.Time
	Value float64
}

// HistoryPoint is a compact per-spot record inside one history snapshot.
type HistoryPoint struct {
	ID               string   `json:"id"`
	QualityScore     *float64 `json:"qualityScore"`
	WaveHeightFt     *float64 `json:"waveHeightFt"`
	DominantPeriodS  *float64 `json:"dominantPeriodS"`
	WindSpeedMph     *float64 `json:"windSpeedMph"`
	WindDirectionDeg *float64 `json:"windDirectionDeg"`
	TideHeightFt     *float64 `json:"tideHeightFt"`
	TideTrend        string   `json:"tideTrend"`
}

func (p *HistoryPoint) metric(key string) *float64 {
	switch key {
	case "qualityScore":
		return p.QualityScore
	case "waveHeightFt":
		return p.WaveHeightFt
	case "dominantPeriodS":
		return p.DominantPeriodS
	case "windSpeedMph":
		return p.WindSpeedMph
	case "tideHeightFt":
		return p.TideHeightFt
	}
	return nil
}

type historySnapshot struct {
	GeneratedAt string         `json:"generatedAt"`
	Points      []HistoryPoint `json:"points"`
}

// History is the rolling 72-hour record of per-spot readings kept
// alongside the point collection.
type History []historySnapshot

func parseHistory(data []byte) (History, error) {
	var h History
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, err
	}
	return h, nil
}

// Series extracts the chronological trend of one metric for one spot.
// Snapshots without a parsable timestamp or without a reading for the
// spot are skipped.
func (h History) Series(id, metricKey string) []Sample {
	var out []Sample
	for _, snap := range h {
		t, err := time.Parse(time.RFC3339, snap.GeneratedAt)
		if err != nil {
			continue
		}
		for i := range snap.Points {
			p := &snap.Points[i]
			if p.ID != id {
				continue
			}
			if v := p.metric(metricKey); v != nil {
				out = append(out, Sample{Time: t, Value: *v})
			}
			break
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })
	return out
}

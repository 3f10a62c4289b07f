package metric

// Style describes how one spot metric is discretized into color bands.
// Thresholds are ascending break points; Colors has exactly one more
// entry than Thresholds, and Labels names each band for the legend.
// Default is substituted when a spot has no reading for the metric.
type Style struct {
	Key        string
	Title      string
	Note       string
	Thresholds []float64
	Colors     []string
	Labels     []string
	Default    float64
}

// DefaultKey is the metric every unknown selector value resolves to.
const DefaultKey = "qualityScore"

// registry is ordered; the order drives the metric selector tabs.
var registry = []Style{
	{
		Key:        "qualityScore",
		Title:      "Surf quality",
		Note:       "composite of swell, wind and tide (0-100)",
		Thresholds: []float64{35, 55, 75},
		Colors:     []string{"#d73027", "#fc8d59", "#fee08b", "#1a9850"},
		Labels:     []string{"poor (<35)", "fair (35-55)", "good (55-75)", "great (75+)"},
		Default:    0,
	},
	{
		Key:        "waveHeightFt",
		Title:      "Wave height",
		Thresholds: []float64{2, 4, 6, 10},
		Colors:     []string{"#c6dbef", "#9ecae1", "#6baed6", "#3182bd", "#08519c"},
		Labels:     []string{"<2 ft", "2-4 ft", "4-6 ft", "6-10 ft", "10+ ft"},
		Default:    0,
	},
	{
		Key:        "windSuitability",
		Title:      "Wind",
		Note:       "1.0 is light offshore, 0 is strong onshore; no reading shows neutral",
		Thresholds: []float64{0.35, 0.65},
		Colors:     []string{"#d73027", "#fee08b", "#1a9850"},
		Labels:     []string{"onshore or strong", "cross or moderate", "offshore and light"},
		Default:    0.5,
	},
	{
		Key:        "tideHeightFt",
		Title:      "Tide height",
		Thresholds: []float64{1, 3, 5},
		Colors:     []string{"#8c510a", "#d8b365", "#5ab4ac", "#01665e"},
		Labels:     []string{"<1 ft", "1-3 ft", "3-5 ft", "5+ ft"},
		Default:    0,
	},
}

// Keys returns the selectable metric keys in display order.
func Keys() []string {
	out := make([]string, len(registry))
	for i, s := range registry {
		out[i] = s.Key
	}
	return out
}

// Lookup returns the style for key. Unknown or empty keys resolve to the
// default metric; lookup never fails.
func Lookup(key string) Style {
	for _, s := range registry {
		if s.Key == key {
			return s
		}
	}
	return Lookup(DefaultKey)
}

// Cycle returns the key after the given one, wrapping around. An unknown
// key cycles from the default metric's position.
func Cycle(key string) string {
	key = Lookup(key).Key
	for i, s := range registry {
		if s.Key == key {
			return registry[(i+1)%len(registry)].Key
		}
	}
	return DefaultKey
}

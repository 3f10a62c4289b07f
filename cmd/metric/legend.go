package metric

// Band is one legend row: the label and swatch color of a single band.
type Band struct {
	Label string
	Color string
}

// Legend is the full legend description for one metric, taken verbatim
// from its style record.
type Legend struct {
	Title string
	Note  string
	Bands []Band
}

// LegendFor returns the legend for key (default metric for unknown keys).
func LegendFor(key string) Legend {
	s := Lookup(key)
	bands := make([]Band, len(s.Colors))
	for i, c := range s.Colors {
		bands[i] = Band{Label: s.Labels[i], Color: c}
	}
	return Legend{Title: s.Title, Note: s.Note, Bands: bands}
}

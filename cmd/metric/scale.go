package metric

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Scale is the compiled step function for one metric: it maps a raw
// reading to the color of the band whose lower bound is the greatest
// threshold at or below the value. It is derived from the Style record
// alone, so switching metrics just compiles a new Scale and restyles the
// already-loaded layer.
type Scale struct {
	style Style
}

// Compile builds the value-to-color step function for key. Unknown keys
// compile the default metric's scale.
func Compile(key string) Scale {
	return Scale{style: Lookup(key)}
}

// Style returns the underlying style record.
func (s Scale) Style() Style { return s.style }

// Hex returns the band color for a reading. A nil or NaN reading is
// substituted with the style's default value, so "no reading" colors the
// same as the default band rather than disappearing.
func (s Scale) Hex(v *float64) string {
	x := s.style.Default
	if v != nil && !math.IsNaN(*v) {
		x = *v
	}
	band := 0
	for i, t := range s.style.Thresholds {
		if x >= t {
			band = i + 1
		}
	}
	return s.style.Colors[band]
}

// Color is Hex adapted to a lipgloss terminal color.
func (s Scale) Color(v *float64) lipgloss.Color {
	return lipgloss.Color(s.Hex(v))
}

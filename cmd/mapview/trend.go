package mapview

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/sumwatshade/surfmap/cmd/metric"
	"github.com/sumwatshade/surfmap/cmd/spots"
)

var trendInfoStyle = lipgloss.NewStyle().Faint(true)

// renderTrend draws the 72h series of the active metric for one spot as
// a braille line chart. Returns "" when the history has fewer than two
// usable samples for the spot.
func renderTrend(h spots.History, id, metricKey string, width, height int) string {
	series := h.Series(id, metricKey)
	if len(series) < 2 || width < 12 || height < 4 {
		return ""
	}

	minT, maxT := series[0].Time, series[len(series)-1].Time
	minV, maxV := series[0].Value, series[0].Value
	for _, s := range series[1:] {
		if s.Value < minV {
			minV = s.Value
		}
		if s.Value > maxV {
			maxV = s.Value
		}
	}
	if minV == maxV { // flat series still needs a visible y range
		minV -= 0.1
		maxV += 0.1
	}

	lc := timeserieslinechart.New(width, height)
	lc.SetTimeRange(minT, maxT)
	lc.SetViewTimeAndYRange(minT, maxT, minV, maxV)
	for _, s := range series {
		lc.Push(timeserieslinechart.TimePoint{Time: s.Time, Value: s.Value})
	}
	lc.DrawBraille()

	title := trendInfoStyle.Render(metric.Lookup(metricKey).Title + ", last 72h")
	stats := trendInfoStyle.Render(fmt.Sprintf("min %.1f / max %.1f", minV, maxV))
	return lipgloss.JoinVertical(lipgloss.Left, title, lc.View(), stats)
}

package mapview

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sumwatshade/surfmap/cmd/spots"
)

// placeholder renders wherever a reading is missing. Several metrics are
// legitimately zero-valued, so absence must never show as "0" or blank.
const placeholder = "—"

const timestampLayout = "2006-01-02 15:04 MST"

var (
	popupHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")).Underline(true)
	popupMetaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	popupLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Bold(true)
)

func num(v *float64, prec int) string {
	if v == nil || math.IsNaN(*v) {
		return placeholder
	}
	return fmt.Sprintf("%.*f", prec, *v)
}

func unit(v *float64, prec int, suffix string) string {
	if v == nil || math.IsNaN(*v) {
		return placeholder
	}
	return fmt.Sprintf("%.*f%s", prec, *v, suffix)
}

func degrees(v *float64) string {
	if v == nil || math.IsNaN(*v) {
		return placeholder
	}
	return fmt.Sprintf("%.0f°", *v)
}

func trend(t string) string {
	switch t {
	case "rising", "falling", "steady":
		return t
	}
	return placeholder
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

func absTime(t time.Time) string {
	if t.IsZero() {
		return placeholder
	}
	return t.Local().Format(timestampLayout)
}

// TooltipLine is the compact fixed-field hover summary.
func TooltipLine(s *spots.Spot) string {
	return fmt.Sprintf("%s  quality %s  wave %s @ %s  wind %s  tide %s %s",
		orPlaceholder(s.Name),
		num(s.QualityScore, 0),
		unit(s.WaveHeightFt, 1, " ft"),
		unit(s.DominantPeriodS, 0, " s"),
		unit(s.WindSpeedMph, 0, " mph"),
		unit(s.TideHeightFt, 1, " ft"),
		trend(s.TideTrend),
	)
}

// PopupLines is the expanded multi-section detail shown while a popup is
// open: everything the tooltip has plus directions, component scores,
// source stations and absolute timestamps.
func PopupLines(s *spots.Spot) []string {
	header := popupHeaderStyle.Render(orPlaceholder(s.Name))
	if s.Region != "" {
		header += popupMetaStyle.Render("  " + s.Region)
	}
	lines := []string{
		header,
		popupLabelStyle.Render("Quality ") + num(s.QualityScore, 1) +
			popupMetaStyle.Render(fmt.Sprintf("  (swell %s · wind %s · tide %s)",
				num(s.SwellScore, 0), num(s.WindScore, 0), num(s.TideScore, 0))),
		popupLabelStyle.Render("Waves   ") + fmt.Sprintf("%s @ %s from %s",
			unit(s.WaveHeightFt, 1, " ft"), unit(s.DominantPeriodS, 1, " s"), degrees(s.WaveDirectionDeg)),
		popupLabelStyle.Render("Wind    ") + fmt.Sprintf("%s from %s  suitability %s (%s)",
			unit(s.WindSpeedMph, 1, " mph"), degrees(s.WindDirectionDeg),
			num(s.WindSuitability, 2), orPlaceholder(s.WindSource)),
		popupLabelStyle.Render("Tide    ") + fmt.Sprintf("%s, %s",
			unit(s.TideHeightFt, 2, " ft"), trend(s.TideTrend)),
	}
	if s.PrimaryExposure != "" {
		lines = append(lines, popupMetaStyle.Render("exposure "+s.PrimaryExposure))
	}
	lines = append(lines,
		popupMetaStyle.Render(fmt.Sprintf("buoy %s  tide station %s",
			orPlaceholder(s.NDBCStation), orPlaceholder(s.TideStation))),
		popupMetaStyle.Render("generated "+absTime(s.GeneratedAt)),
		popupMetaStyle.Render("observed  "+absTime(s.ObservedAt)),
	)
	if s.Notes != "" {
		lines = append(lines, popupMetaStyle.Render(s.Notes))
	}
	return lines
}

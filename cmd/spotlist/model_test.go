package spotlist

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sumwatshade/surfmap/cmd/spots"
)

func f(v float64) *float64 { return &v }

func testCollection() *spots.Collection {
	return &spots.Collection{Spots: []spots.Spot{
		{ID: "a", Name: "Alpha", QualityScore: f(40), WaveHeightFt: f(6)},
		{ID: "b", Name: "Bravo", QualityScore: f(90), WaveHeightFt: nil},
		{ID: "c", Name: "Charlie", QualityScore: nil, WaveHeightFt: f(2)},
	}}
}

func sized(t *testing.T) *Model {
	t.Helper()
	m := New()
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 20}, 40, 20)
	return m
}

func TestRankingByActiveMetric(t *testing.T) {
	m := sized(t)
	m.SetSpots(testCollection(), "qualityScore")
	if got := m.SelectedID(); got != "b" {
		t.Errorf("top of quality ranking = %q, want b", got)
	}

	m.SetSpots(testCollection(), "waveHeightFt")
	if got := m.SelectedID(); got != "a" {
		t.Errorf("top of wave ranking = %q, want a", got)
	}
}

func TestUnknownMetricRanksByDefault(t *testing.T) {
	m := sized(t)
	m.SetSpots(testCollection(), "bogus")
	if got := m.SelectedID(); got != "b" {
		t.Errorf("unknown metric should rank by the default metric, got %q", got)
	}
}

func TestSpotsBeforeSizingArePending(t *testing.T) {
	m := New()
	m.SetSpots(testCollection(), "qualityScore")
	if m.SelectedID() != "" {
		t.Error("unsized list should not expose a selection")
	}
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 20}, 40, 20)
	if got := m.SelectedID(); got != "b" {
		t.Errorf("pending items should apply after sizing, got %q", got)
	}
}

package cmd

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sumwatshade/surfmap/cmd/spots"
)

func f(v float64) *float64 { return &v }

func loadedFixture() spots.LoadedMsg {
	return spots.LoadedMsg{
		Collection: &spots.Collection{Spots: []spots.Spot{
			{ID: "ocean-beach", Name: "Ocean Beach", Lon: -122.51, Lat: 37.76, QualityScore: f(72)},
		}},
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func updated(t *testing.T, m tea.Model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(model)
	if !ok {
		t.Fatalf("Update returned %T, want model", next)
	}
	return out
}

func TestMissingTokenShowsBannerAndStartsNothing(t *testing.T) {
	m := initialModel(nil, true)
	if m.Init() != nil {
		t.Error("no loads or ticks may be scheduled without a credential")
	}
	m = updated(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if v := m.View(); !strings.Contains(v, "token") {
		t.Errorf("banner view should mention the missing token:\n%s", v)
	}
}

func TestLoadedMsgUpdatesStatus(t *testing.T) {
	m := initialModel(nil, false)
	m = updated(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated(t, m, loadedFixture())

	if strings.Contains(m.statusView(), "updated —") {
		t.Errorf("status should show the summary time, got %q", m.statusView())
	}

	// Next refresh: summary failed, points still present.
	failed := loadedFixture()
	failed.GeneratedAt = time.Time{}
	m = updated(t, m, failed)
	if !strings.Contains(m.statusView(), "updated —") {
		t.Errorf("status should show the unknown placeholder, got %q", m.statusView())
	}
	if m.mapPane.Collection() == nil {
		t.Error("points must survive a summary failure")
	}
}

func TestCollectionFailureKeepsPreviousSnapshot(t *testing.T) {
	m := initialModel(nil, false)
	m = updated(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated(t, m, loadedFixture())

	m = updated(t, m, spots.LoadedMsg{Err: errFake, GeneratedAt: time.Date(2025, 6, 1, 12, 5, 0, 0, time.UTC)})
	coll := m.mapPane.Collection()
	if coll == nil || len(coll.Spots) != 1 {
		t.Fatal("failed refresh must keep the previous dataset")
	}
	if !strings.Contains(m.statusView(), "retrying") {
		t.Errorf("status should surface the failed refresh, got %q", m.statusView())
	}
}

func TestMetricKeysSwitchTabs(t *testing.T) {
	m := initialModel(nil, false)
	m = updated(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated(t, m, loadedFixture())

	m = updated(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	if got := m.mapPane.ActiveMetric(); got != "waveHeightFt" {
		t.Errorf("key 2 selected %q, want waveHeightFt", got)
	}
	m = updated(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	if got := m.mapPane.ActiveMetric(); got != "windSuitability" {
		t.Errorf("cycle selected %q, want windSuitability", got)
	}
}

func TestRefreshTickReschedules(t *testing.T) {
	m := initialModel(spots.NewService("http://127.0.0.1:0", "x"), false)
	next, cmd := m.Update(spots.RefreshTickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick must schedule a load and the next tick")
	}
	if _, ok := next.(model); !ok {
		t.Errorf("tick returned %T", next)
	}
}

var errFake = &fakeErr{}

type fakeErr struct{}

func (*fakeErr) Error() string { return "fake" }

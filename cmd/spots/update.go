package spots

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RefreshInterval is the fixed cadence at which the dataset is
// re-fetched and swapped in place.
const RefreshInterval = 5 * time.Minute

// LoadedMsg carries the result of one load. The three documents fail
// independently: a nil Collection with a non-nil Err means the points
// could not be refreshed this tick and the previous snapshot stays live;
// a zero GeneratedAt means the summary was unavailable and the status
// line shows its unknown placeholder; a nil History just omits trends.
type LoadedMsg struct {
	Collection  *Collection
	Err         error
	GeneratedAt time.Time
	History     History
}

// RefreshTickMsg fires once per refresh interval.
type RefreshTickMsg time.Time

// LoadCmd fetches all three feed documents off the event loop. It never
// returns an error as a message failure: everything folds into a
// LoadedMsg so problems surface in the status line at worst.
func LoadCmd(svc Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
		defer cancel()

		msg := LoadedMsg{}
		coll, err := svc.FetchCollection(ctx)
		if err != nil {
			msg.Err = err
		} else {
			msg.Collection = coll
		}
		if sum, err := svc.FetchSummary(ctx); err == nil {
			msg.GeneratedAt = sum.GeneratedAt
		}
		if h, err := svc.FetchHistory(ctx); err == nil {
			msg.History = h
		}
		return msg
	}
}

// ScheduleRefresh arms the next refresh tick.
func ScheduleRefresh() tea.Cmd {
	return tea.Tick(RefreshInterval, func(t time.Time) tea.Msg {
		return RefreshTickMsg(t)
	})
}

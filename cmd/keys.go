package cmd

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings for the application. It satisfies key.Map so
// it can be passed directly to bubbles/help.Model for automatic rendering.
type keyMap struct {
	Metric  key.Binding
	Pan     key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Select  key.Binding
	Close   key.Binding
	Filter  key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings shown in the mini help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Metric, k.Pan, k.ZoomIn, k.Select, k.Close, k.Quit}
}

// FullHelp returns keybindings for the expanded help view (columns).
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Metric, k.Pan, k.ZoomIn, k.ZoomOut},
		{k.Select, k.Close, k.Filter, k.Quit},
	}
}

// keys is the exported set of key bindings used across the app.
var keys = keyMap{
	Metric: key.NewBinding(
		key.WithKeys("m", "1", "2", "3", "4"),
		key.WithHelp("m/1-4", "metric"),
	),
	Pan: key.NewBinding(
		key.WithKeys("up", "down", "left", "right"),
		key.WithHelp("↑↓←→", "pan"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "zoom out"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open spot"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "x"),
		key.WithHelp("esc", "close popup"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter spots"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

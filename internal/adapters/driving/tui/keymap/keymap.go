// Package keymap defines keybindings for the reader TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the reader.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Search submits the search input.
	Search key.Binding

	// Up navigates up in the result list.
	Up key.Binding

	// Down navigates down in the result list.
	Down key.Binding

	// Select opens the highlighted result.
	Select key.Binding

	// NextDay moves the daily view one day forward.
	NextDay key.Binding

	// PrevDay moves the daily view one day back.
	PrevDay key.Binding

	// RandomDay jumps the daily view to a random entry.
	RandomDay key.Binding

	// Daily opens today's daily entry.
	Daily key.Binding

	// Refresh forces a reload of every source.
	Refresh key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Search: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous day"),
		),
		RandomDay: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random day"),
		),
		Daily: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "daily"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "refresh"),
		),
	}
}

// SearchHelp returns keybindings shown in the search view.
func (k *KeyMap) SearchHelp() []key.Binding {
	return []key.Binding{k.Search, k.Daily, k.Refresh, k.Quit}
}

// ResultsHelp returns keybindings shown in the results view.
func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back}
}

// DailyHelp returns keybindings shown in the daily view.
func (k *KeyMap) DailyHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.RandomDay, k.Back}
}

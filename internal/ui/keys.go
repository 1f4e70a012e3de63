package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit         key.Binding
	Help         key.Binding
	CycleTheme   key.Binding
	ToggleFormat key.Binding

	// Navigation
	Up   key.Binding
	Down key.Binding

	// List
	MoveUp   key.Binding
	MoveDown key.Binding
	MakeHome key.Binding
	Add      key.Binding
	Remove   key.Binding

	// Time
	Earlier     key.Binding
	Later       key.Binding
	HomeEarlier key.Binding
	HomeLater   key.Binding
	Now         key.Binding

	// Search/input
	Confirm key.Binding
	Cancel  key.Binding
	Prev    key.Binding
	Next    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		ToggleFormat: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "12/24 hour"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Select previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Select next"),
		),

		MoveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "Move row up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "Move row down"),
		),
		MakeHome: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "Make home"),
		),
		Add: key.NewBinding(
			key.WithKeys("/", "a"),
			key.WithHelp("/ or a", "Add location"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "Remove location"),
		),

		Earlier: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "Selected row -30m"),
		),
		Later: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "Selected row +30m"),
		),
		HomeEarlier: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Home -30m"),
		),
		HomeLater: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Home +30m"),
		),
		Now: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Jump to now"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Add selected"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("up", "Previous result"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "ctrl+n", "tab"),
			key.WithHelp("down", "Next result"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.MoveUp, k.MoveDown},
		{k.Earlier, k.Later, k.HomeEarlier, k.HomeLater, k.Now},
		{k.MakeHome, k.Add, k.Remove},
		{k.ToggleFormat, k.CycleTheme, k.Help, k.Quit},
	}
}

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts for the picker.
// Printable characters always go to the query input, so every command key is
// a control key, a function key, or a navigation key.
// Note: Up/Down share identical help text since they appear as a single row
// in the help overlay.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Actions
	Accept        key.Binding
	Abort         key.Binding
	Help          key.Binding
	Copy          key.Binding
	TogglePreview key.Binding
	History       key.Binding
	CycleTheme    key.Binding
}

// DefaultKeyMap returns the default keybindings for Winnow.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation - Up/Down share help text (displayed as single row)
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/↓  Ctrl+P/N", "Move up/down"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↑/↓  Ctrl+P/N", "Move up/down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("Home", "Jump to top"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("End", "Jump to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "Page down"),
		),

		// Actions
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("⏎ (Enter)", "Accept selection"),
		),
		Abort: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("Esc  Ctrl+C", "Abort"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "Help"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("Ctrl+Y", "Copy selection"),
		),
		TogglePreview: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("⇥ (Tab)", "Toggle preview"),
		),
		History: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("Ctrl+R", "Recent picks"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("Ctrl+T", "Cycle theme"),
		),
	}
}

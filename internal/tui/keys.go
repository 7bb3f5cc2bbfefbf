package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the search view bindings. Every other key edits the query.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Clear    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup/pgdn", "page"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// help returns the bindings listed in the help bar.
func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Up, k.PageUp, k.Clear, k.Quit}
}

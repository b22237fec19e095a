package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the preview key bindings.
type KeyMap struct {
	NextTheme   key.Binding
	PrevTheme   key.Binding
	NextPalette key.Binding
	PrevPalette key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default preview bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTheme: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next theme"),
		),
		PrevTheme: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab/←", "previous theme"),
		),
		NextPalette: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next palette"),
		),
		PrevPalette: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTheme, k.NextPalette, k.Help, k.Quit}
}

// FullHelp returns every binding grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTheme, k.PrevTheme},
		{k.NextPalette, k.PrevPalette},
		{k.Help, k.Quit},
	}
}

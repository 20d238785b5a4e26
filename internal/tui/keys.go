package tui

import "github.com/charmbracelet/bubbles/key"

// pagerKeys holds key bindings for the pager.
type pagerKeys struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
}

// ShortHelp returns the bindings for the help bar.
func (k pagerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown, k.Quit}
}

// FullHelp returns the bindings grouped for expanded help.
func (k pagerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.PageUp, k.PageDown},
		{k.Quit},
	}
}

// pagerKeyMap returns the key bindings for the pager. Up, down and paging
// match the viewport's own defaults so the help bar describes what it does.
func pagerKeyMap() pagerKeys {
	return pagerKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f", " "),
			key.WithHelp("pgdn", "page down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "enter", "ctrl+c"),
			key.WithHelp("q/enter", "back to menu"),
		),
	}
}

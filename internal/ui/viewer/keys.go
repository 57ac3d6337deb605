package viewer

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the viewer keybindings.
type KeyMap struct {
	Quit        key.Binding
	Help        key.Binding
	NextChange  key.Binding
	PrevChange  key.Binding
	Top         key.Binding
	Bottom      key.Binding
	LineNumbers key.Binding
	Copy        key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		NextChange: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next change"),
		),
		PrevChange: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "prev change"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		LineNumbers: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "line numbers"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextChange, k.PrevChange, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextChange, k.PrevChange, k.Top, k.Bottom},
		{k.LineNumbers, k.Copy, k.Help, k.Quit},
	}
}

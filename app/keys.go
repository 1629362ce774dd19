package app

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the demo's key bindings.
type keyMap struct {
	MoreColumns     key.Binding
	FewerColumns    key.Binding
	WiderSpacing    key.Binding
	NarrowerSpacing key.Binding
	TallerSpacing   key.Binding
	ShorterSpacing  key.Binding
	ToggleDirection key.Binding
	AddTile         key.Binding
	RemoveTile      key.Binding
	Copy            key.Binding
	Help            key.Binding
	Quit            key.Binding
}

var defaultKeys = keyMap{
	MoreColumns: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "more columns"),
	),
	FewerColumns: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "fewer columns"),
	),
	WiderSpacing: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "wider gaps"),
	),
	NarrowerSpacing: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "narrower gaps"),
	),
	TallerSpacing: key.NewBinding(
		key.WithKeys("}"),
		key.WithHelp("}", "taller gaps"),
	),
	ShorterSpacing: key.NewBinding(
		key.WithKeys("{"),
		key.WithHelp("{", "shorter gaps"),
	),
	ToggleDirection: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "ltr/rtl"),
	),
	AddTile: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add tile"),
	),
	RemoveTile: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "remove tile"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.MoreColumns, k.FewerColumns, k.ToggleDirection, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.MoreColumns, k.FewerColumns, k.ToggleDirection},
		{k.WiderSpacing, k.NarrowerSpacing, k.TallerSpacing, k.ShorterSpacing},
		{k.AddTile, k.RemoveTile, k.Copy},
		{k.Help, k.Quit},
	}
}

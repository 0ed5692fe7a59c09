package calculator

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the calculator key bindings
type KeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Up        key.Binding
	Down      key.Binding
	AddStage  key.Binding
	Remove    key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	Calculate key.Binding
	Plot      key.Binding
	Quit      key.Binding
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddStage, k.Remove, k.Calculate, k.Plot, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.Up, k.Down},
		{k.AddStage, k.Remove, k.MoveUp, k.MoveDown},
		{k.Calculate, k.Plot, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings. Plain letters are left to the text inputs.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "prev stage"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next stage"),
		),
		AddStage: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "add stage"),
		),
		Remove: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "remove stage"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("shift+up", "alt+k"),
			key.WithHelp("shift+↑", "burn earlier"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("shift+down", "alt+j"),
			key.WithHelp("shift+↓", "burn later"),
		),
		Calculate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "calculate"),
		),
		Plot: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "plot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

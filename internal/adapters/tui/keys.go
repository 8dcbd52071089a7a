package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the timer pad controls plus quit.
type keyMap struct {
	Toggle key.Binding
	Plus   key.Binding
	Minus  key.Binding
	Reset  key.Binding
	Change key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "s"),
			key.WithHelp("space", "start"),
		),
		Plus: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "+5 min"),
		),
		Minus: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "-5 min"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Change: key.NewBinding(
			key.WithKeys("c", "tab"),
			key.WithHelp("c", "change"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// forRunning returns a copy whose toggle help reads Start or Stop.
func (k keyMap) forRunning(running bool) keyMap {
	if running {
		k.Toggle.SetHelp("space", "stop")
	} else {
		k.Toggle.SetHelp("space", "start")
	}
	return k
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Plus, k.Minus, k.Reset, k.Change, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset, k.Change},
		{k.Plus, k.Minus},
		{k.Quit},
	}
}

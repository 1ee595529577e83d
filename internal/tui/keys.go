package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Valve1   key.Binding
	Valve2   key.Binding
	Valve3   key.Binding
	Left     key.Binding
	Right    key.Binding
	Next     key.Binding
	Prev     key.Binding
	Theme    key.Binding
	Report   key.Binding
	Help     key.Binding
	Quit     key.Binding
	valveIDs []key.Binding
}

func newKeyMap() keyMap {
	k := keyMap{
		Valve1: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "válvula 1")),
		Valve2: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "válvula 2")),
		Valve3: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "válvula 3")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "anterior")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "siguiente")),
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "foco")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "foco atrás")),
		Theme:  key.NewBinding(key.WithKeys("Y"), key.WithHelp("Y", "tema")),
		Report: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "informe PDF")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "ayuda")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "salir")),
	}
	k.valveIDs = []key.Binding{k.Valve1, k.Valve2, k.Valve3}
	return k
}

// valve returns the valve id bound to msg, or 0.
func (k keyMap) valve(msg tea.KeyMsg) int {
	for i, b := range k.valveIDs {
		if key.Matches(msg, b) {
			return i + 1
		}
	}
	return 0
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Valve1, k.Valve2, k.Valve3, k.Report, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Valve1, k.Valve2, k.Valve3},
		{k.Left, k.Right, k.Next, k.Prev},
		{k.Theme, k.Report, k.Help, k.Quit},
	}
}

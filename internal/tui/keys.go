package tui

import key "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit   key.Binding
	Cancel key.Binding
	Reset  key.Binding
	Policy key.Binding
	Help   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Policy: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "floor policy")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Reset, k.Policy, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Quit, k.Cancel, k.Reset}, {k.Policy, k.Help}}
}

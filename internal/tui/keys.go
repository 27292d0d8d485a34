package tui

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	Select    key.Binding
	All       key.Binding
	Open      key.Binding
	Completed key.Binding
	Cycle     key.Binding
}

func defaultListKeys() listKeyMap {
	return listKeyMap{
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		All:       key.NewBinding(key.WithKeys("a", "1"), key.WithHelp("a", "all")),
		Open:      key.NewBinding(key.WithKeys("o", "2"), key.WithHelp("o", "open")),
		Completed: key.NewBinding(key.WithKeys("c", "3"), key.WithHelp("c", "completed")),
		Cycle:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next filter")),
	}
}

func (k listKeyMap) bindings() []key.Binding {
	return []key.Binding{k.Select, k.All, k.Open, k.Completed, k.Cycle}
}

// appKeyMap implements help.KeyMap for the screen selector.
type appKeyMap struct {
	Back key.Binding
	Quit key.Binding
}

func defaultAppKeys() appKeyMap {
	return appKeyMap{
		Back: key.NewBinding(key.WithKeys("esc", "backspace", "b"), key.WithHelp("esc", "back to list")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k appKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Back, k.Quit} }
func (k appKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds terminal keys to field operations.
type KeyMap struct {
	Focus  key.Binding
	Blur   key.Binding
	Submit key.Binding
	Clear  key.Binding
	Icon   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap is used unless WithKeyMap overrides it.
var DefaultKeyMap = KeyMap{
	Focus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
	Blur:   key.NewBinding(key.WithKeys("shift+tab", "esc"), key.WithHelp("esc", "blur")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "validate")),
	Clear:  key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
	Icon:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "icon")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Blur, k.Submit, k.Clear, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Blur, k.Submit},
		{k.Clear, k.Icon, k.Quit},
	}
}

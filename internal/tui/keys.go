package tui

import "github.com/charmbracelet/bubbles/key"

// Key bindings
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Enter   key.Binding
	Back    key.Binding
	Compose key.Binding
	React   key.Binding
	Reply   key.Binding
	Mood    key.Binding
	Theme   key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
	Escape  key.Binding
	Logout  key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "replies")),
	Back:    key.NewBinding(key.WithKeys("esc", "h"), key.WithHelp("esc", "back")),
	Compose: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "confess")),
	React:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "react")),
	Reply:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reply")),
	Mood:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mood filter")),
	Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Refresh: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "refresh")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Escape:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Logout:  key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "logout")),
}

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up     key.Binding
	down   key.Binding
	enter  key.Binding
	esc    key.Binding
	apply  key.Binding
	reveal key.Binding
	copy   key.Binding
	quit   key.Binding
	yes    key.Binding
	no     key.Binding
}

var keys = keyMap{
	up:     key.NewBinding(key.WithKeys("up", "k")),
	down:   key.NewBinding(key.WithKeys("down", "j")),
	enter:  key.NewBinding(key.WithKeys("enter")),
	esc:    key.NewBinding(key.WithKeys("esc")),
	apply:  key.NewBinding(key.WithKeys("a")),
	reveal: key.NewBinding(key.WithKeys("r")),
	copy:   key.NewBinding(key.WithKeys("c")),
	quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
	yes:    key.NewBinding(key.WithKeys("y")),
	no:     key.NewBinding(key.WithKeys("n")),
}

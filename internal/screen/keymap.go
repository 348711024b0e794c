package screen

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "start/pause"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

package workout

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	complete key.Binding
	field    key.Binding
	next     key.Binding
	prev     key.Binding
	finish   key.Binding
	skip     key.Binding
	quit     key.Binding
}

var defaultKeymap = keymap{
	complete: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "complete set"),
	),
	field: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch field"),
	),
	next: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("ctrl+n", "next exercise"),
	),
	prev: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("ctrl+p", "prev exercise"),
	),
	finish: key.NewBinding(
		key.WithKeys("ctrl+f"),
		key.WithHelp("ctrl+f", "finish workout"),
	),
	skip: key.NewBinding(
		key.WithKeys("s", "enter"),
		key.WithHelp("s", "skip rest"),
	),
	quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

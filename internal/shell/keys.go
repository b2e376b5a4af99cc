package shell

import "github.com/charmbracelet/bubbles/key"

// keyMap holds key bindings for the interactive prompt.
type keyMap struct {
	Submit key.Binding
	Prev   key.Binding
	Next   key.Binding
	Quit   key.Binding
	EOF    key.Binding // Quits on an empty line; deletes forward otherwise.
}

// ShortHelp returns the bindings shown in the help bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Prev, k.Quit}
}

// FullHelp returns the bindings grouped for expanded help.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Prev, k.Next},
		{k.Quit, k.EOF},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "history"),
		),
		Next: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		EOF: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "quit on empty line"),
		),
	}
}

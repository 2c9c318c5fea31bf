package preview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	format key.Binding
	up     key.Binding
	down   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		format: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "format"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓", "scroll"),
		),
		down: key.NewBinding(key.WithKeys("down", "j")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.format,
		k.up,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{}, // only render short help
	}
}

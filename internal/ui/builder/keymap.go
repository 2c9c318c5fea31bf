package builder

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	fold     key.Binding
	add      key.Binding
	addChild key.Binding
	remove   key.Binding
	edit     key.Binding
	pickType key.Binding
	nextType key.Binding
	done     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:   key.NewBinding(key.WithKeys("up", "k")),
		down: key.NewBinding(key.WithKeys("down", "j")),
		fold: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fold"),
		),
		add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add field"),
		),
		addChild: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "add nested field"),
		),
		remove: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "remove"),
		),
		edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "edit key"),
		),
		pickType: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "type"),
		),
		nextType: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cycle type"),
		),
		done: key.NewBinding(key.WithKeys("enter", "esc")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.add,
		k.addChild,
		k.edit,
		k.pickType,
		k.remove,
		k.fold,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{}, // only render short help
	}
}

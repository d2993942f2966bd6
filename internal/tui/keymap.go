package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up, down, prevArea, nextArea key.Binding
	nextType, prevType           key.Binding
	add, remove                  key.Binding
	moveUp, moveDown, moveArea   key.Binding
	undo, redo                   key.Binding
	randomize, lock              key.Binding
	help, quit                   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous part"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next part"),
		),
		prevArea: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous area"),
		),
		nextArea: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next area"),
		),
		nextType: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next part type"),
		),
		prevType: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous part type"),
		),
		add: key.NewBinding(
			key.WithKeys("a", "enter"),
			key.WithHelp("a", "add part"),
		),
		remove: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete part"),
		),
		moveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move up"),
		),
		moveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move down"),
		),
		moveArea: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "move to next area"),
		),
		undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		redo: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "redo"),
		),
		randomize: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "randomize colors"),
		),
		lock: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "toggle color lock"),
		),
		help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.add, k.remove, k.undo, k.redo, k.randomize, k.help, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.prevArea, k.nextArea},
		{k.nextType, k.prevType, k.add, k.remove},
		{k.moveUp, k.moveDown, k.moveArea},
		{k.undo, k.redo, k.randomize, k.lock},
		{k.help, k.quit},
	}
}

package main

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the grid's keybindings
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Open     key.Binding
	Back     key.Binding
	Forward  key.Binding
	EditPath key.Binding
	Rename   key.Binding
	Delete   key.Binding
	Filter   key.Binding
	Mark     key.Binding
	MarkAll  key.Binding
	Clear    key.Binding
	Hidden   key.Binding
	CopyPath key.Binding
	Refresh  key.Binding
	Help     key.Binding
	Quit     key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:     key.NewBinding(key.WithKeys("backspace", "alt+left", "["), key.WithHelp("⌫/[", "back")),
		Forward:  key.NewBinding(key.WithKeys("alt+right", "]"), key.WithHelp("]", "forward")),
		EditPath: key.NewBinding(key.WithKeys("ctrl+l", "g"), key.WithHelp("ctrl+l", "go to path")),
		Rename:   key.NewBinding(key.WithKeys("f2", "r"), key.WithHelp("r", "rename")),
		Delete:   key.NewBinding(key.WithKeys("delete", "x"), key.WithHelp("x", "delete")),
		Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Mark:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "mark")),
		MarkAll:  key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "mark all")),
		Clear:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Hidden:   key.NewBinding(key.WithKeys("."), key.WithHelp(".", "hidden files")),
		CopyPath: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy path")),
		Refresh:  key.NewBinding(key.WithKeys("ctrl+r", "f5"), key.WithHelp("ctrl+r", "refresh")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Confirm:  key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "yes")),
		Cancel:   key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "no")),
	}
}

// ShortHelp returns keybindings to be shown in the footer
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Back, k.Forward, k.Rename, k.Delete, k.Filter, k.Help, k.Quit}
}

// FullHelp returns keybindings for the help screen
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Open},
		{k.Back, k.Forward, k.EditPath, k.Refresh},
		{k.Rename, k.Delete, k.Mark, k.MarkAll, k.Clear},
		{k.Filter, k.Hidden, k.CopyPath, k.Help, k.Quit},
	}
}

package main

import "github.com/charmbracelet/bubbles/key"

// keyMap binds the line editor keys. Word and line bindings carry
// ctrl/alt fallbacks since terminals disagree on what they send.
type keyMap struct {
	Left, Right         key.Binding
	WordLeft, WordRight key.Binding
	Up, Down            key.Binding
	Home, End           key.Binding

	Backspace, Delete key.Binding
	KillWord, KillEnd key.Binding
	Transpose         key.Binding
	Newline, Accept   key.Binding

	Undo, Redo key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:  key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "right")),

		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left", "alt+b"), key.WithHelp("alt+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right", "alt+f"), key.WithHelp("alt+→", "word right")),

		Up:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "row up")),
		Down: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "row down")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete right")),
		KillWord:  key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "kill word")),
		KillEnd:   key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "kill to end")),
		Transpose: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "transpose")),

		Newline: key.NewBinding(key.WithKeys("alt+enter"), key.WithHelp("alt+enter", "newline")),
		Accept:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z", "ctrl+_"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Accept, k.Newline, k.Undo, k.Redo, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.WordLeft, k.WordRight, k.Up, k.Down, k.Home, k.End},
		{k.Backspace, k.Delete, k.KillWord, k.KillEnd, k.Transpose},
		{k.Newline, k.Accept, k.Undo, k.Redo, k.Quit},
	}
}

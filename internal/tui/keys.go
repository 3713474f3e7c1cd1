package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	save      key.Binding
	saveChat  key.Binding
	template  key.Binding
	processed key.Binding
	delete    key.Binding
	chat      key.Binding
	reflect   key.Binding
	reload    key.Binding
	copy      key.Binding
	reset     key.Binding
	dayUp     key.Binding
	dayDown   key.Binding
	newItem   key.Binding
	today     key.Binding
	week      key.Binding
	month     key.Binding
	all       key.Binding
	yes       key.Binding
	no        key.Binding
	arrowUp   key.Binding
	arrowDown key.Binding
	category  key.Binding
	openNote  key.Binding
}

// Screens with a focused text field only react to ctrl combos and the
// navigation keys; plain letters are typed into the field.
var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	saveChat:  key.NewBinding(key.WithKeys("ctrl+o")),
	template:  key.NewBinding(key.WithKeys("ctrl+t")),
	processed: key.NewBinding(key.WithKeys("p")),
	delete:    key.NewBinding(key.WithKeys("d")),
	chat:      key.NewBinding(key.WithKeys("c")),
	reflect:   key.NewBinding(key.WithKeys("r")),
	reload:    key.NewBinding(key.WithKeys("ctrl+r", "g")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	reset:     key.NewBinding(key.WithKeys("ctrl+x")),
	dayUp:     key.NewBinding(key.WithKeys("+", "=")),
	dayDown:   key.NewBinding(key.WithKeys("-")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	today:     key.NewBinding(key.WithKeys("1")),
	week:      key.NewBinding(key.WithKeys("2")),
	month:     key.NewBinding(key.WithKeys("3")),
	all:       key.NewBinding(key.WithKeys("4")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
	arrowUp:   key.NewBinding(key.WithKeys("up")),
	arrowDown: key.NewBinding(key.WithKeys("down")),
	category:  key.NewBinding(key.WithKeys("ctrl+f")),
	openNote:  key.NewBinding(key.WithKeys("ctrl+o")),
}

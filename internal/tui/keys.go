// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	search   key.Binding
	loadMore key.Binding
	reload   key.Binding
	newItem  key.Binding
	account  key.Binding
	signup   key.Binding
	edit     key.Binding
	delete   key.Binding
	copy     key.Binding
	preview  key.Binding
	save     key.Binding
	toSignup key.Binding
	toLogin  key.Binding
	yes      key.Binding
	no       key.Binding
}

// Bindings used while a text field has focus are ctrl chords only.
var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left")),
	right:    key.NewBinding(key.WithKeys("right")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q")),
	search:   key.NewBinding(key.WithKeys("/")),
	loadMore: key.NewBinding(key.WithKeys("m")),
	reload:   key.NewBinding(key.WithKeys("r")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	account:  key.NewBinding(key.WithKeys("L")),
	signup:   key.NewBinding(key.WithKeys("S")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	preview:  key.NewBinding(key.WithKeys("p")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	toSignup: key.NewBinding(key.WithKeys("ctrl+u")),
	toLogin:  key.NewBinding(key.WithKeys("ctrl+l")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit      key.Binding
	forceQuit key.Binding
	info      key.Binding
	esc       key.Binding
}

var keys = keyMap{
	quit:      key.NewBinding(key.WithKeys("q", "enter")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	info:      key.NewBinding(key.WithKeys("v")),
	esc:       key.NewBinding(key.WithKeys("esc")),
}

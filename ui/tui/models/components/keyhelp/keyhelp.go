// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyhelp renders the key binding bar at the bottom of a view.
package keyhelp

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/toeirei/paymentkit/ui/tui/util"
)

type Model struct {
	KeyMap   help.KeyMap
	Expanded bool

	size util.Size
	help help.Model
}

func New(keyMap help.KeyMap) *Model {
	return &Model{
		KeyMap: keyMap,
		help:   help.New(),
	}
}

func (m *Model) Update(msg tea.Msg) {
	if m.size.Update(msg) {
		m.help.Width = m.size.Width
	}
}

func (m *Model) View() string {
	if m.KeyMap == nil {
		return ""
	}
	m.help.ShowAll = m.Expanded
	return m.help.View(m.KeyMap)
}

func (m *Model) ToggleExpanded() {
	m.Expanded = !m.Expanded
}

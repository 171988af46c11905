// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/toeirei/paymentkit/internal/i18n"
)

type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Paste  key.Binding
	Submit key.Binding
	Cancel key.Binding
	Help   key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Next, km.Submit, km.Cancel, km.Help}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Next, km.Prev, km.Toggle},
		{km.Paste, km.Submit, km.Cancel, km.Help},
	}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// Resolve maps a key press onto the action bound to it.
func (km KeyMap) Resolve(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, km.Cancel):
		return ActionCancel
	case key.Matches(msg, km.Submit):
		return ActionSubmit
	case key.Matches(msg, km.Next):
		return ActionNext
	case key.Matches(msg, km.Prev):
		return ActionPrev
	case key.Matches(msg, km.Toggle):
		return ActionToggle
	case key.Matches(msg, km.Paste):
		return ActionPaste
	case key.Matches(msg, km.Help):
		return ActionHelp
	}
	return ActionNone
}

// DefaultKeyMap builds the bindings with help text in the active language.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", i18n.T("tui.help.next")),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", i18n.T("tui.help.prev")),
		),
		Toggle: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", i18n.T("tui.help.toggle")),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", i18n.T("tui.help.paste")),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", i18n.T("tui.help.submit")),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", i18n.T("tui.help.quit")),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", i18n.T("tui.help.more")),
		),
	}
}

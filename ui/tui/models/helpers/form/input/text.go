// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package forminput

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Text is a labelled single line input. Edits are applied by the owner
// through SetValue; Update only moves the cursor.
type Text struct {
	Label       string
	Placeholder string

	input   textinput.Model
	focused bool
}

func NewText(label, placeholder string, limit int) *Text {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = limit
	in.Placeholder = placeholder
	return &Text{
		Label:       label,
		Placeholder: placeholder,
		input:       in,
	}
}

func (t *Text) Focus() tea.Cmd {
	t.focused = true
	return t.input.Focus()
}

func (t *Text) Blur() {
	t.input.Blur()
	t.focused = false
}

func (t *Text) Focused() bool { return t.focused }

func (t *Text) Value() string { return t.input.Value() }

// Position is the cursor offset in bytes. Inputs only ever hold ASCII.
func (t *Text) Position() int { return t.input.Position() }

// SetValue replaces the content and puts the cursor at pos.
func (t *Text) SetValue(value string, pos int) {
	t.input.SetValue(value)
	t.input.SetCursor(pos)
}

func (t *Text) Reset() {
	t.input.SetValue("")
}

// Update forwards cursor movement keys to the underlying input.
func (t *Text) Update(msg tea.Msg) tea.Cmd {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.Type {
		case tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd, tea.KeyCtrlA, tea.KeyCtrlE:
		default:
			return nil
		}
	}
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd
}

// View renders label and input. textStyle colors the entered text, for
// example to flag an error.
func (t *Text) View(width int, textStyle lipgloss.Style) string {
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Width(width)

	focusedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	label := t.Label
	if t.focused {
		label = focusedStyle.Render(label)
	} else {
		label = labelStyle.Render(label)
	}

	t.input.Width = max(width-2, 1)
	t.input.TextStyle = textStyle
	return lipgloss.JoinVertical(lipgloss.Left, label, t.input.View())
}

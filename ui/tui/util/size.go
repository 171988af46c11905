// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package util

import tea "github.com/charmbracelet/bubbletea"

// Size tracks the last window size a model was told about.
type Size struct {
	Width  int
	Height int
}

// Update records msg if it is a window size message and reports whether it
// was one.
func (s *Size) Update(msg tea.Msg) bool {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		s.Width, s.Height = msg.Width, msg.Height
		return true
	}
	return false
}

// WidthOr returns the known width, or fallback before the first resize.
func (s Size) WidthOr(fallback int) int {
	if s.Width <= 0 {
		return fallback
	}
	return s.Width
}

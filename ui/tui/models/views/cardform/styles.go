// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package cardform

import "github.com/charmbracelet/lipgloss"

const (
	colorSubtle    = lipgloss.Color("240")
	colorHighlight = lipgloss.Color("81")
	colorError     = lipgloss.Color("196")
	colorSuccess   = lipgloss.Color("40")
	colorWhite     = lipgloss.Color("231")
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			PaddingBottom(1)

	helpStyle    = lipgloss.NewStyle().Foreground(colorSubtle)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	plainStyle   = lipgloss.NewStyle()

	// Card artwork badge left of the number.
	artworkStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.Color("237")).
			Padding(0, 1).
			MarginRight(2).
			Width(14).
			Align(lipgloss.Center)

	summaryStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			MarginRight(2)

	fieldBoxStyle = lipgloss.NewStyle().MarginRight(2)
)

// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package cardform

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/toeirei/paymentkit/core/brand"
	"github.com/toeirei/paymentkit/core/engine"
	"github.com/toeirei/paymentkit/core/model"
	"github.com/toeirei/paymentkit/internal/i18n"
)

const (
	numberWidth = 24
	shortWidth  = 9
)

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("tui.title")))
	b.WriteString("\n")
	b.WriteString(m.fieldsView())
	b.WriteString("\n\n")
	b.WriteString(m.statusView())
	if m.opts.ShowHelp {
		b.WriteString("\n\n")
		b.WriteString(m.help.View())
	}
	return docStyle.Render(b.String())
}

func (m *Model) fieldsView() string {
	art := artworkStyle.Render(artworkLabel(m.eng.Artwork()))

	numberStyle := plainStyle
	if m.eng.NumberHasError() {
		numberStyle = errorStyle
	}

	// Expiry and CVC are only shown once the number has collapsed.
	if !m.collapsed {
		return lipgloss.JoinHorizontal(lipgloss.Bottom,
			art,
			fieldBoxStyle.Render(m.inputs[model.CardNumber].View(numberWidth, numberStyle)),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom,
		art,
		summaryStyle.Render(m.summary()),
		fieldBoxStyle.Render(m.inputs[model.Expiry].View(shortWidth, plainStyle)),
		fieldBoxStyle.Render(m.inputs[model.CVC].View(shortWidth, plainStyle)),
	)
}

// summary is the collapsed number: bullets and the trailing digits, or the
// whole number when masking is off.
func (m *Model) summary() string {
	if !m.opts.MaskSummary {
		return m.eng.Text(model.CardNumber)
	}
	return "•••• " + m.eng.Summary()
}

func (m *Model) statusView() string {
	switch {
	case m.status != "":
		return errorStyle.Render(m.status)
	case m.eng.NumberHasError():
		return errorStyle.Render(i18n.T("tui.number_error"))
	case m.eng.Valid():
		return successStyle.Render(i18n.T("tui.status_valid"))
	}
	return helpStyle.Render(i18n.T("tui.status_hint"))
}

func artworkLabel(a engine.Artwork) string {
	if a.CVC {
		if a.Brand == brand.AmericanExpress {
			return i18n.T("tui.artwork.cvc_front")
		}
		return i18n.T("tui.artwork.cvc_back")
	}
	if a.Brand == brand.Unknown {
		return "▭"
	}
	return a.Brand.String()
}

// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/toeirei/paymentkit/ui/tui/models/views/cardform"
)

type Options struct {
	AltScreen bool
	Form      cardform.Options
}

// Run shows the card form until the user submits or cancels. ok is false
// when the form was cancelled.
func Run(opts Options) (res cardform.Result, ok bool, err error) {
	var progOpts []tea.ProgramOption
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	final, err := tea.NewProgram(cardform.New(opts.Form), progOpts...).Run()
	if err != nil {
		return res, false, err
	}
	m, isForm := final.(*cardform.Model)
	if !isForm {
		return res, false, fmt.Errorf("unexpected final model %T", final)
	}
	res, ok = m.Result()
	return res, ok, nil
}

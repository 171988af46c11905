// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package form holds the pieces shared by form views: the actions a key can
// trigger, the key map that resolves them and result decoding.
package form

type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrev
	ActionSubmit
	ActionCancel
	ActionToggle
	ActionPaste
	ActionHelp
)

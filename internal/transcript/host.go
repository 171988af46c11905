// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package transcript

import (
	"github.com/toeirei/paymentkit/core/brand"
	"github.com/toeirei/paymentkit/core/engine"
	"github.com/toeirei/paymentkit/core/model"
)

// Host plays the part of a UI without drawing anything. It keeps the text
// each field shows, which field has focus and whether the number is
// collapsed, and applies directives the way an interactive host would.
type Host struct {
	eng       *engine.Engine
	text      [3]string
	focused   model.Field
	collapsed bool
	valid     bool
	brand     brand.Brand
	artwork   engine.Artwork

	// out collects every directive applied since the last Drain.
	out []engine.Directive
}

// NewHost wraps e. The number field starts focused.
func NewHost(e *engine.Engine) *Host {
	return &Host{eng: e, focused: model.CardNumber}
}

// Engine returns the wrapped engine.
func (h *Host) Engine() *engine.Engine { return h.eng }

// Text returns what field f shows.
func (h *Host) Text(f model.Field) string { return h.text[f] }

// Focused returns the field holding focus.
func (h *Host) Focused() model.Field { return h.focused }

// Collapsed reports whether the number shows its summary.
func (h *Host) Collapsed() bool { return h.collapsed }

// Valid is the last ValidityChanged value received.
func (h *Host) Valid() bool { return h.valid }

// Brand is the last BrandChanged value received.
func (h *Host) Brand() brand.Brand { return h.brand }

// Artwork is the last ArtworkChanged value received.
func (h *Host) Artwork() engine.Artwork { return h.artwork }

// Drain returns and clears the directives applied so far.
func (h *Host) Drain() []engine.Directive {
	out := h.out
	h.out = nil
	return out
}

// Attach shows the given values and lets the engine settle on a start state.
func (h *Host) Attach(a Attach) {
	h.text = [3]string{a.Number, a.Expiry, a.CVC}
	h.apply(h.eng.Attach(a.Number, a.Expiry, a.CVC))
}

// Focus moves focus as if the user clicked into f.
func (h *Host) Focus(f model.Field) {
	f.MustValid()
	h.moveFocus(f)
}

// Type enters s one character at a time at the end of the focused field.
// Focus may move between keystrokes; later characters follow it.
func (h *Host) Type(s string) {
	for i := 0; i < len(s); i++ {
		h.insert(h.focused, s[i:i+1])
	}
}

// Paste inserts s as a single edit at the end of the focused field.
func (h *Host) Paste(s string) {
	h.insert(h.focused, s)
}

// Backspace presses the delete key once in the focused field.
func (h *Host) Backspace() {
	f := h.focused
	cur := h.text[f]
	if cur == "" {
		h.apply(h.eng.BackspaceOnEmpty(f))
		return
	}
	sel := model.Selection{Start: len(cur) - 1, End: len(cur)}
	if _, ok := h.eng.TextWillChange(f, "", sel); !ok {
		return
	}
	h.change(f, sel.Apply(cur, ""))
}

// TapSummary clicks the collapsed number or the card artwork.
func (h *Host) TapSummary() {
	h.apply(h.eng.SummaryTapped())
}

func (h *Host) insert(f model.Field, s string) {
	cur := h.text[f]
	ins, ok := h.eng.TextWillChange(f, s, model.Caret(len(cur)))
	if !ok {
		return
	}
	h.change(f, cur+ins)
}

func (h *Host) change(f model.Field, text string) {
	h.text[f] = text
	h.apply(h.eng.TextDidChange(f, text))
}

func (h *Host) moveFocus(f model.Field) {
	if f == h.focused {
		return
	}
	prev := h.focused
	h.focused = f
	h.apply(h.eng.FocusLost(prev))
	h.apply(h.eng.FocusGained(f))
}

func (h *Host) apply(ds []engine.Directive) {
	for _, d := range ds {
		h.out = append(h.out, d)
		switch d.Kind {
		case engine.ReplaceText:
			// Applied silently: the engine already holds this text.
			h.text[d.Field] = d.Text
		case engine.RequestFocus:
			h.moveFocus(d.Field)
		case engine.RequestCollapse:
			h.collapsed = true
		case engine.RequestExpand:
			h.collapsed = false
		case engine.ValidityChanged:
			h.valid = d.Valid
		case engine.BrandChanged:
			h.brand = d.Brand
		case engine.ArtworkChanged:
			h.artwork = d.Artwork
		}
	}
}

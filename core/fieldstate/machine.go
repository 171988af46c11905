// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package fieldstate

import (
	"fmt"

	"github.com/toeirei/paymentkit/core/model"
)

// State is the combined view of focus and number presentation.
type State int

const (
	NumberExpanded State = iota
	NumberCollapsed
	ExpiryActive
	CvcActive
)

func (s State) String() string {
	switch s {
	case NumberExpanded:
		return "NumberActive-Expanded"
	case NumberCollapsed:
		return "NumberActive-Collapsed"
	case ExpiryActive:
		return "ExpiryActive"
	case CvcActive:
		return "CvcActive"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Machine tracks the focused field and the collapse flag. The focus it
// records is the last one it requested or the host reported, whichever came
// last. The zero value is not ready; use New.
type Machine struct {
	focus     model.Field
	collapsed bool
	validity  Validity
}

// New returns a machine with the number field focused and expanded.
func New() *Machine {
	return &Machine{focus: model.CardNumber}
}

// Focused returns the field the machine believes holds focus.
func (m *Machine) Focused() model.Field { return m.focus }

// Collapsed reports whether the number field shows its summary.
func (m *Machine) Collapsed() bool { return m.collapsed }

// State folds focus and collapse into one value.
func (m *Machine) State() State {
	switch m.focus {
	case model.Expiry:
		return ExpiryActive
	case model.CVC:
		return CvcActive
	}
	if m.collapsed {
		return NumberCollapsed
	}
	return NumberExpanded
}

// Attach derives the initial state from values already present. A valid
// number skips straight to the collapsed presentation with focus on the
// expiry, or on the CVC when the expiry is valid too.
func (m *Machine) Attach(v Validity) []Directive {
	m.validity = v
	if !v.Number {
		m.collapsed = false
		m.focus = model.CardNumber
		return []Directive{Focus(model.CardNumber)}
	}
	m.collapsed = true
	target := model.Expiry
	if v.Expiry {
		target = model.CVC
	}
	m.focus = target
	return []Directive{Collapse, Focus(target)}
}

// OnFieldEvent applies one event and returns the directives it causes, in the
// order the host should carry them out.
func (m *Machine) OnFieldEvent(e Event) []Directive {
	e.Field.MustValid()

	switch e.Kind {
	case TextChanged:
		m.validity = e.Validity
		return m.onTextChanged(e)

	case FocusGained:
		m.focus = e.Field
		if e.Field == model.CardNumber && m.collapsed {
			m.collapsed = false
			return []Directive{Expand}
		}
		return nil

	case FocusLost:
		return nil

	case BackspaceOnEmpty:
		if e.Field == model.CardNumber {
			return nil
		}
		return m.focusTo(e.Field.Prev())

	case SummaryTapped:
		m.validity = e.Validity
		if m.collapsed {
			return m.focusTo(model.CardNumber)
		}
		if m.validity.Number {
			return m.collapse()
		}
		return nil
	}
	panic(fmt.Sprintf("paymentkit: unknown event kind %d", int(e.Kind)))
}

func (m *Machine) onTextChanged(e Event) []Directive {
	switch e.Field {
	case model.CardNumber:
		if e.Validity.Number && e.Validity.Complete && !m.collapsed && m.focus == model.CardNumber {
			return m.collapse()
		}

	case model.Expiry:
		if e.Validity.Expiry && m.focus != model.CVC {
			return m.focusTo(model.CVC)
		}
		// Deleting the expiry down to nothing hands focus back to the number.
		if e.Empty && e.Edit == model.Delete {
			return m.focusTo(model.CardNumber)
		}

	case model.CVC:
		// An empty CVC returns to the expiry no matter how it got empty.
		if e.Empty {
			return m.focusTo(model.Expiry)
		}
	}
	return nil
}

func (m *Machine) collapse() []Directive {
	m.collapsed = true
	m.focus = model.Expiry
	return []Directive{Collapse, Focus(model.Expiry)}
}

// focusTo requests focus on f. Moving focus onto a collapsed number field
// expands it first.
func (m *Machine) focusTo(f model.Field) []Directive {
	var ds []Directive
	if f == model.CardNumber && m.collapsed {
		m.collapsed = false
		ds = append(ds, Expand)
	}
	m.focus = f
	return append(ds, Focus(f))
}

// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package fieldstate

import (
	"fmt"

	"github.com/toeirei/paymentkit/core/model"
)

// Validity is the subset of card validity the machine reacts to.
type Validity struct {
	// Number is length and checksum validity of the card number.
	Number bool
	// Complete is set once the number has the brand's maximum length, so no
	// further digit can be typed into it.
	Complete bool
	// Expiry is full validity of the expiry date.
	Expiry bool
}

type EventKind int

const (
	TextChanged EventKind = iota
	FocusGained
	FocusLost
	BackspaceOnEmpty
	SummaryTapped
)

func (k EventKind) String() string {
	switch k {
	case TextChanged:
		return "TextChanged"
	case FocusGained:
		return "FocusGained"
	case FocusLost:
		return "FocusLost"
	case BackspaceOnEmpty:
		return "BackspaceOnEmpty"
	case SummaryTapped:
		return "SummaryTapped"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one thing that happened in the host.
type Event struct {
	Kind  EventKind
	Field model.Field
	// Edit and Empty describe a TextChanged event.
	Edit  model.EditKind
	Empty bool
	// Validity is the card validity after the event was applied.
	Validity Validity
}

// Changed builds a TextChanged event.
func Changed(f model.Field, edit model.EditKind, empty bool, v Validity) Event {
	return Event{Kind: TextChanged, Field: f, Edit: edit, Empty: empty, Validity: v}
}

// Gained builds a FocusGained event.
func Gained(f model.Field) Event {
	return Event{Kind: FocusGained, Field: f}
}

// Lost builds a FocusLost event.
func Lost(f model.Field) Event {
	return Event{Kind: FocusLost, Field: f}
}

// Backspace builds a BackspaceOnEmpty event.
func Backspace(f model.Field) Event {
	return Event{Kind: BackspaceOnEmpty, Field: f}
}

// Tapped builds a SummaryTapped event.
func Tapped(v Validity) Event {
	return Event{Kind: SummaryTapped, Field: model.CardNumber, Validity: v}
}

// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"fmt"
	"strings"
)

// Field identifies one of the three logical inputs of a card form.
type Field int

const (
	CardNumber Field = iota
	Expiry
	CVC
)

// Fields lists every field in focus order.
var Fields = []Field{CardNumber, Expiry, CVC}

func (f Field) String() string {
	switch f {
	case CardNumber:
		return "number"
	case Expiry:
		return "expiry"
	case CVC:
		return "cvc"
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// Valid reports whether f is one of the declared fields.
func (f Field) Valid() bool {
	return f >= CardNumber && f <= CVC
}

// MustValid panics when f is not a declared field. An unknown field can only
// come from a caller bug, never from user input.
func (f Field) MustValid() {
	if !f.Valid() {
		panic(fmt.Sprintf("paymentkit: unknown field %d", int(f)))
	}
}

// Prev returns the field before f in focus order. The card number has no
// predecessor and returns itself.
func (f Field) Prev() Field {
	f.MustValid()
	if f == CardNumber {
		return CardNumber
	}
	return f - 1
}

// Next returns the field after f in focus order. The CVC has no successor and
// returns itself.
func (f Field) Next() Field {
	f.MustValid()
	if f == CVC {
		return CVC
	}
	return f + 1
}

// ParseField accepts the names produced by String plus a few common aliases.
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "number", "card", "cardnumber", "card_number", "pan":
		return CardNumber, nil
	case "expiry", "exp", "expiry_date", "date":
		return Expiry, nil
	case "cvc", "cvv", "cvc2", "security_code":
		return CVC, nil
	}
	return 0, fmt.Errorf("unknown field %q", s)
}

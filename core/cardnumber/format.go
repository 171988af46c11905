// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package cardnumber

import (
	"strings"

	"github.com/toeirei/paymentkit/core/brand"
	"github.com/toeirei/paymentkit/core/model"
)

// Digits strips everything but ASCII digits.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Format regroups the digits of raw for the brand they belong to. Digits past
// the brand's longest accepted length are dropped.
//
// On Insert, a separator that falls exactly after the last digit is kept so
// the caret lands behind it. On Delete it is left out; otherwise deleting that
// separator would immediately re-create it.
//
// Format is idempotent for a fixed kind.
func Format(raw string, kind model.EditKind) string {
	digits := Digits(raw)
	b := brand.Detect(digits)
	if limit := b.MaxLength(); len(digits) > limit {
		digits = digits[:limit]
	}

	bounds := boundaries(b.Groups())
	var out strings.Builder
	out.Grow(len(digits) + len(bounds))
	for i := 0; i < len(digits); i++ {
		if i > 0 && bounds[i] {
			out.WriteByte(Separator)
		}
		out.WriteByte(digits[i])
	}
	if kind == model.Insert && len(digits) > 0 && len(digits) < b.MaxLength() && bounds[len(digits)] {
		out.WriteByte(Separator)
	}
	return out.String()
}

// boundaries marks the digit offsets that start a new group.
func boundaries(groups []int) map[int]bool {
	bounds := make(map[int]bool, len(groups))
	at := 0
	for _, g := range groups {
		at += g
		bounds[at] = true
	}
	return bounds
}

// Mask renders the number in its display grouping with every digit except the
// last keep replaced by a bullet.
func Mask(number string, keep int) string {
	formatted := Format(number, model.Delete)
	total := len(Digits(formatted))
	var out strings.Builder
	seen := 0
	for i := 0; i < len(formatted); i++ {
		c := formatted[i]
		if !isDigit(c) {
			out.WriteByte(c)
			continue
		}
		if seen < total-keep {
			out.WriteString("•")
		} else {
			out.WriteByte(c)
		}
		seen++
	}
	return out.String()
}

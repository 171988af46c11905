// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package cardnumber

import "github.com/toeirei/paymentkit/core/model"

// MaxFormattedLength caps the number field, separators included.
const MaxFormattedLength = 19

// Separator is the grouping character inserted between digit groups.
const Separator = ' '

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Filter gates an insertion into the number field. Only ASCII digits and the
// separator are allowed and a single disallowed character rejects the whole
// insertion. Insertions that would overflow MaxFormattedLength are cut to
// fit; when nothing fits the edit is rejected.
func Filter(insertion, existing string, sel model.Selection) (string, bool) {
	for i := 0; i < len(insertion); i++ {
		if c := insertion[i]; !isDigit(c) && c != Separator {
			return "", false
		}
	}
	return fit(insertion, existing, sel, MaxFormattedLength)
}

// FilterCVC gates an insertion into the CVC field: digits only, all or
// nothing, at most maxLen characters in total.
func FilterCVC(insertion, existing string, sel model.Selection, maxLen int) (string, bool) {
	for i := 0; i < len(insertion); i++ {
		if !isDigit(insertion[i]) {
			return "", false
		}
	}
	return fit(insertion, existing, sel, maxLen)
}

func fit(insertion, existing string, sel model.Selection, maxLen int) (string, bool) {
	if insertion == "" {
		return "", true
	}
	sel = sel.Clamp(len(existing))
	room := maxLen - (len(existing) - sel.Len())
	if room <= 0 {
		return "", false
	}
	if len(insertion) > room {
		insertion = insertion[:room]
	}
	return insertion, true
}

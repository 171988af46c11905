// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package expiry

import "github.com/toeirei/paymentkit/core/model"

// Filter gates an edit of the expiry field. The edit is accepted when the
// resulting text is empty, or fits MaxLength and is still partially valid;
// otherwise the whole keystroke is rejected.
func Filter(insertion, existing string, sel model.Selection) (string, bool) {
	proposed := sel.Apply(existing, insertion)
	if proposed == "" {
		return insertion, true
	}
	if len(proposed) > MaxLength {
		return "", false
	}
	if !Parse(proposed).IsPartiallyValid() {
		return "", false
	}
	return insertion, true
}

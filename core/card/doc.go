// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package card aggregates the number, expiry and CVC of a payment card and
// answers the validity questions asked on every keystroke. All predicates
// are total: an empty card is simply invalid.
package card

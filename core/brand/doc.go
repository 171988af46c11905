// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package brand maps a card number prefix to its issuing network and the
// length, grouping and CVC rules that follow from it.
package brand

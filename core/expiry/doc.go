// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package expiry parses the MM/YY expiry field from possibly incomplete
// keystroke input and decides whether what was typed so far can still become
// a valid date.
package expiry

// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cardnumber filters raw keystrokes for the number and CVC fields and
// regroups card numbers for display.
package cardnumber

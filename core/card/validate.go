// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package card

import "github.com/toeirei/paymentkit/core/expiry"

// ValidateNumberLength reports whether the digit count is accepted by the
// brand, or plausible when the brand is unknown.
func (c *Card) ValidateNumberLength() bool {
	if c.number == "" {
		return false
	}
	return c.Brand().AcceptsLength(len(c.number))
}

// ValidateNumber is the length check plus the Luhn checksum.
func (c *Card) ValidateNumber() bool {
	return c.ValidateNumberLength() && Luhn(c.number)
}

// ValidateExpiryDate reports whether month and year are set and the month has
// not ended yet.
func (c *Card) ValidateExpiryDate() bool {
	if c.expMonth == 0 || c.expYear == 0 {
		return false
	}
	return expiry.ValidAt(c.expMonth, c.expYear, c.clock())
}

// ValidateCVC reports whether the CVC has the length the brand requires.
func (c *Card) ValidateCVC() bool {
	return c.cvc != "" && len(c.cvc) == c.Brand().CVCLength()
}

// ValidateCard is the conjunction of number, expiry and CVC validity.
func (c *Card) ValidateCard() bool {
	return c.ValidateNumber() && c.ValidateExpiryDate() && c.ValidateCVC()
}

// Report collects every predicate at once.
type Report struct {
	Brand        string `json:"brand"`
	NumberLength bool   `json:"number_length"`
	Number       bool   `json:"number"`
	Expiry       bool   `json:"expiry"`
	CVC          bool   `json:"cvc"`
	Card         bool   `json:"card"`
}

// Report evaluates all predicates.
func (c *Card) Report() Report {
	return Report{
		Brand:        c.Brand().String(),
		NumberLength: c.ValidateNumberLength(),
		Number:       c.ValidateNumber(),
		Expiry:       c.ValidateExpiryDate(),
		CVC:          c.ValidateCVC(),
		Card:         c.ValidateCard(),
	}
}

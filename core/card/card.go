// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package card

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/toeirei/paymentkit/core/brand"
	"github.com/toeirei/paymentkit/core/cardnumber"
	"github.com/toeirei/paymentkit/core/expiry"
)

// MaxNumberDigits is the longest number the card stores.
const MaxNumberDigits = 19

// MaxCVCDigits is the longest CVC the card stores.
const MaxCVCDigits = 4

var (
	ErrInvalidNumber = errors.New("card number must contain only digits and separators")
	ErrInvalidMonth  = errors.New("expiry month must be between 1 and 12")
	ErrInvalidYear   = errors.New("expiry year must have two or four digits")
	ErrInvalidCVC    = errors.New("cvc must be 1 to 4 digits")
)

// Card holds the three field values. Setters replace a whole field or return
// an error and leave the card untouched. The zero value is an empty card that
// reads the wall clock.
type Card struct {
	number   string
	expMonth int
	expYear  int
	cvc      string
	now      func() time.Time
}

// Option configures a Card.
type Option func(*Card)

// WithClock makes expiry checks use now instead of the wall clock.
func WithClock(now func() time.Time) Option {
	return func(c *Card) {
		c.now = now
	}
}

// New returns an empty card.
func New(opts ...Option) *Card {
	c := &Card{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Card) clock() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}

// SetNumber stores the digits of number. Group separators are dropped; any
// other non-digit rejects the value.
func (c *Card) SetNumber(number string) error {
	digits := make([]byte, 0, len(number))
	for i := 0; i < len(number); i++ {
		switch ch := number[i]; {
		case ch >= '0' && ch <= '9':
			digits = append(digits, ch)
		case ch == cardnumber.Separator:
		default:
			return fmt.Errorf("%w: %q", ErrInvalidNumber, ch)
		}
	}
	if len(digits) > MaxNumberDigits {
		return fmt.Errorf("%w: %d digits", ErrInvalidNumber, len(digits))
	}
	c.number = string(digits)
	return nil
}

// SetExpMonth stores the expiry month; zero clears it.
func (c *Card) SetExpMonth(month int) error {
	if month < 0 || month > 12 {
		return fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	c.expMonth = month
	return nil
}

// SetExpYear stores the expiry year; zero clears it. Two digit years are
// placed in the current century.
func (c *Card) SetExpYear(year int) error {
	switch {
	case year == 0:
	case year > 0 && year < 100:
		year = expiry.NormalizeYear(year, c.clock())
	case year >= 1000 && year <= 9999:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}
	c.expYear = year
	return nil
}

// ClearExpiry removes month and year.
func (c *Card) ClearExpiry() {
	c.expMonth, c.expYear = 0, 0
}

// SetCVC stores the security code. A blank value clears it.
func (c *Card) SetCVC(cvc string) error {
	cvc = strings.TrimSpace(cvc)
	if len(cvc) > MaxCVCDigits {
		return fmt.Errorf("%w: %d digits", ErrInvalidCVC, len(cvc))
	}
	for i := 0; i < len(cvc); i++ {
		if cvc[i] < '0' || cvc[i] > '9' {
			return fmt.Errorf("%w: %q", ErrInvalidCVC, cvc[i])
		}
	}
	c.cvc = cvc
	return nil
}

// Number returns the stored digits without separators.
func (c *Card) Number() string { return c.number }

// ExpMonth returns the month and whether one is set.
func (c *Card) ExpMonth() (int, bool) { return c.expMonth, c.expMonth != 0 }

// ExpYear returns the four digit year and whether one is set.
func (c *Card) ExpYear() (int, bool) { return c.expYear, c.expYear != 0 }

// CVC returns the security code and whether one is set.
func (c *Card) CVC() (string, bool) { return c.cvc, c.cvc != "" }

// Brand is derived from the number on every call.
func (c *Card) Brand() brand.Brand {
	return brand.Detect(c.number)
}

// Last returns the last n digits of the number, or all of them when shorter.
// A negative n yields "".
func (c *Card) Last(n int) string {
	n = max(n, 0)
	if n >= len(c.number) {
		return c.number
	}
	return c.number[len(c.number)-n:]
}

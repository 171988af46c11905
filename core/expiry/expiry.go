// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package expiry

import (
	"strconv"
	"time"

	"github.com/toeirei/paymentkit/core/model"
)

// MaxLength is the longest accepted field text ("MM/YY").
const MaxLength = 5

// Separator divides month and year.
const Separator = '/'

// Expiry is the parsed state of the expiry field. The zero value is the empty
// field. Partial states are legal and survive a String/Parse round trip.
type Expiry struct {
	month     string
	year      string
	separated bool
	malformed bool
}

// Parse reads up to MaxLength characters of MMYY, optionally separated by a
// slash. The month takes exactly two digits; the parser moves on to the year
// after two month digits or at a separator. A separator after a single month
// digit pads the month with a leading zero. Anything else (letters, a second
// separator, surplus digits) marks the result as not partially valid.
func Parse(raw string) Expiry {
	var e Expiry
	if len(raw) > MaxLength {
		e.malformed = true
	}
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= '0' && c <= '9':
			if !e.separated && len(e.month) < 2 {
				e.month += string(c)
				continue
			}
			e.separated = true
			if len(e.year) < 2 {
				e.year += string(c)
			} else {
				e.malformed = true
			}
		case c == Separator:
			if e.separated || e.month == "" {
				e.malformed = true
				continue
			}
			if len(e.month) == 1 {
				e.month = "0" + e.month
			}
			e.separated = true
		default:
			e.malformed = true
		}
	}
	return e
}

// IsEmpty reports whether nothing has been typed.
func (e Expiry) IsEmpty() bool {
	return e.month == "" && e.year == "" && !e.malformed
}

// IsPartiallyValid reports whether every character typed so far is
// consistent with some completion into a valid month. The year is only
// checked for shape here; an expired but well-formed date stays partially
// valid and is caught by IsValid.
func (e Expiry) IsPartiallyValid() bool {
	if e.malformed {
		return false
	}
	switch len(e.month) {
	case 0:
		return e.year == ""
	case 1:
		return e.month[0] == '0' || e.month[0] == '1'
	}
	_, ok := e.Month()
	return ok
}

// IsComplete reports whether both components have two digits.
func (e Expiry) IsComplete() bool {
	return !e.malformed && len(e.month) == 2 && len(e.year) == 2
}

// Month returns the month once two digits in 1..12 were typed.
func (e Expiry) Month() (int, bool) {
	if e.malformed || len(e.month) != 2 {
		return 0, false
	}
	m, err := strconv.Atoi(e.month)
	if err != nil || m < 1 || m > 12 {
		return 0, false
	}
	return m, true
}

// Year returns the four digit year once two year digits were typed. Two digit
// years are placed in the century of now.
func (e Expiry) Year(now time.Time) (int, bool) {
	if e.malformed || len(e.year) != 2 {
		return 0, false
	}
	yy, err := strconv.Atoi(e.year)
	if err != nil {
		return 0, false
	}
	return NormalizeYear(yy, now), true
}

// IsValidAt reports whether the expiry is complete and not before the month
// containing now.
func (e Expiry) IsValidAt(now time.Time) bool {
	if !e.IsComplete() {
		return false
	}
	m, ok := e.Month()
	if !ok {
		return false
	}
	y, _ := e.Year(now)
	return ValidAt(m, y, now)
}

// IsValid is IsValidAt with the wall clock.
func (e Expiry) IsValid() bool {
	return e.IsValidAt(time.Now())
}

// String renders the canonical form: "MM/YY" or the typed prefix of it.
func (e Expiry) String() string {
	if e.year == "" {
		return e.month
	}
	return e.month + string(Separator) + e.year
}

// StringWithTrail is String plus a trailing separator once the month is
// complete and no year digit has been typed yet.
func (e Expiry) StringWithTrail() string {
	s := e.String()
	if len(e.month) == 2 && e.year == "" {
		s += string(Separator)
	}
	return s
}

// Format picks the rendering for the kind of edit in progress: typing forward
// gets the trailing separator, deleting does not.
func (e Expiry) Format(kind model.EditKind) string {
	if kind == model.Insert {
		return e.StringWithTrail()
	}
	return e.String()
}

// NormalizeYear maps a two digit year into the century of now. Years that
// already have more than two digits are returned unchanged.
func NormalizeYear(year int, now time.Time) int {
	if year >= 100 {
		return year
	}
	return now.Year()/100*100 + year
}

// ValidAt reports whether month/year (four digit year) is a real month that
// has not ended before now.
func ValidAt(month, year int, now time.Time) bool {
	if month < 1 || month > 12 {
		return false
	}
	if year != now.Year() {
		return year > now.Year()
	}
	return month >= int(now.Month())
}

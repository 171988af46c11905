// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package expiry

import (
	"testing"
	"time"

	"github.com/toeirei/paymentkit/core/model"
)

var now = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

func TestPartialValidity(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"", true},
		{"0", true},
		{"1", true},
		{"12", true},
		{"12/", true},
		{"12/3", true},
		{"12/19", true},
		{"123", true},
		{"1/", true},
		{"1/2", true},
		{"2", false},
		{"13", false},
		{"00", false},
		{"0/", false},
		{"/", false},
		{"12//", false},
		{"12/3/", false},
		{"1a", false},
		{"12/345", false},
		{"12345", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Parse(tt.raw).IsPartiallyValid(); got != tt.want {
				t.Errorf("Parse(%q).IsPartiallyValid() = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValidity(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"12/19", false},
		{"09/26", false},
		{"10/26", true},
		{"11/26", true},
		{"01/27", true},
		{"1227", true},
		{"12/99", true},
		{"12/2", false},
		{"12", false},
		{"", false},
		{"13/30", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Parse(tt.raw).IsValidAt(now); got != tt.want {
				t.Errorf("Parse(%q).IsValidAt() = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestMonthYear(t *testing.T) {
	e := Parse("04/31")
	m, ok := e.Month()
	if !ok || m != 4 {
		t.Fatalf("Month() = %d, %v", m, ok)
	}
	y, ok := e.Year(now)
	if !ok || y != 2031 {
		t.Fatalf("Year() = %d, %v", y, ok)
	}
	if _, ok := Parse("04/3").Year(now); ok {
		t.Fatalf("incomplete year must not be reported")
	}
	if _, ok := Parse("1").Month(); ok {
		t.Fatalf("single month digit must not be reported")
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		raw       string
		canonical string
		trail     string
	}{
		{"", "", ""},
		{"1", "1", "1"},
		{"12", "12", "12/"},
		{"12/", "12", "12/"},
		{"1/", "01", "01/"},
		{"123", "12/3", "12/3"},
		{"12/3", "12/3", "12/3"},
		{"1230", "12/30", "12/30"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			e := Parse(tt.raw)
			if got := e.String(); got != tt.canonical {
				t.Errorf("String() = %q, want %q", got, tt.canonical)
			}
			if got := e.StringWithTrail(); got != tt.trail {
				t.Errorf("StringWithTrail() = %q, want %q", got, tt.trail)
			}
			if got := e.Format(model.Insert); got != tt.trail {
				t.Errorf("Format(Insert) = %q, want %q", got, tt.trail)
			}
			if got := e.Format(model.Delete); got != tt.canonical {
				t.Errorf("Format(Delete) = %q, want %q", got, tt.canonical)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, raw := range []string{"", "0", "1", "12", "12/", "1/", "12/3", "12/34", "0930"} {
		e := Parse(raw)
		for _, s := range []string{e.String(), e.StringWithTrail()} {
			back := Parse(s)
			if back.month != e.month || back.year != e.year {
				t.Errorf("round trip of %q through %q lost data: %+v vs %+v", raw, s, e, back)
			}
		}
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name      string
		insertion string
		existing  string
		sel       model.Selection
		ok        bool
	}{
		{"first digit", "1", "", model.Caret(0), true},
		{"invalid month", "3", "1", model.Caret(1), false},
		{"year digit", "3", "12/", model.Caret(3), true},
		{"too long", "1", "12/30", model.Caret(5), false},
		{"emptying", "", "1", model.Selection{Start: 0, End: 1}, true},
		{"letter", "a", "12/", model.Caret(3), false},
		{"paste digits", "1230", "", model.Caret(0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Filter(tt.insertion, tt.existing, tt.sel); ok != tt.ok {
				t.Fatalf("Filter(%q into %q) ok = %v, want %v", tt.insertion, tt.existing, ok, tt.ok)
			}
		})
	}
}

func TestValidAt(t *testing.T) {
	if ValidAt(0, 2030, now) || ValidAt(13, 2030, now) {
		t.Fatalf("out-of-range months must be invalid")
	}
	if !ValidAt(10, 2026, now) {
		t.Fatalf("current month must be valid")
	}
	if ValidAt(12, 2025, now) {
		t.Fatalf("past year must be invalid")
	}
	if NormalizeYear(31, now) != 2031 || NormalizeYear(2031, now) != 2031 {
		t.Fatalf("unexpected normalisation")
	}
}

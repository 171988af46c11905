// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package brand

import (
	"fmt"
	"strings"
)

// Brand is the card network inferred from the number prefix.
type Brand int

const (
	Unknown Brand = iota
	Visa
	MasterCard
	AmericanExpress
	Discover
	DinersClub
	JCB
)

// All lists every brand, Unknown first.
var All = []Brand{Unknown, Visa, MasterCard, AmericanExpress, Discover, DinersClub, JCB}

// MinUnknownLength is the shortest number accepted when no rule matches.
const MinUnknownLength = 13

// MaxUnknownLength bounds numbers of unknown brand. It equals the longest
// digit count that fits the 19 character number field in groups of four.
const MaxUnknownLength = 16

type spec struct {
	name    string
	slug    string
	lengths []int
	groups  []int
	cvc     int
}

var specs = map[Brand]spec{
	Unknown:         {"Unknown", "unknown", nil, []int{4, 4, 4, 4}, 3},
	Visa:            {"Visa", "visa", []int{13, 16}, []int{4, 4, 4, 4}, 3},
	MasterCard:      {"MasterCard", "mastercard", []int{16}, []int{4, 4, 4, 4}, 3},
	AmericanExpress: {"American Express", "amex", []int{15}, []int{4, 6, 5}, 4},
	Discover:        {"Discover", "discover", []int{16}, []int{4, 4, 4, 4}, 3},
	DinersClub:      {"Diners Club", "diners", []int{14}, []int{4, 4, 4, 2}, 3},
	JCB:             {"JCB", "jcb", []int{16}, []int{4, 4, 4, 4}, 3},
}

func (b Brand) spec() spec {
	if s, ok := specs[b]; ok {
		return s
	}
	return specs[Unknown]
}

// String returns the display name, e.g. "American Express".
func (b Brand) String() string {
	return b.spec().name
}

// Slug returns a stable lowercase identifier suitable for configs and logs.
func (b Brand) Slug() string {
	return b.spec().slug
}

// Lengths returns the accepted total digit counts. Unknown returns nil; use
// AcceptsLength for a uniform check.
func (b Brand) Lengths() []int {
	return append([]int(nil), b.spec().lengths...)
}

// MaxLength is the longest accepted digit count.
func (b Brand) MaxLength() int {
	l := b.spec().lengths
	if len(l) == 0 {
		return MaxUnknownLength
	}
	return l[len(l)-1]
}

// AcceptsLength reports whether a number of n digits has a plausible length
// for the brand.
func (b Brand) AcceptsLength(n int) bool {
	l := b.spec().lengths
	if len(l) == 0 {
		return n >= MinUnknownLength && n <= MaxUnknownLength
	}
	for _, want := range l {
		if n == want {
			return true
		}
	}
	return false
}

// Groups returns the digit group sizes used for display.
func (b Brand) Groups() []int {
	return append([]int(nil), b.spec().groups...)
}

// CVCLength is 4 for American Express and 3 otherwise.
func (b Brand) CVCLength() int {
	return b.spec().cvc
}

// SummaryLength is the number of trailing digits kept visible when the
// number field collapses to its summary.
func (b Brand) SummaryLength() int {
	if b == AmericanExpress {
		return 5
	}
	return 4
}

// ParseBrand resolves a slug or display name, case-insensitively.
func ParseBrand(s string) (Brand, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, b := range All {
		sp := b.spec()
		if s == sp.slug || s == strings.ToLower(sp.name) {
			return b, nil
		}
	}
	return Unknown, fmt.Errorf("unknown brand %q", s)
}

// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package brand

// rule matches numbers whose first width digits, read as an integer, fall in
// [lo, hi].
type rule struct {
	brand Brand
	width int
	lo    int
	hi    int
}

// rules is evaluated in order and the first match wins, so the more specific
// prefixes come first.
var rules = []rule{
	{AmericanExpress, 2, 34, 34},
	{AmericanExpress, 2, 37, 37},
	{DinersClub, 3, 300, 305},
	{DinersClub, 2, 36, 36},
	{DinersClub, 2, 38, 38},
	{Discover, 4, 6011, 6011},
	{Discover, 2, 65, 65},
	{JCB, 2, 35, 35},
	{MasterCard, 2, 51, 55},
	{Visa, 1, 4, 4},
}

// Detect returns the brand for a digit prefix. Non-digit characters (for
// example group separators) are skipped. A prefix too short to match any rule
// yields Unknown.
func Detect(number string) Brand {
	for _, r := range rules {
		if p, ok := prefix(number, r.width); ok && p >= r.lo && p <= r.hi {
			return r.brand
		}
	}
	return Unknown
}

func prefix(s string, width int) (int, bool) {
	n, taken := 0, 0
	for i := 0; i < len(s) && taken < width; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			continue
		}
		n = n*10 + int(c-'0')
		taken++
	}
	return n, taken == width
}

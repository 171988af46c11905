// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package cardnumber

import (
	"testing"

	"github.com/toeirei/paymentkit/core/model"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind model.EditKind
		want string
	}{
		{"empty", "", model.Insert, ""},
		{"single digit", "4", model.Insert, "4"},
		{"group boundary on insert", "4242", model.Insert, "4242 "},
		{"group boundary on delete", "4242 ", model.Delete, "4242"},
		{"regroup unspaced", "42424242", model.Delete, "4242 4242"},
		{"regroup misplaced spaces", "42 424 242", model.Delete, "4242 4242"},
		{"full visa no trailing space", "4242424242424242", model.Insert, "4242 4242 4242 4242"},
		{"visa too long is cut", "42424242424242429", model.Insert, "4242 4242 4242 4242"},
		{"amex grouping", "378282246310005", model.Insert, "3782 822463 10005"},
		{"amex second boundary", "3782822463", model.Insert, "3782 822463 "},
		{"amex partial", "37828", model.Delete, "3782 8"},
		{"diners", "36227206271667", model.Insert, "3622 7206 2716 67"},
		{"strips junk", "4a2-4.2", model.Delete, "4242"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.raw, tt.kind); got != tt.want {
				t.Fatalf("Format(%q, %v) = %q, want %q", tt.raw, tt.kind, got, tt.want)
			}
		})
	}
}

func TestFormatIdempotent(t *testing.T) {
	inputs := []string{
		"", "4", "42", "4242", "42424", "4242424242424242", "37", "378282", "3782822463",
		"378282246310005", "6011111111111117", "36227206271667", "99999999", "5555 5555 5555 4444",
	}
	for _, in := range inputs {
		for _, kind := range []model.EditKind{model.Insert, model.Delete} {
			once := Format(in, kind)
			if twice := Format(once, kind); twice != once {
				t.Errorf("Format not idempotent for %q/%v: %q then %q", in, kind, once, twice)
			}
		}
	}
}

func TestFormatNeverExceedsField(t *testing.T) {
	digits := "4242424242424242424242"
	for i := 0; i <= len(digits); i++ {
		for _, kind := range []model.EditKind{model.Insert, model.Delete} {
			if got := Format(digits[:i], kind); len(got) > MaxFormattedLength {
				t.Fatalf("Format(%q) = %q exceeds %d characters", digits[:i], got, MaxFormattedLength)
			}
		}
	}
}

func TestMask(t *testing.T) {
	if got := Mask("4242424242424242", 4); got != "•••• •••• •••• 4242" {
		t.Fatalf("Mask visa = %q", got)
	}
	if got := Mask("378282246310005", 5); got != "•••• •••••• 10005" {
		t.Fatalf("Mask amex = %q", got)
	}
}

// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package engine

import (
	"bytes"
	"slices"
	"strings"
	"testing"
	"time"

	clog "github.com/charmbracelet/log"

	"github.com/toeirei/paymentkit/core/brand"
	"github.com/toeirei/paymentkit/core/model"
)

func fixedNow() time.Time {
	return time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
}

func newEngine(t *testing.T) (*Engine, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l := clog.New(&buf)
	l.SetLevel(clog.DebugLevel)
	return New(WithClock(fixedNow), WithLogger(l)), &buf
}

// typeText feeds s one character at a time at the end of the field and
// returns the directives of the last keystroke.
func typeText(t *testing.T, e *Engine, f model.Field, s string) []Directive {
	t.Helper()
	var last []Directive
	for i := 0; i < len(s); i++ {
		cur := e.Text(f)
		ins, ok := e.TextWillChange(f, s[i:i+1], model.Caret(len(cur)))
		if !ok {
			t.Fatalf("%s: %q rejected after %q", f, s[i:i+1], cur)
		}
		last = e.TextDidChange(f, cur+ins)
	}
	return last
}

func expect(t *testing.T, got []Directive, want ...Directive) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("directives = %v, want %v", got, want)
	}
}

func focus(f model.Field) Directive { return Directive{Kind: RequestFocus, Field: f} }

var (
	collapse = Directive{Kind: RequestCollapse}
	expand   = Directive{Kind: RequestExpand}
)

type recorder struct{ got []bool }

func (r *recorder) OnValidationChange(valid bool) { r.got = append(r.got, valid) }

func TestFirstDigitSetsBrand(t *testing.T) {
	e, _ := newEngine(t)
	got := typeText(t, e, model.CardNumber, "4")
	expect(t, got,
		Directive{Kind: BrandChanged, Brand: brand.Visa},
		Directive{Kind: ArtworkChanged, Artwork: Artwork{Brand: brand.Visa}},
	)
}

func TestGroupBoundaryInsertsSeparator(t *testing.T) {
	e, _ := newEngine(t)
	got := typeText(t, e, model.CardNumber, "4242")
	expect(t, got, replace(model.CardNumber, "4242 "))
	if e.Text(model.CardNumber) != "4242 " {
		t.Fatalf("text = %q", e.Text(model.CardNumber))
	}
	// Deleting the separator does not put it back.
	expect(t, e.TextDidChange(model.CardNumber, "4242"))
}

func TestCompleteVisaCollapsesAndFocusesExpiry(t *testing.T) {
	e, _ := newEngine(t)
	typeText(t, e, model.CardNumber, "424242424242424")
	got := typeText(t, e, model.CardNumber, "2")
	expect(t, got, collapse, focus(model.Expiry))
	if !e.Collapsed() || e.Focused() != model.Expiry {
		t.Fatalf("collapsed=%v focused=%v", e.Collapsed(), e.Focused())
	}
	if e.Summary() != "4242" {
		t.Fatalf("summary = %q", e.Summary())
	}
}

// 4222222222222 is itself a valid 13 digit Visa, so the number passes the
// checksum three digits before it is finished.
func TestVisaWithValidShortPrefixWaitsForLastDigit(t *testing.T) {
	e, _ := newEngine(t)
	const number = "4222222222222006"
	for i := 0; i < len(number)-1; i++ {
		got := typeText(t, e, model.CardNumber, number[i:i+1])
		for _, d := range got {
			if d.Kind == RequestCollapse || d.Kind == RequestFocus {
				t.Fatalf("digit %d: unexpected %v", i+1, d)
			}
		}
		if e.Collapsed() || e.Focused() != model.CardNumber {
			t.Fatalf("digit %d: collapsed=%v focused=%v", i+1, e.Collapsed(), e.Focused())
		}
	}
	got := typeText(t, e, model.CardNumber, number[len(number)-1:])
	expect(t, got, collapse, focus(model.Expiry))
	if e.Text(model.CardNumber) != "4222 2222 2222 2006" {
		t.Fatalf("text = %q", e.Text(model.CardNumber))
	}
}

func TestAttachCollapsesShortVisa(t *testing.T) {
	e, _ := newEngine(t)
	e.Attach("4222222222222", "", "")
	if !e.Collapsed() || e.Focused() != model.Expiry {
		t.Fatalf("collapsed=%v focused=%v", e.Collapsed(), e.Focused())
	}
}

func TestExpiryFlow(t *testing.T) {
	e, _ := newEngine(t)
	typeText(t, e, model.CardNumber, "4242424242424242")

	expect(t, typeText(t, e, model.Expiry, "12"), replace(model.Expiry, "12/"))
	expect(t, typeText(t, e, model.Expiry, "30"), focus(model.CVC))

	if m, _ := e.Card().ExpMonth(); m != 12 {
		t.Fatalf("month = %d", m)
	}
	if y, _ := e.Card().ExpYear(); y != 2030 {
		t.Fatalf("year = %d", y)
	}
}

func TestExpiryRejectsImpossibleMonth(t *testing.T) {
	e, _ := newEngine(t)
	typeText(t, e, model.Expiry, "1")
	if _, ok := e.TextWillChange(model.Expiry, "3", model.Caret(1)); ok {
		t.Fatal("month 13 accepted")
	}
	if _, ok := e.TextWillChange(model.Expiry, "x", model.Caret(1)); ok {
		t.Fatal("letter accepted")
	}
}

func TestNumberFilter(t *testing.T) {
	e, _ := newEngine(t)
	if _, ok := e.TextWillChange(model.CardNumber, "42a", model.Caret(0)); ok {
		t.Fatal("letters accepted")
	}
	got, ok := e.TextWillChange(model.CardNumber, "4242 4242 4242 4242 1234", model.Caret(0))
	if !ok || len(got) != 19 {
		t.Fatalf("paste = %q, %v", got, ok)
	}
}

func TestCVCLengthFollowsBrand(t *testing.T) {
	e, _ := newEngine(t)
	typeText(t, e, model.CardNumber, "4242424242424242")
	if got, _ := e.TextWillChange(model.CVC, "1234", model.Caret(0)); got != "123" {
		t.Fatalf("visa cvc = %q", got)
	}

	a, _ := newEngine(t)
	typeText(t, a, model.CardNumber, "378282246310005")
	if got, _ := a.TextWillChange(model.CVC, "1234", model.Caret(0)); got != "1234" {
		t.Fatalf("amex cvc = %q", got)
	}
	if a.Summary() != "10005" {
		t.Fatalf("amex summary = %q", a.Summary())
	}
}

func TestValidityIsEdgeTriggered(t *testing.T) {
	e, _ := newEngine(t)
	r := &recorder{}
	e.RegisterListener(r)
	e.RegisterListener(r)

	typeText(t, e, model.CardNumber, "4242424242424242")
	typeText(t, e, model.Expiry, "1230")
	typeText(t, e, model.CVC, "1")
	typeText(t, e, model.CVC, "2")
	if len(r.got) != 0 {
		t.Fatalf("fired early: %v", r.got)
	}
	expect(t, typeText(t, e, model.CVC, "3"), Directive{Kind: ValidityChanged, Valid: true})

	// Break the checksum, then restore it.
	e.TextDidChange(model.CardNumber, "4242 4242 4242 4241")
	e.TextDidChange(model.CardNumber, "4242 4242 4242 4242")
	if want := []bool{true, false, true}; !slices.Equal(r.got, want) {
		t.Fatalf("notifications = %v, want %v", r.got, want)
	}

	e.UnregisterListener(r)
	e.TextDidChange(model.CVC, "12")
	if len(r.got) != 3 {
		t.Fatalf("unregistered listener called: %v", r.got)
	}
	if e.Valid() {
		t.Fatal("card still valid")
	}
}

func TestEmptyCVCReturnsToExpiry(t *testing.T) {
	e, _ := newEngine(t)
	e.FocusGained(model.CVC)
	typeText(t, e, model.CVC, "1")
	expect(t, e.TextDidChange(model.CVC, ""), focus(model.Expiry))

	e.FocusGained(model.CVC)
	expect(t, e.BackspaceOnEmpty(model.CVC), focus(model.Expiry))
}

func TestBackspaceOnEmptyExpiryExpandsNumber(t *testing.T) {
	e, _ := newEngine(t)
	typeText(t, e, model.CardNumber, "4242424242424242")
	expect(t, e.BackspaceOnEmpty(model.Expiry), expand, focus(model.CardNumber))
	expect(t, e.BackspaceOnEmpty(model.CardNumber))
}

func TestBackspaceIgnoredWhenFieldHasText(t *testing.T) {
	e, _ := newEngine(t)
	typeText(t, e, model.Expiry, "1")
	expect(t, e.BackspaceOnEmpty(model.Expiry))
}

func TestSummaryTappedToggles(t *testing.T) {
	e, _ := newEngine(t)
	expect(t, e.SummaryTapped())
	typeText(t, e, model.CardNumber, "4242424242424242")
	expect(t, e.SummaryTapped(), expand, focus(model.CardNumber))
	expect(t, e.SummaryTapped(), collapse, focus(model.Expiry))
}

func TestArtworkFollowsCVCFocus(t *testing.T) {
	e, _ := newEngine(t)
	typeText(t, e, model.CardNumber, "37")
	expect(t, e.FocusGained(model.CVC), Directive{Kind: ArtworkChanged, Artwork: Artwork{Brand: brand.AmericanExpress, CVC: true}})
	if e.Artwork().String() != "cvc_amex" {
		t.Fatalf("artwork = %s", e.Artwork())
	}
	expect(t, e.FocusLost(model.CVC), Directive{Kind: ArtworkChanged, Artwork: Artwork{Brand: brand.AmericanExpress}})
	expect(t, e.FocusLost(model.CVC))
}

func TestEchoedTextIsIgnored(t *testing.T) {
	e, _ := newEngine(t)
	typeText(t, e, model.CardNumber, "4242")
	expect(t, e.TextDidChange(model.CardNumber, e.Text(model.CardNumber)))
}

func TestNumberHasError(t *testing.T) {
	e, _ := newEngine(t)
	typeText(t, e, model.CardNumber, "4242424242424241")
	if !e.NumberHasError() {
		t.Fatal("bad checksum not flagged")
	}
	if e.Collapsed() {
		t.Fatal("invalid number collapsed")
	}
	e.TextDidChange(model.CardNumber, "4242 4242 4242 424")
	if e.NumberHasError() {
		t.Fatal("incomplete number flagged")
	}
}

func TestAttach(t *testing.T) {
	e, _ := newEngine(t)
	r := &recorder{}
	e.RegisterListener(r)
	got := e.Attach("4242424242424242", "12/30", "123")
	expect(t, got,
		replace(model.CardNumber, "4242 4242 4242 4242"),
		Directive{Kind: BrandChanged, Brand: brand.Visa},
		Directive{Kind: ArtworkChanged, Artwork: Artwork{Brand: brand.Visa}},
		collapse,
		focus(model.CVC),
		Directive{Kind: ValidityChanged, Valid: true},
	)
	if !slices.Equal(r.got, []bool{true}) {
		t.Fatalf("notifications = %v", r.got)
	}
}

func TestAttachCleansJunk(t *testing.T) {
	e, _ := newEngine(t)
	got := e.Attach("", "13/99", "12a")
	expect(t, got,
		replace(model.Expiry, ""),
		replace(model.CVC, ""),
		focus(model.CardNumber),
	)
}

func TestLogsNeverContainNumber(t *testing.T) {
	e, buf := newEngine(t)
	typeText(t, e, model.CardNumber, "4242424242424242")
	if buf.Len() == 0 {
		t.Fatal("no debug output")
	}
	if strings.Contains(buf.String(), "4242424242424242") || strings.Contains(buf.String(), "4242 4242") {
		t.Fatalf("card number leaked into logs:\n%s", buf.String())
	}
}

func TestSessionIDsDiffer(t *testing.T) {
	a, _ := newEngine(t)
	b, _ := newEngine(t)
	if a.ID() == b.ID() {
		t.Fatal("duplicate session id")
	}
}

func TestCollapseOffset(t *testing.T) {
	e, _ := newEngine(t)
	e.SetCollapseOffset(-42.5)
	if e.CollapseOffset() != -42.5 {
		t.Fatalf("offset = %v", e.CollapseOffset())
	}
}

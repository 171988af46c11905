// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package transcript

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/toeirei/paymentkit/core/engine"
	"github.com/toeirei/paymentkit/core/model"
)

func mustRun(t *testing.T, tr *Transcript) *Result {
	t.Helper()
	res, err := Run(tr)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return res
}

func TestFixtures(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil || len(files) == 0 {
		t.Fatalf("no fixtures: %v", err)
	}
	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			tr, err := Load(file)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			res := mustRun(t, tr)
			if !res.OK() {
				t.Fatalf("expectations failed: %v", res.Failures)
			}
		})
	}
}

func TestVisaDirectives(t *testing.T) {
	tr, err := Load(filepath.Join("testdata", "visa.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	res := mustRun(t, tr)
	if len(res.Steps) != 3 {
		t.Fatalf("steps = %d", len(res.Steps))
	}

	var kinds []engine.DirectiveKind
	for _, d := range res.Steps[0].Directives {
		kinds = append(kinds, d.Kind)
	}
	// The last keystroke of the number collapses it and jumps to the expiry.
	n := len(kinds)
	if n < 2 || kinds[n-2] != engine.RequestCollapse || kinds[n-1] != engine.RequestFocus {
		t.Fatalf("number step ended with %v", res.Steps[0].Directives)
	}

	last := res.Steps[2].Directives
	if len(last) == 0 || last[len(last)-1] != (engine.Directive{Kind: engine.ValidityChanged, Valid: true}) {
		t.Fatalf("cvc step = %v", last)
	}
}

func TestAttachSkipsToCVC(t *testing.T) {
	tr := &Transcript{
		Now:    "2026-10-19",
		Attach: &Attach{Number: "4242 4242 4242 4242", Expiry: "12/30"},
	}
	res := mustRun(t, tr)
	if res.Host.Focused() != model.CVC || !res.Host.Collapsed() {
		t.Fatalf("focus=%v collapsed=%v", res.Host.Focused(), res.Host.Collapsed())
	}
}

func TestTapTogglesSummary(t *testing.T) {
	tr := &Transcript{
		Now: "2026-10-19",
		Steps: []Step{
			{Type: &Input{Field: "number", Text: "5555555555554444"}},
			{Tap: "summary"},
		},
	}
	res := mustRun(t, tr)
	if res.Host.Collapsed() || res.Host.Focused() != model.CardNumber {
		t.Fatalf("after tap: collapsed=%v focus=%v", res.Host.Collapsed(), res.Host.Focused())
	}
	res.Host.TapSummary()
	if !res.Host.Collapsed() || res.Host.Focused() != model.Expiry {
		t.Fatalf("after second tap: collapsed=%v focus=%v", res.Host.Collapsed(), res.Host.Focused())
	}
}

func TestExpectationFailuresAreReported(t *testing.T) {
	valid := true
	want := "4242"
	tr := &Transcript{
		Steps:  []Step{{Type: &Input{Text: "4242"}}},
		Expect: &Expect{Valid: &valid, Number: &want, Focus: "cvc"},
	}
	res := mustRun(t, tr)
	if res.OK() {
		t.Fatal("expected failures")
	}
	got := strings.Join(res.Failures, "\n")
	for _, key := range []string{"valid", "focus", "number"} {
		if !strings.Contains(got, key) {
			t.Fatalf("failure for %s missing:\n%s", key, got)
		}
	}
}

func TestParseRejectsBadSteps(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty step", "steps:\n  - {}\n", ErrUnknownStep},
		{"two actions", "steps:\n  - {focus: cvc, tap: summary}\n", ErrUnknownStep},
		{"unknown key", "steps:\n  - {jump: cvc}\n", nil},
		{"unknown field", "steps:\n  - {focus: pin}\n", nil},
		{"bad date", "now: tomorrow\nsteps: []\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSaveLoadCompressed(t *testing.T) {
	src, err := Load(filepath.Join("testdata", "visa.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	path := filepath.Join(t.TempDir(), "visa.yaml.zst")
	if err := Save(path, src); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load compressed: %v", err)
	}
	if got.Name != src.Name || len(got.Steps) != len(src.Steps) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if res := mustRun(t, got); !res.OK() {
		t.Fatalf("compressed replay failed: %v", res.Failures)
	}
}

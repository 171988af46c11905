// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package transcript

import (
	"fmt"
	"strconv"

	"github.com/toeirei/paymentkit/core/engine"
	"github.com/toeirei/paymentkit/core/model"
)

// StepResult is what one step made the engine emit.
type StepResult struct {
	Index      int
	Step       string
	Directives []engine.Directive
}

// Result of a replay. Failures lists every expectation that did not hold.
type Result struct {
	Name     string
	Attached []engine.Directive
	Steps    []StepResult
	Failures []string
	Host     *Host
}

// OK reports whether every expectation held.
func (r *Result) OK() bool { return len(r.Failures) == 0 }

// Run replays t against a fresh engine. Options are passed to engine.New
// after the transcript's own clock, so a caller can still override it.
func Run(t *Transcript, opts ...engine.Option) (*Result, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	now, err := t.clock()
	if err != nil {
		return nil, err
	}
	e := engine.New(append([]engine.Option{engine.WithClock(now)}, opts...)...)
	h := NewHost(e)
	res := &Result{Name: t.Name, Host: h}

	if t.Attach != nil {
		h.Attach(*t.Attach)
	} else {
		h.Attach(Attach{})
	}
	res.Attached = h.Drain()

	for i, s := range t.Steps {
		if err := step(h, s); err != nil {
			return res, fmt.Errorf("step %d: %w", i+1, err)
		}
		res.Steps = append(res.Steps, StepResult{Index: i + 1, Step: s.String(), Directives: h.Drain()})
	}

	if t.Expect != nil {
		res.Failures = check(h, t.Expect)
	}
	return res, nil
}

func focusIfSet(h *Host, name string) error {
	if name == "" {
		return nil
	}
	f, err := model.ParseField(name)
	if err != nil {
		return err
	}
	h.Focus(f)
	return nil
}

func step(h *Host, s Step) error {
	switch {
	case s.Focus != "":
		return focusIfSet(h, s.Focus)
	case s.Type != nil:
		if err := focusIfSet(h, s.Type.Field); err != nil {
			return err
		}
		h.Type(s.Type.Text)
	case s.Paste != nil:
		if err := focusIfSet(h, s.Paste.Field); err != nil {
			return err
		}
		h.Paste(s.Paste.Text)
	case s.Backspace != nil:
		if err := focusIfSet(h, s.Backspace.Field); err != nil {
			return err
		}
		for range max(s.Backspace.Count, 1) {
			h.Backspace()
		}
	case s.Tap != "":
		h.TapSummary()
	default:
		return ErrUnknownStep
	}
	return nil
}

func check(h *Host, x *Expect) []string {
	var fails []string
	mismatch := func(what, got, want string) {
		fails = append(fails, fmt.Sprintf("%s: got %s, want %s", what, got, want))
	}
	if x.Valid != nil && h.Valid() != *x.Valid {
		mismatch("valid", strconv.FormatBool(h.Valid()), strconv.FormatBool(*x.Valid))
	}
	if x.Collapsed != nil && h.Collapsed() != *x.Collapsed {
		mismatch("collapsed", strconv.FormatBool(h.Collapsed()), strconv.FormatBool(*x.Collapsed))
	}
	if x.Focus != "" {
		if want, err := model.ParseField(x.Focus); err == nil && h.Focused() != want {
			mismatch("focus", h.Focused().String(), want.String())
		}
	}
	if x.Brand != "" && h.Brand().Slug() != x.Brand && h.Brand().String() != x.Brand {
		mismatch("brand", h.Brand().Slug(), x.Brand)
	}
	texts := []struct {
		f    model.Field
		want *string
	}{
		{model.CardNumber, x.Number},
		{model.Expiry, x.Expiry},
		{model.CVC, x.CVC},
	}
	for _, tt := range texts {
		if tt.want != nil && h.Text(tt.f) != *tt.want {
			mismatch(tt.f.String(), strconv.Quote(h.Text(tt.f)), strconv.Quote(*tt.want))
		}
	}
	return fails
}

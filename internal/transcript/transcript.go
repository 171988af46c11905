// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package transcript describes scripted card-entry sessions in YAML and
// replays them against an engine through a headless host. Files ending in
// .zst are zstd compressed.
package transcript

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"github.com/toeirei/paymentkit/core/model"
)

// ErrUnknownStep is returned for a step that names no action or more than
// one.
var ErrUnknownStep = errors.New("step must have exactly one action")

// Transcript is one scripted session.
type Transcript struct {
	Name string `yaml:"name"`
	// Now fixes the date used for expiry checks (YYYY-MM-DD). Empty means the
	// wall clock.
	Now    string  `yaml:"now,omitempty"`
	Attach *Attach `yaml:"attach,omitempty"`
	Steps  []Step  `yaml:"steps"`
	Expect *Expect `yaml:"expect,omitempty"`
}

// Attach holds the values present before the first step.
type Attach struct {
	Number string `yaml:"number"`
	Expiry string `yaml:"expiry"`
	CVC    string `yaml:"cvc"`
}

// Step is one user action. Exactly one field is set.
type Step struct {
	Focus     string     `yaml:"focus,omitempty"`
	Type      *Input     `yaml:"type,omitempty"`
	Paste     *Input     `yaml:"paste,omitempty"`
	Backspace *Backspace `yaml:"backspace,omitempty"`
	Tap       string     `yaml:"tap,omitempty"`
}

// Input is text entered into a field. Field is optional; when empty the
// keystrokes go to whichever field holds focus.
type Input struct {
	Field string `yaml:"field,omitempty"`
	Text  string `yaml:"text"`
}

// Backspace presses the delete key Count times (at least once).
type Backspace struct {
	Field string `yaml:"field,omitempty"`
	Count int    `yaml:"count,omitempty"`
}

// Expect is checked after the last step. Unset fields are not checked.
type Expect struct {
	Valid     *bool   `yaml:"valid,omitempty"`
	Focus     string  `yaml:"focus,omitempty"`
	Collapsed *bool   `yaml:"collapsed,omitempty"`
	Brand     string  `yaml:"brand,omitempty"`
	Number    *string `yaml:"number,omitempty"`
	Expiry    *string `yaml:"expiry,omitempty"`
	CVC       *string `yaml:"cvc,omitempty"`
}

func (s Step) actions() int {
	n := 0
	for _, set := range []bool{s.Focus != "", s.Type != nil, s.Paste != nil, s.Backspace != nil, s.Tap != ""} {
		if set {
			n++
		}
	}
	return n
}

func (s Step) String() string {
	switch {
	case s.Focus != "":
		return "focus " + s.Focus
	case s.Type != nil:
		return fmt.Sprintf("type %s %q", orFocused(s.Type.Field), s.Type.Text)
	case s.Paste != nil:
		return fmt.Sprintf("paste %s %q", orFocused(s.Paste.Field), s.Paste.Text)
	case s.Backspace != nil:
		return fmt.Sprintf("backspace %s x%d", orFocused(s.Backspace.Field), max(s.Backspace.Count, 1))
	case s.Tap != "":
		return "tap " + s.Tap
	}
	return "empty step"
}

func orFocused(field string) string {
	if field == "" {
		return "(focused)"
	}
	return field
}

// Validate checks the structure of every step and the field names it uses.
func (t *Transcript) Validate() error {
	if _, err := t.clock(); err != nil {
		return err
	}
	for i, s := range t.Steps {
		if s.actions() != 1 {
			return fmt.Errorf("step %d: %w", i+1, ErrUnknownStep)
		}
		var names []string
		switch {
		case s.Focus != "":
			names = append(names, s.Focus)
		case s.Type != nil:
			names = append(names, s.Type.Field)
		case s.Paste != nil:
			names = append(names, s.Paste.Field)
		case s.Backspace != nil:
			names = append(names, s.Backspace.Field)
		case s.Tap != "" && s.Tap != "summary":
			return fmt.Errorf("step %d: cannot tap %q", i+1, s.Tap)
		}
		for _, n := range names {
			if n == "" {
				continue
			}
			if _, err := model.ParseField(n); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
		}
	}
	if t.Expect != nil && t.Expect.Focus != "" {
		if _, err := model.ParseField(t.Expect.Focus); err != nil {
			return fmt.Errorf("expect: %w", err)
		}
	}
	return nil
}

func (t *Transcript) clock() (func() time.Time, error) {
	if t.Now == "" {
		return time.Now, nil
	}
	now, err := time.Parse(time.DateOnly, t.Now)
	if err != nil {
		return nil, fmt.Errorf("now: %w", err)
	}
	return func() time.Time { return now }, nil
}

// Parse decodes a YAML transcript. Unknown keys are rejected.
func Parse(r io.Reader) (*Transcript, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var t Transcript
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("decode transcript: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Load reads a transcript file, decompressing it when the name ends in .zst.
func Load(path string) (*Transcript, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	if !strings.HasSuffix(path, ".zst") {
		return Parse(f)
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("open zstd stream: %w", err)
	}
	defer dec.Close()
	return Parse(dec)
}

// Save writes t to path, compressing it when the name ends in .zst.
func Save(path string, t *Transcript) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	var w io.Writer = file
	if strings.HasSuffix(path, ".zst") {
		zw, err := zstd.NewWriter(file)
		if err != nil {
			return fmt.Errorf("open zstd stream: %w", err)
		}
		defer func() {
			if cerr := zw.Close(); err == nil {
				err = cerr
			}
		}()
		w = zw
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encode transcript: %w", err)
	}
	return enc.Close()
}

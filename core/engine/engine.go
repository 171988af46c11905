// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package engine

import (
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/toeirei/paymentkit/core/brand"
	"github.com/toeirei/paymentkit/core/card"
	"github.com/toeirei/paymentkit/core/cardnumber"
	"github.com/toeirei/paymentkit/core/expiry"
	"github.com/toeirei/paymentkit/core/fieldstate"
	"github.com/toeirei/paymentkit/core/model"
	"github.com/toeirei/paymentkit/internal/logging"
)

// ValidationListener is told when whole-card validity flips. Listeners are
// compared by identity on unregister, so use pointer types.
type ValidationListener interface {
	OnValidationChange(valid bool)
}

// Engine owns the field texts, the card they describe and the focus machine.
type Engine struct {
	id      uuid.UUID
	log     *clog.Logger
	now     func() time.Time
	card    *card.Card
	machine *fieldstate.Machine

	text    [3]string
	brand   brand.Brand
	artwork Artwork

	lastValid      bool
	listeners      []ValidationListener
	collapseOffset float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes engine logs to l instead of the package logger.
func WithLogger(l *clog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// WithClock fixes the time used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New returns an engine for an empty card with the number field focused.
func New(opts ...Option) *Engine {
	e := &Engine{
		id:      uuid.New(),
		log:     logging.L,
		now:     time.Now,
		machine: fieldstate.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.card = card.New(card.WithClock(e.now))
	return e
}

// ID identifies this engine instance in logs.
func (e *Engine) ID() uuid.UUID { return e.id }

// Attach loads values the host already shows, for example after a restore,
// and derives the initial focus and collapse state from them. Text that could
// not have been typed is cleaned up through ReplaceText.
func (e *Engine) Attach(number, exp, cvc string) []Directive {
	var ds []Directive

	num := cardnumber.Format(cardnumber.Digits(number), model.Delete)
	ds = e.load(ds, model.CardNumber, number, num)
	if err := e.card.SetNumber(num); err != nil {
		e.log.Warn("attach: number rejected", "session", e.id, "err", err)
	}

	parsed := expiry.Parse(exp)
	expText := ""
	if parsed.IsPartiallyValid() {
		expText = parsed.String()
	}
	ds = e.load(ds, model.Expiry, exp, expText)
	e.updateExpiry(expiry.Parse(expText))

	cvcText := strings.TrimSpace(cvc)
	if out, ok := cardnumber.FilterCVC(cvcText, "", model.Caret(0), e.card.Brand().CVCLength()); !ok || out != cvcText {
		cvcText = ""
	}
	ds = e.load(ds, model.CVC, cvc, cvcText)
	e.updateCVC(cvcText)

	ds = append(ds, e.refreshBrand()...)
	ds = append(ds, fromMachine(e.machine.Attach(e.validity()))...)
	ds = append(ds, e.notify()...)

	e.log.Debug("attached", "session", e.id, "brand", e.brand, "state", e.machine.State())
	return ds
}

func (e *Engine) load(ds []Directive, f model.Field, given, clean string) []Directive {
	e.text[f] = clean
	if given != clean {
		ds = append(ds, replace(f, clean))
	}
	return ds
}

// TextWillChange gates an edit before the host applies it. It returns the
// possibly shortened insertion, or false when the field must stay unchanged.
func (e *Engine) TextWillChange(f model.Field, insertion string, sel model.Selection) (string, bool) {
	f.MustValid()
	existing := e.text[f]
	var (
		out string
		ok  bool
	)
	switch f {
	case model.CardNumber:
		out, ok = cardnumber.Filter(insertion, existing, sel)
	case model.Expiry:
		out, ok = expiry.Filter(insertion, existing, sel)
	case model.CVC:
		out, ok = cardnumber.FilterCVC(insertion, existing, sel, e.card.Brand().CVCLength())
	}
	if !ok {
		e.log.Debug("edit rejected", "session", e.id, "field", f, "len", len(insertion))
	}
	return out, ok
}

// TextDidChange runs the pipeline for text the host now shows in f. Reporting
// the text the engine already holds is a no-op, so applying a ReplaceText and
// echoing it back cannot loop.
func (e *Engine) TextDidChange(f model.Field, text string) []Directive {
	f.MustValid()
	prev := e.text[f]
	if text == prev {
		return nil
	}
	kind := model.KindOf(prev, text)

	var ds []Directive
	switch f {
	case model.CardNumber:
		formatted := cardnumber.Format(text, kind)
		ds = e.store(ds, f, text, formatted)
		if err := e.card.SetNumber(formatted); err != nil {
			e.log.Warn("number rejected", "session", e.id, "err", err)
		}
		ds = append(ds, e.refreshBrand()...)

	case model.Expiry:
		parsed := expiry.Parse(text)
		formatted := text
		if parsed.IsPartiallyValid() {
			formatted = parsed.Format(kind)
		}
		ds = e.store(ds, f, text, formatted)
		e.updateExpiry(parsed)

	case model.CVC:
		ds = e.store(ds, f, text, text)
		e.updateCVC(text)
	}

	e.log.Debug("text changed", "session", e.id, "field", f, "kind", kind, "len", len(e.text[f]), "brand", e.brand)

	ev := fieldstate.Changed(f, kind, e.text[f] == "", e.validity())
	ds = append(ds, fromMachine(e.machine.OnFieldEvent(ev))...)
	return append(ds, e.notify()...)
}

func (e *Engine) store(ds []Directive, f model.Field, given, formatted string) []Directive {
	e.text[f] = formatted
	if formatted != given {
		ds = append(ds, replace(f, formatted))
	}
	return ds
}

func (e *Engine) updateExpiry(parsed expiry.Expiry) {
	month, _ := parsed.Month()
	year, _ := parsed.Year(e.now())
	if err := e.card.SetExpMonth(month); err != nil {
		e.log.Warn("month rejected", "session", e.id, "err", err)
	}
	if err := e.card.SetExpYear(year); err != nil {
		e.log.Warn("year rejected", "session", e.id, "err", err)
	}
}

func (e *Engine) updateCVC(text string) {
	if err := e.card.SetCVC(text); err != nil {
		e.log.Warn("cvc rejected", "session", e.id, "err", err)
		_ = e.card.SetCVC("")
	}
}

// FocusGained records that the host moved focus to f.
func (e *Engine) FocusGained(f model.Field) []Directive {
	ds := fromMachine(e.machine.OnFieldEvent(fieldstate.Gained(f)))
	if f == model.CVC {
		ds = append(ds, e.setArtwork(Artwork{Brand: e.brand, CVC: true})...)
	}
	return ds
}

// FocusLost records that f lost focus.
func (e *Engine) FocusLost(f model.Field) []Directive {
	ds := fromMachine(e.machine.OnFieldEvent(fieldstate.Lost(f)))
	if f == model.CVC {
		ds = append(ds, e.setArtwork(Artwork{Brand: e.brand})...)
	}
	return ds
}

// BackspaceOnEmpty handles a delete key press in a field that is already
// empty. It is ignored when the engine holds text for f.
func (e *Engine) BackspaceOnEmpty(f model.Field) []Directive {
	f.MustValid()
	if e.text[f] != "" {
		return nil
	}
	return fromMachine(e.machine.OnFieldEvent(fieldstate.Backspace(f)))
}

// SummaryTapped toggles between the collapsed summary and the full number.
func (e *Engine) SummaryTapped() []Directive {
	return fromMachine(e.machine.OnFieldEvent(fieldstate.Tapped(e.validity())))
}

func (e *Engine) validity() fieldstate.Validity {
	return fieldstate.Validity{
		Number:   e.card.ValidateNumber(),
		Complete: len(e.card.Number()) == e.brand.MaxLength(),
		Expiry:   e.card.ValidateExpiryDate(),
	}
}

func (e *Engine) refreshBrand() []Directive {
	b := e.card.Brand()
	if b == e.brand {
		return nil
	}
	e.brand = b
	ds := []Directive{{Kind: BrandChanged, Brand: b}}
	return append(ds, e.setArtwork(Artwork{Brand: b, CVC: e.artwork.CVC})...)
}

func (e *Engine) setArtwork(a Artwork) []Directive {
	if a == e.artwork {
		return nil
	}
	e.artwork = a
	return []Directive{{Kind: ArtworkChanged, Artwork: a}}
}

// notify fires listeners and a ValidityChanged directive only when
// ValidateCard differs from the last value reported.
func (e *Engine) notify() []Directive {
	valid := e.card.ValidateCard()
	if valid == e.lastValid {
		return nil
	}
	e.lastValid = valid
	e.log.Debug("validity changed", "session", e.id, "valid", valid)
	for _, l := range e.listeners {
		l.OnValidationChange(valid)
	}
	return []Directive{{Kind: ValidityChanged, Valid: valid}}
}

// RegisterListener adds l. Registering the same listener twice is a no-op.
func (e *Engine) RegisterListener(l ValidationListener) {
	for _, have := range e.listeners {
		if have == l {
			return
		}
	}
	e.listeners = append(e.listeners, l)
}

// UnregisterListener removes l if present.
func (e *Engine) UnregisterListener(l ValidationListener) {
	for i, have := range e.listeners {
		if have == l {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

// Text returns what the engine believes f shows.
func (e *Engine) Text(f model.Field) string {
	f.MustValid()
	return e.text[f]
}

// Card returns a copy of the current card.
func (e *Engine) Card() *card.Card {
	c := *e.card
	return &c
}

// Brand is the brand detected from the current number.
func (e *Engine) Brand() brand.Brand { return e.brand }

// Artwork is the image the host should currently show.
func (e *Engine) Artwork() Artwork { return e.artwork }

// Valid is the last reported whole-card validity.
func (e *Engine) Valid() bool { return e.lastValid }

// Focused is the field the engine expects to hold focus.
func (e *Engine) Focused() model.Field { return e.machine.Focused() }

// Collapsed reports whether the number shows its summary.
func (e *Engine) Collapsed() bool { return e.machine.Collapsed() }

// State exposes the focus machine state.
func (e *Engine) State() fieldstate.State { return e.machine.State() }

// NumberHasError reports a number of complete length that fails the
// checksum. Hosts render it in an error color.
func (e *Engine) NumberHasError() bool {
	return e.card.ValidateNumberLength() && !e.card.ValidateNumber()
}

// Summary is the text shown in place of the collapsed number: the last four
// digits, or five for American Express.
func (e *Engine) Summary() string {
	return e.card.Last(e.brand.SummaryLength())
}

// CollapseOffset is the saved horizontal shift of the collapsed number. Hosts
// that animate the collapse store it here so it survives a restore.
func (e *Engine) CollapseOffset() float64 { return e.collapseOffset }

// SetCollapseOffset stores the shift computed by the host.
func (e *Engine) SetCollapseOffset(v float64) { e.collapseOffset = v }

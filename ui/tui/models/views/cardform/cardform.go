// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cardform is the interactive card entry view. It is a host for
// core/engine: key presses become engine events and the directives that come
// back are applied to three text inputs.
package cardform

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/toeirei/paymentkit/core/cardnumber"
	"github.com/toeirei/paymentkit/core/engine"
	"github.com/toeirei/paymentkit/core/expiry"
	"github.com/toeirei/paymentkit/core/model"
	"github.com/toeirei/paymentkit/internal/i18n"
	"github.com/toeirei/paymentkit/internal/logging"
	"github.com/toeirei/paymentkit/ui/tui/models/components/keyhelp"
	"github.com/toeirei/paymentkit/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/paymentkit/ui/tui/models/helpers/form/input"
	"github.com/toeirei/paymentkit/ui/tui/util"
)

// Result is what the form hands back on submit.
type Result struct {
	Brand    string `mapstructure:"brand"`
	Number   string `mapstructure:"number"`
	ExpMonth int    `mapstructure:"exp_month"`
	ExpYear  int    `mapstructure:"exp_year"`
	CVC      string `mapstructure:"cvc"`
}

// Masked renders the number with all but the last four digits hidden.
func (r Result) Masked() string {
	return cardnumber.Mask(r.Number, 4)
}

type Options struct {
	// Number, Expiry and CVC prefill the fields.
	Number string
	Expiry string
	CVC    string

	ShowHelp    bool
	MaskSummary bool

	// Clipboard reads the system clipboard. Defaults to atotto/clipboard.
	Clipboard func() (string, error)
	Engine    []engine.Option
}

type Model struct {
	eng     *engine.Engine
	inputs  [3]*forminput.Text
	focused model.Field
	// collapsed mirrors the last RequestCollapse/RequestExpand.
	collapsed bool

	keys form.KeyMap
	help *keyhelp.Model
	opts Options
	size util.Size

	status    string
	pending   []tea.Cmd
	result    *Result
	cancelled bool
}

func New(opts Options) *Model {
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.ReadAll
	}
	keys := form.DefaultKeyMap()
	m := &Model{
		eng: engine.New(opts.Engine...),
		inputs: [3]*forminput.Text{
			forminput.NewText(i18n.T("tui.field.number"), i18n.T("tui.placeholder.number"), cardnumber.MaxFormattedLength),
			forminput.NewText(i18n.T("tui.field.expiry"), i18n.T("tui.placeholder.expiry"), expiry.MaxLength),
			forminput.NewText(i18n.T("tui.field.cvc"), i18n.T("tui.placeholder.cvc"), 4),
		},
		focused: model.CardNumber,
		keys:    keys,
		help:    keyhelp.New(keys),
		opts:    opts,
	}
	m.pending = append(m.pending, m.inputs[model.CardNumber].Focus())
	m.inputs[model.CardNumber].SetValue(opts.Number, len(opts.Number))
	m.inputs[model.Expiry].SetValue(opts.Expiry, len(opts.Expiry))
	m.inputs[model.CVC].SetValue(opts.CVC, len(opts.CVC))
	m.apply(m.eng.Attach(opts.Number, opts.Expiry, opts.CVC))
	return m
}

// Engine exposes the engine for inspection.
func (m *Model) Engine() *engine.Engine { return m.eng }

// Focused is the field whose input has focus.
func (m *Model) Focused() model.Field { return m.focused }

// Collapsed reports whether the number shows its summary.
func (m *Model) Collapsed() bool { return m.collapsed }

// Result returns the submitted card, or false when the form was cancelled
// or is still open.
func (m *Model) Result() (Result, bool) {
	if m.result == nil || m.cancelled {
		return Result{}, false
	}
	return *m.result, true
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.flush()...)
}

func (m *Model) flush() []tea.Cmd {
	cmds := m.pending
	m.pending = nil
	return cmds
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.size.Update(msg) {
		m.help.Update(msg)
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		m.pending = append(m.pending, m.inputs[m.focused].Update(msg))
		return m, tea.Batch(m.flush()...)
	}

	switch m.keys.Resolve(kmsg) {
	case form.ActionCancel:
		m.cancelled = true
		return m, tea.Quit
	case form.ActionSubmit:
		if m.submit() {
			return m, tea.Quit
		}
	case form.ActionNext:
		m.cycle(1)
	case form.ActionPrev:
		m.cycle(-1)
	case form.ActionToggle:
		m.apply(m.eng.SummaryTapped())
	case form.ActionHelp:
		m.help.ToggleExpanded()
	case form.ActionPaste:
		text, err := m.opts.Clipboard()
		if err != nil {
			logging.Warnf("clipboard read failed: %v", err)
			m.status = i18n.T("tui.clipboard_error", err)
			break
		}
		m.insert(text)
	default:
		m.status = ""
		switch kmsg.Type {
		case tea.KeyBackspace:
			m.backspace()
		case tea.KeySpace:
			m.insert(" ")
		case tea.KeyRunes:
			m.insert(string(kmsg.Runes))
		default:
			m.pending = append(m.pending, m.inputs[m.focused].Update(kmsg))
		}
	}
	return m, tea.Batch(m.flush()...)
}

// insert offers s to the engine as one edit at the cursor.
func (m *Model) insert(s string) {
	f := m.focused
	in := m.inputs[f]
	cur, pos := in.Value(), in.Position()
	ins, ok := m.eng.TextWillChange(f, s, model.Caret(pos))
	if !ok {
		return
	}
	next := model.Caret(pos).Apply(cur, ins)
	in.SetValue(next, pos+len(ins))
	m.apply(m.eng.TextDidChange(f, next))
}

func (m *Model) backspace() {
	f := m.focused
	in := m.inputs[f]
	cur, pos := in.Value(), in.Position()
	if cur == "" {
		m.apply(m.eng.BackspaceOnEmpty(f))
		return
	}
	if pos == 0 {
		return
	}
	sel := model.Selection{Start: pos - 1, End: pos}
	if _, ok := m.eng.TextWillChange(f, "", sel); !ok {
		return
	}
	next := sel.Apply(cur, "")
	in.SetValue(next, pos-1)
	m.apply(m.eng.TextDidChange(f, next))
}

// cycle moves focus between visible fields. While the number is expanded it
// is the only visible field, so tab asks to collapse it instead.
func (m *Model) cycle(step int) {
	if !m.collapsed {
		m.apply(m.eng.SummaryTapped())
		return
	}
	n := len(model.Fields)
	next := model.Field((int(m.focused) + step + n) % n)
	m.focus(next)
}

func (m *Model) focus(f model.Field) {
	if f == m.focused {
		return
	}
	prev := m.focused
	m.inputs[prev].Blur()
	m.focused = f
	m.pending = append(m.pending, m.inputs[f].Focus())
	m.apply(m.eng.FocusLost(prev))
	m.apply(m.eng.FocusGained(f))
}

func (m *Model) apply(ds []engine.Directive) {
	for _, d := range ds {
		switch d.Kind {
		case engine.ReplaceText:
			m.inputs[d.Field].SetValue(d.Text, len(d.Text))
		case engine.RequestFocus:
			m.focus(d.Field)
		case engine.RequestCollapse:
			m.collapsed = true
		case engine.RequestExpand:
			m.collapsed = false
		case engine.ValidityChanged, engine.BrandChanged, engine.ArtworkChanged:
			logging.L.Debug("directive", "session", m.eng.ID(), "directive", d.Kind)
		}
	}
}

func (m *Model) submit() bool {
	if !m.eng.Valid() {
		m.status = i18n.T("tui.status_incomplete")
		return false
	}
	c := m.eng.Card()
	month, _ := c.ExpMonth()
	year, _ := c.ExpYear()
	cvc, _ := c.CVC()
	res, err := form.Decode[Result](map[string]any{
		"brand":     c.Brand().String(),
		"number":    c.Number(),
		"exp_month": month,
		"exp_year":  year,
		"cvc":       cvc,
	})
	if err != nil {
		m.status = err.Error()
		return false
	}
	m.result = &res
	return true
}

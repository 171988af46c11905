// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/toeirei/paymentkit/core/brand"
	"github.com/toeirei/paymentkit/core/card"
	"github.com/toeirei/paymentkit/core/cardnumber"
	"github.com/toeirei/paymentkit/core/engine"
	"github.com/toeirei/paymentkit/core/model"
	"github.com/toeirei/paymentkit/internal/i18n"
	"github.com/toeirei/paymentkit/internal/logging"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Width(14)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	badStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type checkOutput struct {
	card.Report
	Formatted  string `json:"formatted"`
	ExpiryText string `json:"expiry_text"`
	Focus      string `json:"focus"`
	Collapsed  bool   `json:"collapsed"`
}

func newCheckCmd() *cobra.Command {
	var number, exp, cvc string
	var asJSON, reveal bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate card data without the interactive form",
		Long: `Runs the given values through the same cleaning and validation as
the interactive form and prints what each check reports. The number is
masked unless --reveal is given.`,
		Example: `  paymentkit check --number "4242 4242 4242 4242" --expiry 12/30 --cvc 123`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := engine.New(engine.WithLogger(logging.L))
			e.Attach(number, exp, cvc)

			c := e.Card()
			out := checkOutput{
				Report:     c.Report(),
				Formatted:  e.Text(model.CardNumber),
				ExpiryText: e.Text(model.Expiry),
				Focus:      e.Focused().String(),
				Collapsed:  e.Collapsed(),
			}
			if !reveal {
				out.Formatted = cardnumber.Mask(out.Formatted, e.Brand().SummaryLength())
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			renderCheck(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&number, "number", "", "Card number, separators allowed")
	cmd.Flags().StringVar(&exp, "expiry", "", "Expiry date as MM/YY")
	cmd.Flags().StringVar(&cvc, "cvc", "", "Card verification code")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print the full formatted number")
	return cmd
}

func verdict(ok bool) string {
	if ok {
		return okStyle.Render(i18n.T("check.ok"))
	}
	return badStyle.Render(i18n.T("check.invalid"))
}

func renderCheck(w io.Writer, out checkOutput) {
	rows := [][2]string{
		{i18n.T("check.brand"), out.Brand},
		{i18n.T("check.number"), out.Formatted},
		{i18n.T("check.number_length"), verdict(out.NumberLength)},
		{i18n.T("check.luhn"), verdict(out.Number)},
		{i18n.T("check.expiry"), verdict(out.Expiry)},
		{i18n.T("check.cvc"), verdict(out.CVC)},
		{i18n.T("check.card"), verdict(out.Card)},
		{i18n.T("check.next_focus"), out.Focus},
	}
	for _, r := range rows {
		_, _ = fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(r[0]), r[1]))
	}
}

func newBrandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "brand <digits|name>",
		Short: "Show which brand a number prefix or brand name refers to",
		Example: `  paymentkit brand 4242
  paymentkit brand amex`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := resolveBrand(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(i18n.T("check.brand")), b.String()))
			_, _ = fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(i18n.T("brand.lengths")), lengthsOf(b)))
			_, _ = fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(i18n.T("brand.groups")), joinInts(b.Groups(), "-")))
			_, _ = fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(i18n.T("brand.cvc")), strconv.Itoa(b.CVCLength())))
			return nil
		},
	}
}

// resolveBrand detects the brand of a number prefix, or looks up a slug or
// display name when arg has no digits.
func resolveBrand(arg string) (brand.Brand, error) {
	if digits := cardnumber.Digits(arg); digits != "" {
		return brand.Detect(digits), nil
	}
	b, err := brand.ParseBrand(arg)
	if err != nil {
		logging.Debugf("brand lookup: %v", err)
		return brand.Unknown, fmt.Errorf("%s", i18n.T("brand.error.unknown", arg))
	}
	return b, nil
}

func lengthsOf(b brand.Brand) string {
	if l := b.Lengths(); len(l) > 0 {
		return joinInts(l, ", ")
	}
	return fmt.Sprintf("%d-%d", brand.MinUnknownLength, brand.MaxUnknownLength)
}

func joinInts(v []int, sep string) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, sep)
}

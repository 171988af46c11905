// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toeirei/paymentkit/core/engine"
	"github.com/toeirei/paymentkit/internal/i18n"
	"github.com/toeirei/paymentkit/internal/logging"
	"github.com/toeirei/paymentkit/internal/transcript"
)

// errExpectationsFailed makes the process exit non-zero after the report
// has been printed.
var errExpectationsFailed = errors.New("replay expectations failed")

func newReplayCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "replay <file>",
		Short: "Replay a recorded input transcript against the engine",
		Long: `Reads a YAML transcript (optionally zstd-compressed, .zst) of focus
changes, keystrokes, pastes and summary taps, feeds it to a headless engine
and prints every directive the engine emits. Expectations in the transcript
are checked at the end.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := transcript.Load(args[0])
			if err != nil {
				return err
			}
			res, err := transcript.Run(t, engine.WithLogger(logging.L))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if t.Name != "" {
				_, _ = fmt.Fprintln(w, i18n.T("replay.name", t.Name))
			}
			if !quiet {
				_, _ = fmt.Fprintln(w, i18n.T("replay.attach"))
				printDirectives(cmd, res.Attached)
				for _, s := range res.Steps {
					_, _ = fmt.Fprintln(w, i18n.T("replay.step", s.Index, s.Step))
					printDirectives(cmd, s.Directives)
				}
			}

			if !res.OK() {
				for _, f := range res.Failures {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), badStyle.Render(i18n.T("replay.failure", f)))
				}
				return errExpectationsFailed
			}
			_, _ = fmt.Fprintln(w, okStyle.Render(i18n.T("replay.passed", len(res.Steps))))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print the verdict")
	return cmd
}

func printDirectives(cmd *cobra.Command, ds []engine.Directive) {
	for _, d := range ds {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", d)
	}
}

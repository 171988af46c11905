// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/toeirei/paymentkit/buildvars"
	"github.com/toeirei/paymentkit/internal/config"
	"github.com/toeirei/paymentkit/internal/i18n"
	"github.com/toeirei/paymentkit/internal/logging"
	"github.com/toeirei/paymentkit/ui/tui"
	"github.com/toeirei/paymentkit/ui/tui/models/views/cardform"
)

const modulePath = "github.com/toeirei/paymentkit"

var version = "dev"   // set by the linker
var gitCommit = "dev" // short commit SHA, set at build time
var buildDate = ""    // RFC3339, set at build time

var cfgFile string
var verbose bool
var showVersionFlag bool

var appConfig config.Config

// setupDefaultServices loads configuration and applies it to logging and
// translations. Every command runs it before doing anything else.
func setupDefaultServices(cmd *cobra.Command, args []string) error {
	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := appConfig.Validate(); err != nil {
		return err
	}

	i18n.Init(appConfig.Language)

	level := appConfig.Log.Level
	if verbose {
		level = "debug"
	}
	if err := logging.SetLevel(level); err != nil {
		return err
	}
	if err := logging.SetFormatter(appConfig.Log.Format); err != nil {
		return err
	}
	logging.Debugf("config loaded: language=%s level=%s format=%s", appConfig.Language, level, appConfig.Log.Format)
	return nil
}

// Execute runs the CLI entrypoint.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" && c != v {
		out += " (" + c + ")"
	}
	if d != "" {
		out += " built: " + d
	}
	return out
}

// NewRootCmd creates the root command with all subcommands. Tests call it to
// get a fresh tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paymentkit",
		Short: "PaymentKit is a payment card input engine with a terminal front end.",
		Long: `PaymentKit formats, filters and validates card number, expiry date
and CVC as they are typed, and decides where focus should go next.

Running without a subcommand launches the interactive card form.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), compositeVersion())
				os.Exit(0)
			}
			return setupDefaultServices(cmd, args)
		},
		RunE: runInteractive,
	}
	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `Interface language ("en", "de")`)
	cmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "text", "Log format (text, json, logfmt)")

	cmd.Flags().String("number", "", "Prefill the card number")
	cmd.Flags().String("expiry", "", "Prefill the expiry date (MM/YY)")

	cmd.AddCommand(
		newCheckCmd(),
		newBrandCmd(),
		newReplayCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return cmd
}

var errNoTerminal = errors.New("no terminal")

func runInteractive(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("%w: %s", errNoTerminal, i18n.T("cli.error.no_terminal"))
	}

	// Log lines would tear the form apart; keep them only when asked for.
	if !verbose {
		logging.SetOutput(io.Discard)
	}

	number, _ := cmd.Flags().GetString("number")
	exp, _ := cmd.Flags().GetString("expiry")
	res, ok, err := tui.Run(tui.Options{
		AltScreen: appConfig.TUI.AltScreen,
		Form: cardform.Options{
			Number:      number,
			Expiry:      exp,
			ShowHelp:    appConfig.TUI.ShowHelp,
			MaskSummary: appConfig.TUI.MaskSummary,
		},
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !ok {
		_, _ = fmt.Fprintln(out, i18n.T("cli.cancelled"))
		return nil
	}
	_, _ = fmt.Fprintln(out, i18n.T("cli.result", res.Brand, res.Masked(), res.ExpMonth, res.ExpYear%100))
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "version: %s\n", v)
			_, _ = fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				_, _ = fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If info is nil, build info is read from the
// runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, found := debug.ReadBuildInfo(); found {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Some build paths leave Main empty; look for our module in the
		// dependencies instead.
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}
	return resolvedVersion, resolvedCommit, resolvedDate
}

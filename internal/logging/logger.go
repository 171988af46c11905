// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging holds the process-wide logger. Card numbers must never be
// passed to it in full; log brand, length or the last digits instead.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. Callers should use the helper functions
// below unless they need structured key/value pairs.
var L = clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "paymentkit"})

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}

// SetLevel parses a level name (debug, info, warn, error, fatal) and applies
// it to L.
func SetLevel(name string) error {
	lvl, err := clog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return fmt.Errorf("log level %q: %w", name, err)
	}
	L.SetLevel(lvl)
	return nil
}

// SetFormatter switches L between text, json and logfmt output.
func SetFormatter(name string) error {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text":
		L.SetFormatter(clog.TextFormatter)
	case "json":
		L.SetFormatter(clog.JSONFormatter)
	case "logfmt":
		L.SetFormatter(clog.LogfmtFormatter)
	default:
		return fmt.Errorf("unknown log format %q", name)
	}
	return nil
}

// SetOutput redirects L. The TUI uses it to keep log lines off the screen.
func SetOutput(w io.Writer) {
	L.SetOutput(w)
}

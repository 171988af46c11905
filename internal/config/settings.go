// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the host configuration.
type Config struct {
	Language string    `mapstructure:"language" yaml:"language" validate:"required,oneof=en de"`
	Log      LogConfig `mapstructure:"log" yaml:"log"`
	TUI      TUIConfig `mapstructure:"tui" yaml:"tui"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"required,oneof=debug info warn error fatal"`
	Format string `mapstructure:"format" yaml:"format" validate:"required,oneof=text json logfmt"`
}

type TUIConfig struct {
	AltScreen bool `mapstructure:"alt_screen" yaml:"alt_screen"`
	ShowHelp  bool `mapstructure:"show_help" yaml:"show_help"`
	// MaskSummary hides all but the summary digits once the number collapses.
	MaskSummary bool `mapstructure:"mask_summary" yaml:"mask_summary"`
}

// Defaults returns the built-in values keyed the way LoadConfig expects.
func Defaults() map[string]any {
	return map[string]any{
		"language":         "en",
		"log.level":        "warn",
		"log.format":       "text",
		"tui.alt_screen":   false,
		"tui.show_help":    true,
		"tui.mask_summary": true,
	}
}

var validate = validator.New()

// Validate checks c and reports every offending key at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s=%q fails %s", keyOf(fe.Namespace()), fmt.Sprint(fe.Value()), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// keyOf turns "Config.Log.Level" into "log.level".
func keyOf(ns string) string {
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.ToLower(strings.Join(parts, "."))
}

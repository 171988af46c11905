// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads host settings from defaults, paymentkit.yaml,
// PAYMENTKIT_* environment variables and command line flags, in increasing
// order of precedence. Card data never goes through configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName   = "paymentkit"
	envPrefix = "PAYMENTKIT"
)

// GetConfigPath returns the full path of the user or system configuration
// file.
func GetConfigPath(system bool) (string, error) {
	var configDir string

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "PaymentKit")
		default:
			configDir = "/etc/" + appName
		}
	} else {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(dir, appName)
	}

	return filepath.Join(configDir, appName+".yaml"), nil
}

// LoadConfig reads T from every configuration source. A missing file is not
// an error; a malformed one is. configFile, when set, is read instead of the
// standard search path.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(appName)
	v.SetConfigType("yaml")

	if configFile != nil && *configFile != "" {
		v.SetConfigFile(*configFile)
	} else {
		if userConfigPath, err := GetConfigPath(false); err == nil {
			v.AddConfigPath(filepath.Dir(userConfigPath))
		}
		if systemConfigPath, err := GetConfigPath(true); err == nil {
			v.AddConfigPath(filepath.Dir(systemConfigPath))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := bindFlags(v, cmd); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

// bindFlags maps changed flags onto their dotted keys. Flag names use dashes
// where keys use dots, so --log-level sets log.level.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	var firstErr error
	bind := func(name string) {
		f := cmd.Flags().Lookup(name)
		if f == nil || firstErr != nil {
			return
		}
		key := strings.ReplaceAll(name, "-", ".")
		if err := v.BindPFlag(key, f); err != nil {
			firstErr = fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	for _, name := range []string{"language", "log-level", "log-format"} {
		bind(name)
	}
	return firstErr
}

// WriteConfigFile stores c as YAML in the user or system location and
// returns the path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}
	return path, WriteConfigFileTo(c, path)
}

// WriteConfigFileTo stores c as YAML at path, creating parent directories.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}
	return os.WriteFile(path, data, 0o600)
}

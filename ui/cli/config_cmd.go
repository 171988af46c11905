// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/toeirei/paymentkit/internal/config"
	"github.com/toeirei/paymentkit/internal/i18n"
	"github.com/toeirei/paymentkit/internal/logging"
)

func newConfigCmd() *cobra.Command {
	var write, system bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration or write it to disk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if write {
				path, err := config.WriteConfigFile(&appConfig, system)
				if err != nil {
					return err
				}
				logging.Infof("configuration written to %s", path)
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("config.written", path))
				return nil
			}
			data, err := yaml.Marshal(appConfig)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "Write the effective configuration to the config file")
	cmd.Flags().BoolVar(&system, "system", false, "With --write, target the system-wide config file")
	return cmd
}

// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for PaymentKit.
//
// Usage:
//
//	go run . [flags]
//	./paymentkit [flags]
//	./paymentkit check --number 4242424242424242 --expiry 12/30 --cvc 123
//
// Without a subcommand the interactive card form is launched. See --help for
// options.
package main

import (
	"os"

	"github.com/toeirei/paymentkit/internal/logging"
	"github.com/toeirei/paymentkit/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("paymentkit: %v", err)
		os.Exit(1)
	}
}

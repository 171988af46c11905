// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for PaymentKit using
// Cobra. It wires configuration, logging and translations, then hands off to
// the TUI or to one of the non-interactive commands. Card logic stays in
// core; commands only format what the engine reports.
package cli

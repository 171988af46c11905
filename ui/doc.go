// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui groups the hosts that drive the card engine: the Cobra command
// line in ui/cli and the Bubble Tea card form in ui/tui.
package ui

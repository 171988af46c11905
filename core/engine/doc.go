// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package engine is the host-facing surface of the card input logic. A host
// (terminal form, replay harness, test) reports what the user did and carries
// out the directives it gets back. Every edit runs the same pipeline: filter,
// format, card update, brand refresh, focus decision, validity notification.
//
// The engine is single threaded. All calls must come from the host's event
// loop.
package engine

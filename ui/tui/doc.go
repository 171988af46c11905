// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui runs the interactive card entry form. Presentation and input
// handling live here; every decision about card text, focus and validity is
// made by core/engine.
package tui

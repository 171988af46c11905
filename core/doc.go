// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package core is the root of the UI-agnostic card input engine. The
// sub-packages are layered leaves first: model, brand, cardnumber, expiry,
// card, fieldstate and finally engine, which glues them into the per-keystroke
// pipeline a host drives. Nothing below core renders, blocks or persists.
package core

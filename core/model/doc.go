// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model defines the small vocabulary shared by every core package:
// the three logical input fields, the kind of an edit and the selection an
// edit replaces.
package model

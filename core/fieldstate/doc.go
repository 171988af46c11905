// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package fieldstate decides which card field should hold focus and whether
// the number field shows the full number or its collapsed summary. It is a
// pure decision function: events in, directives out. Focus itself lives in
// the host; the machine only asks for it.
package fieldstate

// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package fieldstate

import (
	"fmt"

	"github.com/toeirei/paymentkit/core/model"
)

type DirectiveKind int

const (
	RequestFocus DirectiveKind = iota
	RequestCollapse
	RequestExpand
)

// Directive is a request to the host. Field is only meaningful for
// RequestFocus.
type Directive struct {
	Kind  DirectiveKind
	Field model.Field
}

// Focus requests focus on f.
func Focus(f model.Field) Directive {
	return Directive{Kind: RequestFocus, Field: f}
}

var (
	Collapse = Directive{Kind: RequestCollapse}
	Expand   = Directive{Kind: RequestExpand}
)

func (d Directive) String() string {
	switch d.Kind {
	case RequestFocus:
		return fmt.Sprintf("RequestFocus(%s)", d.Field)
	case RequestCollapse:
		return "RequestCollapse"
	case RequestExpand:
		return "RequestExpand"
	}
	return fmt.Sprintf("Directive(%d)", int(d.Kind))
}

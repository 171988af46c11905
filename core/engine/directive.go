// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package engine

import (
	"fmt"

	"github.com/toeirei/paymentkit/core/brand"
	"github.com/toeirei/paymentkit/core/fieldstate"
	"github.com/toeirei/paymentkit/core/model"
)

type DirectiveKind int

const (
	ReplaceText DirectiveKind = iota
	RequestFocus
	RequestCollapse
	RequestExpand
	ValidityChanged
	BrandChanged
	ArtworkChanged
)

func (k DirectiveKind) String() string {
	switch k {
	case ReplaceText:
		return "ReplaceText"
	case RequestFocus:
		return "RequestFocus"
	case RequestCollapse:
		return "RequestCollapse"
	case RequestExpand:
		return "RequestExpand"
	case ValidityChanged:
		return "ValidityChanged"
	case BrandChanged:
		return "BrandChanged"
	case ArtworkChanged:
		return "ArtworkChanged"
	}
	return fmt.Sprintf("DirectiveKind(%d)", int(k))
}

// Directive is one instruction for the host. Only the fields that belong to
// Kind are set.
type Directive struct {
	Kind DirectiveKind
	// Field is set for ReplaceText and RequestFocus.
	Field model.Field
	// Text is the new field content for ReplaceText. The host must apply it
	// without reporting it back as a user edit.
	Text    string
	Valid   bool
	Brand   brand.Brand
	Artwork Artwork
}

func (d Directive) String() string {
	switch d.Kind {
	case ReplaceText:
		return fmt.Sprintf("ReplaceText(%s, %q)", d.Field, d.Text)
	case RequestFocus:
		return fmt.Sprintf("RequestFocus(%s)", d.Field)
	case ValidityChanged:
		return fmt.Sprintf("ValidityChanged(%t)", d.Valid)
	case BrandChanged:
		return fmt.Sprintf("BrandChanged(%s)", d.Brand)
	case ArtworkChanged:
		return fmt.Sprintf("ArtworkChanged(%s)", d.Artwork)
	}
	return d.Kind.String()
}

func replace(f model.Field, text string) Directive {
	return Directive{Kind: ReplaceText, Field: f, Text: text}
}

func fromMachine(ds []fieldstate.Directive) []Directive {
	out := make([]Directive, 0, len(ds))
	for _, d := range ds {
		switch d.Kind {
		case fieldstate.RequestFocus:
			out = append(out, Directive{Kind: RequestFocus, Field: d.Field})
		case fieldstate.RequestCollapse:
			out = append(out, Directive{Kind: RequestCollapse})
		case fieldstate.RequestExpand:
			out = append(out, Directive{Kind: RequestExpand})
		}
	}
	return out
}

// Artwork names the image shown next to the number: the brand logo, or the
// card back while the CVC is being entered.
type Artwork struct {
	Brand brand.Brand
	CVC   bool
}

func (a Artwork) String() string {
	if a.CVC {
		if a.Brand == brand.AmericanExpress {
			return "cvc_amex"
		}
		return "cvc"
	}
	if a.Brand == brand.Unknown {
		return "placeholder"
	}
	return a.Brand.Slug()
}

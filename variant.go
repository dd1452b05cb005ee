package materialsymbols

import (
	"fmt"
	"strings"
)

// Hosted stylesheet URLs, one per font family.
const (
	OutlinedStylesheetURL = "https://fonts.googleapis.com/icon?family=Material+Symbols+Outlined"
	RoundedStylesheetURL  = "https://fonts.googleapis.com/icon?family=Material+Symbols+Rounded"
	SharpStylesheetURL    = "https://fonts.googleapis.com/icon?family=Material+Symbols+Sharp"
)

// Variant names accepted by ParseVariant and returned by Variant.String.
const (
	VariantNameOutlined   = "outlined"
	VariantNameRounded    = "rounded"
	VariantNameSharp      = "sharp"
	VariantNameSelfHosted = "self-hosted"
)

type variantKind uint8

// variantRounded is the zero kind so that Variant{} selects Rounded.
const (
	variantRounded variantKind = iota
	variantOutlined
	variantSharp
	variantSelfHosted
)

// Variant selects a family of the Material Symbols font, also called a
// category. See https://fonts.google.com/icons.
//
// The zero value is Rounded. Variants are immutable values.
type Variant struct {
	kind   variantKind
	source string
}

// Predefined hosted variants.
var (
	Outlined = Variant{kind: variantOutlined}
	Rounded  = Variant{kind: variantRounded}
	Sharp    = Variant{kind: variantSharp}
)

// SelfHosted returns a variant that loads the font from a .ttf or .otf file
// served by the application. The source is a path or URL as the browser will
// resolve it; it is not checked here. Font files are published at
// https://github.com/google/material-design-icons/tree/master/font.
func SelfHosted(source string) Variant {
	return Variant{kind: variantSelfHosted, source: source}
}

// IsSelfHosted reports whether the variant loads a self-hosted font file.
func (v Variant) IsSelfHosted() bool {
	return v.kind == variantSelfHosted
}

// Source returns the font file path or URL of a self-hosted variant,
// or an empty string for hosted variants.
func (v Variant) Source() string {
	return v.source
}

// StylesheetURL returns the hosted stylesheet URL for the variant.
// The boolean is false for self-hosted variants, which have no hosted stylesheet.
func (v Variant) StylesheetURL() (string, bool) {
	switch v.kind {
	case variantOutlined:
		return OutlinedStylesheetURL, true
	case variantSharp:
		return SharpStylesheetURL, true
	case variantSelfHosted:
		return "", false
	default:
		return RoundedStylesheetURL, true
	}
}

// String returns the variant name as accepted by ParseVariant.
func (v Variant) String() string {
	switch v.kind {
	case variantOutlined:
		return VariantNameOutlined
	case variantSharp:
		return VariantNameSharp
	case variantSelfHosted:
		return VariantNameSelfHosted
	default:
		return VariantNameRounded
	}
}

// ParseVariant resolves a variant name from configuration or flags.
// Names are case-insensitive. An empty name selects Rounded.
// The source is only used by the self-hosted variant, where it is required.
func ParseVariant(name, source string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", VariantNameRounded:
		return Rounded, nil
	case VariantNameOutlined:
		return Outlined, nil
	case VariantNameSharp:
		return Sharp, nil
	case VariantNameSelfHosted:
		if strings.TrimSpace(source) == "" {
			return Variant{}, ErrMissingSource
		}
		return SelfHosted(source), nil
	default:
		return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
}

// VariantNames lists the accepted variant names, for help text and completion.
func VariantNames() []string {
	return []string{VariantNameOutlined, VariantNameRounded, VariantNameSharp, VariantNameSelfHosted}
}

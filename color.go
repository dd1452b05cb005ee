package materialsymbols

import "strings"

// Color names accepted by ParseColor.
const (
	ColorNameDark          = "dark"
	ColorNameDarkInactive  = "dark-inactive"
	ColorNameLight         = "light"
	ColorNameLightInactive = "light-inactive"
)

type colorKind uint8

const (
	colorUnset colorKind = iota
	colorDark
	colorDarkInactive
	colorLight
	colorLightInactive
	colorCustom
)

// Color is the foreground color of an icon, following
// https://developers.google.com/fonts/docs/material_symbols#styling_symbols_in_material_design.
//
// The zero value means no color: the icon inherits the surrounding text color.
type Color struct {
	kind  colorKind
	value string
}

// Named colors.
var (
	// Dark is for symbols drawn black on a light background.
	Dark = Color{kind: colorDark}
	// DarkInactive is Dark for inactive or disabled symbols.
	DarkInactive = Color{kind: colorDarkInactive}
	// Light is for symbols drawn white on a dark background.
	Light = Color{kind: colorLight}
	// LightInactive is Light for inactive or disabled symbols.
	LightInactive = Color{kind: colorLightInactive}
)

// Custom returns a color from any CSS color value, e.g. "#0000ff" or "red".
// The value is passed through to the style attribute unchanged.
func Custom(css string) Color {
	return Color{kind: colorCustom, value: css}
}

// IsSet reports whether c holds a color. The zero Color is not set.
func (c Color) IsSet() bool {
	return c.kind != colorUnset
}

// CSS converts the color to its CSS color value.
// It returns an empty string for the zero Color.
func (c Color) CSS() string {
	switch c.kind {
	case colorDark:
		return "rgba(0,0,0,0.54)"
	case colorDarkInactive:
		return "rgba(0,0,0,0.26)"
	case colorLight:
		return "rgba(255,255,255,1)"
	case colorLightInactive:
		return "rgba(255,255,255,0.3)"
	case colorCustom:
		return c.value
	default:
		return ""
	}
}

// ParseColor converts a configuration value to a Color.
// Named colors are matched case-insensitively; any other non-empty value
// becomes a Custom color. An empty value returns the zero Color.
func ParseColor(s string) Color {
	trimmed := strings.TrimSpace(s)
	switch strings.ToLower(trimmed) {
	case "":
		return Color{}
	case ColorNameDark:
		return Dark
	case ColorNameDarkInactive:
		return DarkInactive
	case ColorNameLight:
		return Light
	case ColorNameLightInactive:
		return LightInactive
	default:
		return Custom(trimmed)
	}
}

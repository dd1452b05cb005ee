package materialsymbols

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// IconClass is the class list of every rendered icon. It names all hosted
// families so the glyph renders with whichever stylesheet is mounted.
const IconClass = "material-symbols material-symbols-outlined material-symbols-rounded material-symbols-sharp md-48"

// Icon renders one Material Symbol.
//
// The span's text is the symbol name (e.g. "home"); the font's ligatures turn
// it into the glyph. Browse names at
// https://fonts.google.com/symbols?selected=Material+Symbols.
// Without a mounted Stylesheet the name shows as plain text.
//
// Icon implements templ.Component.
type Icon struct {
	// Name of the symbol, e.g. "home".
	Name string
	// Size in pixels. Zero inherits the font size of the parent element.
	Size int
	// Color of the symbol. The zero Color inherits the text color.
	Color Color
}

var _ templ.Component = Icon{}

// NewIcon returns an icon with the given name, inherited size and color.
func NewIcon(name string) Icon {
	return Icon{Name: name}
}

// WithSize returns a copy of the icon with the given size in pixels.
func (i Icon) WithSize(px int) Icon {
	i.Size = px
	return i
}

// WithColor returns a copy of the icon with the given color.
func (i Icon) WithColor(c Color) Icon {
	i.Color = c
	return i
}

// FontSize returns the CSS font-size value: "{size}px", or "inherit" when no
// size is set. The stylesheet defaults to 24px, so inherit must be explicit.
func (i Icon) FontSize() string {
	if i.Size > 0 {
		return strconv.Itoa(i.Size) + "px"
	}
	return "inherit"
}

// Style returns the inline style attribute value.
func (i Icon) Style() string {
	var b strings.Builder
	b.WriteString("font-size: ")
	b.WriteString(i.FontSize())
	b.WriteString(";")
	if i.Color.IsSet() {
		b.WriteString(" color: ")
		b.WriteString(i.Color.CSS())
		b.WriteString(";")
	}
	b.WriteString(" user-select: none;")
	return b.String()
}

// Render writes the icon markup to w.
func (i Icon) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, i.HTML())
	return err
}

// HTML returns the icon markup.
func (i Icon) HTML() string {
	var b strings.Builder
	b.WriteString(`<span class="`)
	b.WriteString(IconClass)
	b.WriteString(`" style="`)
	b.WriteString(templ.EscapeString(i.Style()))
	b.WriteString(`">`)
	b.WriteString(templ.EscapeString(i.Name))
	b.WriteString("</span>")
	return b.String()
}

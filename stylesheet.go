package materialsymbols

import (
	"bytes"
	"context"
	"io"
	"text/template"

	"github.com/a-h/templ"

	"github.com/alnah/go-materialsymbols/internal/assets"
	"github.com/alnah/go-materialsymbols/internal/pipeline"
)

// selfHostedCSS renders the @font-face rules for a self-hosted font file.
// text/template is used because the output is raw CSS inside <style>, not HTML.
var selfHostedCSS = mustParseStyle(assets.SelfHostedStyle)

// mustParseStyle loads and parses an embedded style template.
// Panics if the template cannot be loaded or parsed (programmer error).
func mustParseStyle(name string) *template.Template {
	content, err := assets.LoadStyle(name)
	if err != nil {
		panic("failed to load " + name + " style: " + err.Error())
	}
	tmpl, err := template.New(name).Parse(content)
	if err != nil {
		panic("failed to parse " + name + " style: " + err.Error())
	}
	return tmpl
}

// Stylesheet includes the Material Symbols font in a page.
//
// Mount it once per page, typically in <head>; every Icon below it depends on
// it. Hosted variants render a <link rel="stylesheet"> to Google Fonts. A
// SelfHosted variant renders an inline <style> block with an @font-face rule
// pointing at the given font file.
//
// Stylesheet implements templ.Component.
type Stylesheet struct {
	Variant Variant
}

var _ templ.Component = Stylesheet{}

// NewStylesheet returns the stylesheet component for a variant.
func NewStylesheet(v Variant) Stylesheet {
	return Stylesheet{Variant: v}
}

// Render writes the stylesheet markup to w.
func (s Stylesheet) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, s.HTML())
	return err
}

// HTML returns the stylesheet markup.
func (s Stylesheet) HTML() string {
	if href, ok := s.Variant.StylesheetURL(); ok {
		return `<link href="` + templ.EscapeString(href) + `" rel="stylesheet">`
	}
	return "<style>" + s.CSS() + "</style>"
}

// CSS returns the inline CSS of a self-hosted variant, with the font source
// substituted verbatim. Hosted variants have no inline CSS and return "".
func (s Stylesheet) CSS() string {
	if !s.Variant.IsSelfHosted() {
		return ""
	}
	var buf bytes.Buffer
	// Executing a parsed template with a plain struct of strings cannot fail
	// on a bytes.Buffer.
	_ = selfHostedCSS.Execute(&buf, struct{ Source string }{Source: s.Variant.Source()})
	return pipeline.SanitizeCSS(buf.String())
}

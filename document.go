package materialsymbols

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/alnah/go-materialsymbols/internal/assets"
	"github.com/alnah/go-materialsymbols/internal/pipeline"
)

// Document defaults.
const (
	DefaultDocumentTitle = "Document"
	DefaultDocumentLang  = "en"
)

// documentTemplate wraps rendered Markdown in a standalone HTML5 page.
var documentTemplate = mustParseDocumentTemplate()

// mustParseDocumentTemplate panics if the embedded template cannot be loaded
// or parsed (programmer error).
func mustParseDocumentTemplate() *template.Template {
	content, err := assets.LoadTemplate(assets.DocumentTemplate)
	if err != nil {
		panic("failed to load document template: " + err.Error())
	}
	tmpl, err := template.New(assets.DocumentTemplate).Parse(content)
	if err != nil {
		panic("failed to parse document template: " + err.Error())
	}
	return tmpl
}

// DocumentInput holds the per-render inputs of a Document.
type DocumentInput struct {
	Markdown string // Source with :icon[...] shortcodes (required)
	Title    string // <title>, defaults to DefaultDocumentTitle
	Lang     string // <html lang>, defaults to DefaultDocumentLang
}

// DocumentOption configures a Document.
type DocumentOption func(*documentConfig)

type documentConfig struct {
	variant        Variant
	iconSize       int
	iconColor      Color
	highlightStyle string
	extensions     []goldmark.Extender
}

// WithVariant selects the font variant mounted in the page head.
func WithVariant(v Variant) DocumentOption {
	return func(c *documentConfig) {
		c.variant = v
	}
}

// WithIconDefaults sets the size and color used by shortcodes that omit them.
func WithIconDefaults(size int, color Color) DocumentOption {
	return func(c *documentConfig) {
		c.iconSize = size
		c.iconColor = color
	}
}

// WithHighlightStyle selects the chroma style for fenced code blocks.
func WithHighlightStyle(style string) DocumentOption {
	return func(c *documentConfig) {
		c.highlightStyle = style
	}
}

// WithExtensions adds goldmark extensions after the built-in ones.
func WithExtensions(exts ...goldmark.Extender) DocumentOption {
	return func(c *documentConfig) {
		c.extensions = append(c.extensions, exts...)
	}
}

// Document renders Markdown with icon shortcodes into standalone HTML pages.
// The page mounts the variant's Stylesheet once in its head.
// A Document is safe for concurrent use.
type Document struct {
	stylesheet Stylesheet
	converter  pipeline.HTMLConverter
}

// NewDocument creates a Document.
func NewDocument(opts ...DocumentOption) *Document {
	cfg := documentConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	ext := NewExtension(WithDefaultSize(cfg.iconSize), WithDefaultColor(cfg.iconColor))
	return &Document{
		stylesheet: NewStylesheet(cfg.variant),
		converter:  pipeline.NewGoldmarkConverter(cfg.highlightStyle, append([]goldmark.Extender{ext}, cfg.extensions...)...),
	}
}

// Variant returns the variant mounted by the document.
func (d *Document) Variant() Variant {
	return d.stylesheet.Variant
}

// Render converts the input to a complete HTML page.
func (d *Document) Render(ctx context.Context, in DocumentInput) (string, error) {
	if strings.TrimSpace(in.Markdown) == "" {
		return "", ErrEmptyMarkdown
	}

	// Errors are ctx.Err() or already wrap ErrHTMLConversion.
	body, err := d.converter.ToHTML(ctx, in.Markdown)
	if err != nil {
		return "", err
	}

	data := struct {
		Lang       string
		Title      string
		Stylesheet template.HTML
		Body       template.HTML
	}{
		Lang:  orDefault(in.Lang, DefaultDocumentLang),
		Title: orDefault(in.Title, DefaultDocumentTitle),
		// #nosec G203 -- markup produced by Stylesheet and goldmark without unsafe HTML
		Stylesheet: template.HTML(d.stylesheet.HTML()),
		Body:       template.HTML(body), // #nosec G203
	}

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}
	return buf.String(), nil
}

// InjectStylesheet mounts the variant's stylesheet in an existing HTML
// document: before </head>, else after <body>, else at the start.
// Documents that already contain the same stylesheet markup are returned
// unchanged, as is the input when ctx is done.
func InjectStylesheet(ctx context.Context, htmlContent string, v Variant) string {
	return pipeline.InjectHead(ctx, htmlContent, NewStylesheet(v).HTML())
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

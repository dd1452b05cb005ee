// Package materialsymbols renders Google Material Symbols icons as server-side
// HTML components.
//
// # Quick Start
//
// Mount the stylesheet once in the page head, then render icons anywhere:
//
//	head := materialsymbols.NewStylesheet(materialsymbols.Outlined)
//	icon := materialsymbols.NewIcon("home").
//	    WithSize(24).
//	    WithColor(materialsymbols.Dark)
//
//	_ = head.Render(ctx, w) // <link href="https://fonts.googleapis.com/icon?family=Material+Symbols+Outlined" rel="stylesheet">
//	_ = icon.Render(ctx, w) // <span class="material-symbols ..." style="font-size: 24px; ...">home</span>
//
// Both components implement templ.Component, so they can be used directly
// from templ templates.
//
// # Variants
//
// Outlined, Rounded and Sharp link the hosted Google Fonts stylesheet.
// SelfHosted inlines an @font-face rule that points at a font file you serve:
//
//	head := materialsymbols.NewStylesheet(
//	    materialsymbols.SelfHosted("/static/MaterialSymbolsRounded.woff2"),
//	)
//
// The zero Variant is Rounded.
//
// # Colors
//
// Dark, DarkInactive, Light and LightInactive follow the Material Design icon
// opacity guidelines. Custom accepts any CSS color value and is emitted
// verbatim. The zero Color leaves the color unset so the icon inherits it.
//
// # Markdown
//
// NewExtension adds an inline shortcode to goldmark:
//
//	md := goldmark.New(goldmark.WithExtensions(materialsymbols.NewExtension()))
//
//	Press :icon[save]{size=18 color=dark} to keep your changes.
//
// Document wraps the extension in a complete HTML page with the stylesheet
// already mounted:
//
//	doc := materialsymbols.NewDocument(materialsymbols.WithVariant(materialsymbols.Sharp))
//	page, err := doc.Render(ctx, materialsymbols.DocumentInput{Markdown: content})
//
// InjectStylesheet adds the stylesheet to HTML produced elsewhere.
package materialsymbols

// Package pipeline implements the HTML stages behind document rendering.
//
// It covers two concerns:
//   - Markdown to HTML fragment conversion via Goldmark, with GFM, footnotes,
//     syntax highlighting and caller-supplied extensions
//   - head injection: placing stylesheet markup into an existing document
//
// The icon components and their Markdown extension live in the root package,
// which plugs them into this pipeline.
package pipeline

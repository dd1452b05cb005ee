// Package assets provides the CSS and HTML templates embedded in the binary.
//
// # Layout
//
//	styles/
//	└── self-hosted.css     # @font-face template for self-hosted fonts
//	templates/
//	└── document.html       # standalone page wrapping rendered Markdown
//
// Styles are Go text templates with a single {{.Source}} slot; templates are
// html/template documents. Both are looked up by name without extension.
//
// # Security
//
// Asset names are validated to prevent path traversal before any lookup.
package assets

package materialsymbols

import (
	"errors"

	"github.com/alnah/go-materialsymbols/internal/pipeline"
)

// Sentinel errors for library operations.
//
// The Icon and Stylesheet components never fail on their input; these errors
// come from parsing configuration values and rendering documents.
var (
	// Variant parsing errors.
	ErrUnknownVariant = errors.New("unknown icon variant")
	ErrMissingSource  = errors.New("self-hosted variant requires a font source")

	// Document rendering errors.
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrDocumentRender = errors.New("document template rendering failed")
)

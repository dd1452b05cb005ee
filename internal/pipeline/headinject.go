package pipeline

import (
	"context"
	"strings"
)

// InjectHead inserts markup into the head of an HTML document.
// Tries before </head> first, then right after the <body> tag, then prepends.
// Content that already contains markup is returned unchanged, so a document
// never gets the same stylesheet twice.
func InjectHead(ctx context.Context, htmlContent, markup string) string {
	if markup == "" || ctx.Err() != nil {
		return htmlContent
	}
	if strings.Contains(htmlContent, markup) {
		return htmlContent
	}

	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + markup + htmlContent[idx:]
	}

	if idx := indexBodyTag(lowerHTML); idx != -1 {
		// Find the closing > of <body...>
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + markup + htmlContent[insertPos:]
		}
	}

	return markup + htmlContent
}

// indexBodyTag finds "<body" followed by '>' or whitespace, skipping
// look-alikes such as <bodyguard>.
func indexBodyTag(lowerHTML string) int {
	offset := 0
	for {
		idx := strings.Index(lowerHTML[offset:], "<body")
		if idx == -1 {
			return -1
		}
		pos := offset + idx
		next := pos + len("<body")
		if next >= len(lowerHTML) {
			return -1
		}
		switch lowerHTML[next] {
		case '>', ' ', '\t', '\n', '\r', '/':
			return pos
		}
		offset = next
	}
}

// SanitizeCSS escapes sequences that could break out of a <style> block.
func SanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

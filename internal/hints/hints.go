// Package hints provides actionable error hints for common CLI failures.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound suggests --config and, when one of the searched paths is
// under a user config directory, creating a file there.
func ForConfigNotFound(searchedPaths []string, appDir string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if appDir != "" && strings.Contains(p, appDir) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForVariant lists the accepted variant names.
func ForVariant(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForMissingSource explains how to point the self-hosted variant at a font file.
func ForMissingSource() string {
	return formatHints([]string{
		"pass --source path/to/MaterialSymbols.ttf or set variant.source",
		"font files: https://github.com/google/material-design-icons/tree/master/font",
	})
}

// ForShortcodes reminds the shortcode syntax for empty documents.
func ForShortcodes() string {
	return format("write Markdown with shortcodes such as :icon[home]{size=24}")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}

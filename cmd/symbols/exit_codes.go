package main

import (
	"errors"
	"os"

	symbols "github.com/alnah/go-materialsymbols"
	"github.com/alnah/go-materialsymbols/internal/config"
)

// Exit codes for the symbols CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, symbols.ErrUnknownVariant) ||
		errors.Is(err, symbols.ErrMissingSource) ||
		errors.Is(err, symbols.ErrEmptyMarkdown) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrMissingIconName) ||
		errors.Is(err, ErrWatchNeedsFile) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	return ExitGeneral
}

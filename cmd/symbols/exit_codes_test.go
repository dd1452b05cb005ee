package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	symbols "github.com/alnah/go-materialsymbols"
	"github.com/alnah/go-materialsymbols/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// Usage errors (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid config", config.ErrInvalidConfig, ExitUsage},
		{"unknown variant", symbols.ErrUnknownVariant, ExitUsage},
		{"missing source", symbols.ErrMissingSource, ExitUsage},
		{"empty markdown", symbols.ErrEmptyMarkdown, ExitUsage},
		{"unknown command", ErrUnknownCommand, ExitUsage},
		{"invalid flags", ErrInvalidFlags, ExitUsage},
		{"no input", ErrNoInput, ExitUsage},
		{"missing icon name", ErrMissingIconName, ExitUsage},
		{"wrapped config not found", fmt.Errorf("loading config: %w", config.ErrConfigNotFound), ExitUsage},

		// I/O errors (exit 3)
		{"not exist", os.ErrNotExist, ExitIO},
		{"permission", os.ErrPermission, ExitIO},
		{"read input", fmt.Errorf("%w: doc.md: %w", ErrReadInput, os.ErrNotExist), ExitIO},
		{"write output", ErrWriteOutput, ExitIO},

		// General errors (exit 1)
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"html conversion", symbols.ErrHTMLConversion, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Error("exit codes must follow Unix conventions")
	}
	if ExitIO >= 126 {
		t.Errorf("ExitIO = %d, custom codes must be below 126", ExitIO)
	}
}

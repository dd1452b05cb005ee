package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter("")

	tests := []struct {
		name        string
		input       string
		wantContain []string
		wantAbsent  []string
	}{
		{
			name:        "heading gets an id",
			input:       "# Hello World",
			wantContain: []string{`<h1 id="hello-world">Hello World</h1>`},
		},
		{
			name:        "GFM table",
			input:       "| a | b |\n|---|---|\n| 1 | 2 |",
			wantContain: []string{"<table>", "<td>1</td>"},
		},
		{
			name:        "strikethrough",
			input:       "~~gone~~",
			wantContain: []string{"<del>gone</del>"},
		},
		{
			name:        "fenced code is highlighted with inline styles",
			input:       "```go\nfunc main() {}\n```",
			wantContain: []string{"<pre", "style="},
		},
		{
			name:       "raw HTML is dropped",
			input:      "<script>alert(1)</script>",
			wantAbsent: []string{"<script>"},
		},
		{
			name:       "fragment has no document wrapper",
			input:      "text",
			wantAbsent: []string{"<html", "<body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ToHTML() unexpected error: %v", err)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML() should contain %q, got %q", want, got)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(got, absent) {
					t.Errorf("ToHTML() should not contain %q, got %q", absent, got)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ToHTML_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkConverter("").ToHTML(ctx, "# Title")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}

package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		paths       []string
		wantContain []string
		wantAbsent  string
	}{
		{
			name:        "suggests user config path",
			paths:       []string{"brand.yaml", "/home/u/.config/go-materialsymbols/brand.yaml"},
			wantContain: []string{"--config", "or create /home/u/.config/go-materialsymbols/brand.yaml"},
		},
		{
			name:        "no user path",
			paths:       []string{"brand.yaml"},
			wantContain: []string{"--config"},
			wantAbsent:  "or create",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths, "go-materialsymbols")
			if !strings.HasPrefix(hint, "\n  hint: ") {
				t.Errorf("hint %q should start with hint prefix", hint)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(hint, want) {
					t.Errorf("hint %q should contain %q", hint, want)
				}
			}
			if tt.wantAbsent != "" && strings.Contains(hint, tt.wantAbsent) {
				t.Errorf("hint %q should not contain %q", hint, tt.wantAbsent)
			}
		})
	}
}

func TestForVariant(t *testing.T) {
	t.Parallel()

	if got := ForVariant(nil); got != "" {
		t.Errorf("ForVariant(nil) = %q, want empty", got)
	}
	got := ForVariant([]string{"outlined", "sharp"})
	if got != "\n  hint: available: outlined, sharp" {
		t.Errorf("ForVariant() = %q", got)
	}
}

func TestForMissingSource(t *testing.T) {
	t.Parallel()

	hint := ForMissingSource()
	if !strings.Contains(hint, "--source") || !strings.Contains(hint, "; ") {
		t.Errorf("ForMissingSource() = %q, want joined hints mentioning --source", hint)
	}
	if strings.Count(hint, "hint:") != 1 {
		t.Errorf("ForMissingSource() = %q, want a single hint line", hint)
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	for _, hint := range []string{ForShortcodes(), ForOutputDirectory()} {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("hint %q should start with hint prefix", hint)
		}
	}
}

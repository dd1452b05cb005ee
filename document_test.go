package materialsymbols

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-materialsymbols/internal/pipeline"
)

func TestDocument_Render(t *testing.T) {
	t.Parallel()

	doc := NewDocument(WithVariant(SelfHosted("fonts/symbols.ttf")), WithIconDefaults(24, Dark))

	got, err := doc.Render(context.Background(), DocumentInput{
		Markdown: "# Settings\n\nOpen :icon[settings] then :icon[save]{color=blue}.",
		Title:    "Help & Tips",
		Lang:     "fr",
	})
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	wantContain := []string{
		"<!DOCTYPE html>",
		`<html lang="fr">`,
		"<title>Help &amp; Tips</title>",
		NewStylesheet(SelfHosted("fonts/symbols.ttf")).HTML(),
		`<h1 id="settings">Settings</h1>`,
		Icon{Name: "settings", Size: 24, Color: Dark}.HTML(),
		Icon{Name: "save", Size: 24, Color: Custom("blue")}.HTML(),
	}
	for _, want := range wantContain {
		if !strings.Contains(got, want) {
			t.Errorf("Render() should contain %q\ngot: %s", want, got)
		}
	}

	if n := strings.Count(got, "@font-face"); n != 1 {
		t.Errorf("stylesheet mounted %d times, want 1", n)
	}
	head := got[:strings.Index(got, "</head>")]
	if !strings.Contains(head, "<style>") {
		t.Error("stylesheet should be mounted in <head>")
	}
}

func TestDocument_RenderDefaults(t *testing.T) {
	t.Parallel()

	doc := NewDocument()
	if doc.Variant() != Rounded {
		t.Errorf("Variant() = %v, want rounded", doc.Variant())
	}

	got, err := doc.Render(context.Background(), DocumentInput{Markdown: ":icon[home]"})
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	for _, want := range []string{
		`<html lang="en">`,
		"<title>Document</title>",
		`<link href="https://fonts.googleapis.com/icon?family=Material+Symbols+Rounded" rel="stylesheet">`,
		NewIcon("home").HTML(),
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() should contain %q", want)
		}
	}
}

func TestDocument_RenderErrors(t *testing.T) {
	t.Parallel()

	doc := NewDocument()

	if _, err := doc.Render(context.Background(), DocumentInput{Markdown: " \n\t"}); !errors.Is(err, ErrEmptyMarkdown) {
		t.Errorf("Render(blank) error = %v, want ErrEmptyMarkdown", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := doc.Render(ctx, DocumentInput{Markdown: "# Title"}); !errors.Is(err, context.Canceled) {
		t.Errorf("Render(cancelled) error = %v, want context.Canceled", err)
	}
}

var errRenderFailed = errors.New("render failed")

var kindFailing = ast.NewNodeKind("Failing")

// failingNode is produced for every '%' and cannot be rendered.
type failingNode struct {
	ast.BaseInline
}

func (n *failingNode) Kind() ast.NodeKind { return kindFailing }

func (n *failingNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

type failingExtension struct{}

func (failingExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(util.Prioritized(failingExtension{}, 999)))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(util.Prioritized(failingExtension{}, 999)))
}

func (failingExtension) Trigger() []byte { return []byte{'%'} }

func (failingExtension) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	block.Advance(1)
	return &failingNode{}
}

func (failingExtension) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(kindFailing, func(util.BufWriter, []byte, ast.Node, bool) (ast.WalkStatus, error) {
		return ast.WalkStop, errRenderFailed
	})
}

func TestDocument_RenderConversionError(t *testing.T) {
	t.Parallel()

	doc := NewDocument(WithExtensions(failingExtension{}))

	_, err := doc.Render(context.Background(), DocumentInput{Markdown: "50% done"})
	if err == nil {
		t.Fatal("Render() error = nil, want conversion error")
	}
	for _, target := range []error{ErrHTMLConversion, pipeline.ErrHTMLConversion, errRenderFailed} {
		if !errors.Is(err, target) {
			t.Errorf("Render() error = %v, want it to wrap %v", err, target)
		}
	}
	if n := strings.Count(err.Error(), ErrHTMLConversion.Error()); n != 1 {
		t.Errorf("Render() error = %q, sentinel message appears %d times, want 1", err, n)
	}
}

func TestDocument_WithExtensionsKeepsShortcodes(t *testing.T) {
	t.Parallel()

	doc := NewDocument(WithExtensions(extension.DefinitionList))
	page, err := doc.Render(context.Background(), DocumentInput{Markdown: ":icon[home]\n\nHome\n: Start page\n"})
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if !strings.Contains(page, NewIcon("home").HTML()) {
		t.Error("page should contain the rendered shortcode")
	}
	if !strings.Contains(page, "<dl>") {
		t.Error("page should contain the definition list from the added extension")
	}
}

func TestInjectStylesheet(t *testing.T) {
	t.Parallel()

	page := "<html><head><title>T</title></head><body>" + NewIcon("home").HTML() + "</body></html>"
	link := NewStylesheet(Outlined).HTML()

	got := InjectStylesheet(context.Background(), page, Outlined)
	if !strings.Contains(got, link+"</head>") {
		t.Errorf("InjectStylesheet() = %q, want link before </head>", got)
	}

	again := InjectStylesheet(context.Background(), got, Outlined)
	if again != got {
		t.Errorf("second injection changed the document:\n%s\n%s", got, again)
	}
}

package materialsymbols

import (
	"bytes"
	"strconv"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Shortcode syntax: :icon[NAME] optionally followed by {size=N color=C}.
const (
	shortcodePrefix = ":icon["
	attrSize        = "size"
	attrColor       = "color"
)

// KindIcon is the goldmark node kind of an icon shortcode.
var KindIcon = ast.NewNodeKind("MaterialSymbol")

// IconNode is an inline goldmark node holding a parsed icon shortcode.
type IconNode struct {
	ast.BaseInline
	Icon Icon
}

// Kind implements ast.Node.
func (n *IconNode) Kind() ast.NodeKind {
	return KindIcon
}

// Dump implements ast.Node.
func (n *IconNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Name":  n.Icon.Name,
		"Style": n.Icon.Style(),
	}, nil)
}

// ExtensionOption configures the Markdown extension.
type ExtensionOption func(*iconExtension)

// WithDefaultSize sets the size of shortcodes that omit size=.
func WithDefaultSize(px int) ExtensionOption {
	return func(e *iconExtension) {
		e.defaults.Size = px
	}
}

// WithDefaultColor sets the color of shortcodes that omit color=.
func WithDefaultColor(c Color) ExtensionOption {
	return func(e *iconExtension) {
		e.defaults.Color = c
	}
}

type iconExtension struct {
	defaults Icon
}

// NewExtension returns a goldmark extension rendering icon shortcodes:
//
//	Press :icon[home] to go back.
//	:icon[warning]{size=32 color=#b00020}
//	:icon[info]{color="rgb(0, 90, 200)"}
//
// Attribute values containing spaces must be double-quoted.
// Malformed shortcodes are left as text. Rendered icons need a Stylesheet
// mounted in the page.
func NewExtension(opts ...ExtensionOption) goldmark.Extender {
	e := &iconExtension{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extend implements goldmark.Extender.
func (e *iconExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&iconParser{defaults: e.defaults}, 500),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&iconNodeRenderer{}, 500),
	))
}

type iconParser struct {
	defaults Icon
}

func (p *iconParser) Trigger() []byte {
	return []byte{':'}
}

func (p *iconParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, _ := block.PeekLine()
	icon, n, ok := parseShortcode(line, p.defaults)
	if !ok {
		return nil
	}
	block.Advance(n)
	return &IconNode{Icon: icon}
}

// parseShortcode parses a shortcode at the start of line. It returns the icon,
// the number of bytes consumed, and false when line does not start with a
// well-formed shortcode.
func parseShortcode(line []byte, defaults Icon) (Icon, int, bool) {
	if !bytes.HasPrefix(line, []byte(shortcodePrefix)) {
		return Icon{}, 0, false
	}
	rest := line[len(shortcodePrefix):]
	end := bytes.IndexByte(rest, ']')
	if end <= 0 {
		return Icon{}, 0, false
	}
	name := rest[:end]
	if bytes.ContainsAny(name, " \t\r\n[") {
		return Icon{}, 0, false
	}

	icon := defaults
	icon.Name = string(name)
	consumed := len(shortcodePrefix) + end + 1

	attrs := line[consumed:]
	if len(attrs) == 0 || attrs[0] != '{' {
		return icon, consumed, true
	}
	pairs, n, ok := parseAttrs(attrs)
	if !ok {
		return Icon{}, 0, false
	}
	for _, kv := range pairs {
		switch kv.key {
		case attrSize:
			size, err := strconv.Atoi(kv.value)
			if err != nil || size <= 0 {
				return Icon{}, 0, false
			}
			icon.Size = size
		case attrColor:
			icon.Color = ParseColor(kv.value)
		default:
			return Icon{}, 0, false
		}
	}
	return icon, consumed + n, true
}

type attr struct {
	key, value string
}

// parseAttrs parses a {key=value ...} block at the start of b and returns
// the pairs and the bytes consumed. A value in double quotes may contain
// spaces and braces; quotes cannot be escaped.
func parseAttrs(b []byte) ([]attr, int, bool) {
	var pairs []attr
	i := 1
	for {
		for i < len(b) && isAttrSpace(b[i]) {
			i++
		}
		if i >= len(b) {
			return nil, 0, false
		}
		if b[i] == '}' {
			return pairs, i + 1, true
		}

		eq := bytes.IndexByte(b[i:], '=')
		if eq <= 0 {
			return nil, 0, false
		}
		key := b[i : i+eq]
		if bytes.ContainsAny(key, " \t\r\n}\"") {
			return nil, 0, false
		}
		i += eq + 1

		var value []byte
		if i < len(b) && b[i] == '"' {
			end := bytes.IndexByte(b[i+1:], '"')
			if end < 0 {
				return nil, 0, false
			}
			value = b[i+1 : i+1+end]
			i += end + 2
			if i < len(b) && !isAttrSpace(b[i]) && b[i] != '}' {
				return nil, 0, false
			}
		} else {
			start := i
			for i < len(b) && !isAttrSpace(b[i]) && b[i] != '}' && b[i] != '"' {
				i++
			}
			value = b[start:i]
		}
		if len(value) == 0 {
			return nil, 0, false
		}
		pairs = append(pairs, attr{key: string(key), value: string(value)})
	}
}

func isAttrSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

type iconNodeRenderer struct{}

func (r *iconNodeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindIcon, r.renderIcon)
}

func (r *iconNodeRenderer) renderIcon(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*IconNode)
	if _, err := w.WriteString(n.Icon.HTML()); err != nil {
		return ast.WalkStop, err
	}
	return ast.WalkContinue, nil
}

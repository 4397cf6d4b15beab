// Package markdown renders blog post bodies (Markdown and MDX) to HTML.
package markdown

import (
	"bufio"
	"bytes"
	"html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/rotisserie/eris"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// DefaultCodeTheme is the chroma style used for fenced code blocks.
const DefaultCodeTheme = "github-dark"

// Heading is one entry of a rendered page's table of contents.
type Heading struct {
	Level int
	ID    string
	Text  string
}

// Result is the output of rendering a single document.
type Result struct {
	HTML string
	TOC  []Heading
}

// Options configures a Renderer.
type Options struct {
	CodeTheme string
	// Images, when set, supplies intrinsic sizes and blur placeholders for
	// local images referenced from Markdown.
	Images ImageResolver
}

// Renderer converts Markdown/MDX source into HTML. It is safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// New builds a Renderer with GFM, heading IDs and code highlighting enabled.
func New(opts Options) *Renderer {
	theme := opts.CodeTheme
	if theme == "" {
		theme = DefaultCodeTheme
	}
	parserOpts := []parser.Option{
		parser.WithAutoHeadingID(),
		parser.WithASTTransformers(util.Prioritized(linkTransformer{}, 200)),
	}
	if opts.Images != nil {
		parserOpts = append(parserOpts, parser.WithASTTransformers(
			util.Prioritized(&imageTransformer{images: opts.Images}, 100),
		))
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(theme),
				highlighting.WithFormatOptions(chromahtml.TabWidth(4)),
				highlighting.WithWrapperRenderer(codeWrapper),
			),
		),
		goldmark.WithParserOptions(parserOpts...),
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)
	return &Renderer{md: md}
}

// Render converts src to HTML and collects the table of contents.
func (r *Renderer) Render(src []byte) (Result, error) {
	src = StripModuleLines(src)
	doc := r.md.Parser().Parse(text.NewReader(src))

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, src, doc); err != nil {
		return Result{}, eris.Wrap(err, "render markdown")
	}
	return Result{HTML: buf.String(), TOC: collectTOC(doc, src)}, nil
}

// codeWrapper adds the language badge around highlighted fenced blocks.
func codeWrapper(w util.BufWriter, ctx highlighting.CodeBlockContext, entering bool) {
	lang, ok := ctx.Language()
	if !ok || len(lang) == 0 {
		return
	}
	if entering {
		escaped := html.EscapeString(string(lang))
		_, _ = w.WriteString(`<div class="code-block-wrapper"><span class="code-lang code-lang-` + escaped + `">` + escaped + `</span>`)
		return
	}
	_, _ = w.WriteString("</div>")
}

func collectTOC(doc ast.Node, src []byte) []Heading {
	var toc []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if h.Level < 2 || h.Level > 4 {
			return ast.WalkSkipChildren, nil
		}
		var id string
		if v, ok := h.AttributeString("id"); ok {
			if b, ok := v.([]byte); ok {
				id = string(b)
			}
		}
		toc = append(toc, Heading{Level: h.Level, ID: id, Text: nodeText(h, src)})
		return ast.WalkSkipChildren, nil
	})
	return toc
}

// nodeText concatenates the literal text below n.
func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// StripModuleLines removes top-level MDX `import` and `export` statements.
// Lines inside fenced code blocks are kept.
func StripModuleLines(src []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(src))
	inFence := false
	sc := bufio.NewScanner(bytes.NewReader(src))
	sc.Buffer(make([]byte, 0, 64*1024), len(src)+1)
	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
		}
		if !inFence && (strings.HasPrefix(line, "import ") || strings.HasPrefix(line, "export ")) {
			continue
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return out.Bytes()
}

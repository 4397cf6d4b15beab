package markdown

import (
	"html"
	"net/url"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// SafeURL returns raw when it is relative (including "#fragment") or uses
// the http, https, mailto or tel scheme, and "" otherwise.
func SafeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return val
	}
	parsed, err := url.Parse(val)
	if err != nil {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "", "http", "https", "mailto", "tel":
		return val
	default:
		return ""
	}
}

// linkTransformer neutralises link and image destinations SafeURL rejects.
// Raw HTML is passed through untouched; only Markdown syntax is checked.
type linkTransformer struct{}

func (linkTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	src := reader.Source()
	var autolinks []*ast.AutoLink
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Link:
			if len(n.Destination) > 0 && SafeURL(string(n.Destination)) == "" {
				n.Destination = []byte("#")
			}
		case *ast.Image:
			if len(n.Destination) > 0 && SafeURL(string(n.Destination)) == "" {
				n.Destination = nil
			}
		case *ast.AutoLink:
			if n.AutoLinkType == ast.AutoLinkURL && SafeURL(string(n.URL(src))) == "" {
				autolinks = append(autolinks, n)
			}
		}
		return ast.WalkContinue, nil
	})
	// replaced after the walk so the tree is not edited while it is traversed
	for _, n := range autolinks {
		if parent := n.Parent(); parent != nil {
			parent.ReplaceChild(parent, n, ast.NewString(n.Label(src)))
		}
	}
}

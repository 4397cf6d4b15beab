package markdown

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// ImageInfo describes a local image known to an ImageResolver.
type ImageInfo struct {
	Width       int
	Height      int
	BlurDataURL string
}

// ImageResolver looks up a site-relative image path such as /images/a.png.
// ok is false when the image is unknown or cannot be decoded.
type ImageResolver interface {
	ResolveImage(src string) (info ImageInfo, ok bool)
}

// ImageResolverFunc adapts a function to ImageResolver.
type ImageResolverFunc func(src string) (ImageInfo, bool)

// ResolveImage calls f(src).
func (f ImageResolverFunc) ResolveImage(src string) (ImageInfo, bool) {
	return f(src)
}

// imageTransformer sizes local images so the browser can reserve space
// before they load, and paints a blurred preview behind them.
type imageTransformer struct {
	images ImageResolver
}

func (t *imageTransformer) Transform(doc *ast.Document, _ text.Reader, _ parser.Context) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		img, ok := n.(*ast.Image)
		if !ok {
			return ast.WalkContinue, nil
		}
		dest := string(img.Destination)
		if !strings.HasPrefix(dest, "/") || strings.HasPrefix(dest, "//") {
			return ast.WalkContinue, nil
		}
		info, ok := t.images.ResolveImage(dest)
		if !ok {
			return ast.WalkContinue, nil
		}
		img.SetAttributeString("width", []byte(strconv.Itoa(info.Width)))
		img.SetAttributeString("height", []byte(strconv.Itoa(info.Height)))
		img.SetAttributeString("loading", []byte("lazy"))
		img.SetAttributeString("decoding", []byte("async"))
		if info.BlurDataURL != "" {
			img.SetAttributeString("style", []byte("background-size:cover;background-image:url("+info.BlurDataURL+")"))
		}
		return ast.WalkContinue, nil
	})
}

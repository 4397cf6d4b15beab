// Package scaffold provides the embedded templates used by `site new` to
// start a post.
package scaffold

import (
	"embed"
	"io"
	"strconv"
	"text/template"

	"github.com/rotisserie/eris"
)

// Templates contains all scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS

// Post holds the template variables for a new post.
type Post struct {
	Title       string
	PublishedOn string // YYYY-MM-DD
	Summary     string
	Tags        []string
	Draft       bool
}

var postTmpl = template.Must(template.New("post.mdx.tmpl").
	Funcs(template.FuncMap{"quote": strconv.Quote}).
	ParseFS(Templates, "templates/post.mdx.tmpl"))

// WritePost renders a new post file to w.
func WritePost(w io.Writer, p Post) error {
	return eris.Wrap(postTmpl.Execute(w, p), "render post template")
}

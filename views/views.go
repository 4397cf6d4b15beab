// Package views renders the site's pages from embedded HTML templates and
// exposes them as templ components through site.ViewFuncs.
package views

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"
	"github.com/rotisserie/eris"

	"github.com/namick/site"
	"github.com/namick/site/content"
)

//go:embed templates/*.html
var templateFS embed.FS

// shared holds the layout and partials every page template is parsed with.
var shared = []string{"templates/layout.html", "templates/partials.html"}

var pages = map[string]string{
	"home":     "templates/home.html",
	"blog":     "templates/blog.html",
	"article":  "templates/article.html",
	"docs":     "templates/docs.html",
	"notfound": "templates/notfound.html",
	"error":    "templates/error.html",
}

// Views holds the parsed page templates.
type Views struct {
	pages map[string]*template.Template
}

// data is the value every page template executes with. Page fields are
// promoted, so templates write {{.Meta.Title}} and {{.Tree}} directly.
type data struct {
	site.Page

	Recent    []*content.Post
	Intro     *content.Post
	Posts     []*content.Post
	ActiveTag string
	Tags      []string

	Post    *content.Post
	Hero    site.HeroImage
	Related []*content.Post
	Nav     site.DocsNav
}

// New parses the embedded templates.
func New() (*Views, error) {
	base, err := template.New("layout").Funcs(funcs).ParseFS(templateFS, shared...)
	if err != nil {
		return nil, eris.Wrap(err, "parse layout")
	}
	v := &Views{pages: make(map[string]*template.Template, len(pages))}
	for name, file := range pages {
		clone, err := base.Clone()
		if err != nil {
			return nil, eris.Wrapf(err, "clone layout for %s", name)
		}
		t, err := clone.ParseFS(templateFS, file)
		if err != nil {
			return nil, eris.Wrapf(err, "parse %s", file)
		}
		v.pages[name] = t
	}
	return v, nil
}

// Must is like New but panics on error. The templates are embedded, so a
// failure is a build defect.
func Must() *Views {
	v, err := New()
	if err != nil {
		panic(err)
	}
	return v
}

func (v *Views) component(name string, d data) templ.Component {
	t := v.pages[name]
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return eris.Wrapf(t.ExecuteTemplate(w, "layout", d), "render %s", name)
	})
}

// Funcs returns the view functions for site.New.
func (v *Views) Funcs() site.ViewFuncs {
	return site.ViewFuncs{
		Home: func(page site.Page, recent []*content.Post) templ.Component {
			return v.component("home", data{Page: page, Recent: recent})
		},
		BlogIndex: func(page site.Page, intro *content.Post, posts []*content.Post, activeTag string, tags []string) templ.Component {
			return v.component("blog", data{Page: page, Intro: intro, Posts: posts, ActiveTag: activeTag, Tags: tags})
		},
		Article: func(page site.Page, post *content.Post, hero site.HeroImage, related []*content.Post) templ.Component {
			return v.component("article", data{Page: page, Post: post, Hero: hero, Related: related})
		},
		Docs: func(page site.Page, post *content.Post, nav site.DocsNav) templ.Component {
			return v.component("docs", data{Page: page, Post: post, Nav: nav})
		},
		NotFound: func(page site.Page) templ.Component {
			return v.component("notfound", data{Page: page})
		},
		ServerError: func(page site.Page) templ.Component {
			return v.component("error", data{Page: page})
		},
	}
}

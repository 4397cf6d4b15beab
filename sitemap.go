package site

import (
	"encoding/xml"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/namick/site/content"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// staticPaths are the pages that exist regardless of content.
var staticPaths = []string{"/", BlogPath + "/"}

func (a *App) renderSitemap(c echo.Context, posts []*content.Post) error {
	base := a.Config.URL
	urls := make([]sitemapURL, 0, len(staticPaths)+len(posts))
	for _, p := range staticPaths {
		urls = append(urls, sitemapURL{Loc: BuildURL(base, p)})
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:     BuildURL(base, p.URL),
			LastMod: p.Date(),
		})
	}
	return renderXML(c, "application/xml; charset=utf-8", sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	})
}

// Paths returns every routable page path, sorted.
func (a *App) Paths() ([]string, error) {
	src, err := a.Cache.Source()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, p := range staticPaths {
		add(p)
	}
	for _, slugs := range src.GenerateParams() {
		if post, ok := src.GetPage(slugs); ok {
			add(post.URL)
		}
	}
	for _, p := range []string{"/feed.xml", "/sitemap.xml", "/robots.txt", "/theme.css"} {
		add(p)
	}
	sort.Strings(out)
	return out, nil
}

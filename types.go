package site

import "github.com/namick/site/content"

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string // absolute og:image URL, optional
}

// Page is the data every layout receives.
type Page struct {
	Meta     PageMeta
	SiteName string
	NavTitle string
	// Path is the request path, used to highlight the current tree entry.
	Path   string
	Tree   *content.Tree
	JSONLD string

	HTMLClass string
	FontsURL  string
}

// DocsNav links a docs page to the pages before and after it in tree order.
// Either side is nil at the ends.
type DocsNav struct {
	Prev *content.Node
	Next *content.Node
}

// NewDocsNav finds url among tree's pages and returns its neighbours.
func NewDocsNav(tree *content.Tree, url string) DocsNav {
	if tree == nil {
		return DocsNav{}
	}
	pages := tree.Pages()
	for i, n := range pages {
		if n.URL != url {
			continue
		}
		var nav DocsNav
		if i > 0 {
			nav.Prev = pages[i-1]
		}
		if i+1 < len(pages) {
			nav.Next = pages[i+1]
		}
		return nav
	}
	return DocsNav{}
}

// HeroImage is the banner shown above an article.
type HeroImage struct {
	Src         string
	Alt         string
	Width       int
	Height      int
	BlurDataURL string
}

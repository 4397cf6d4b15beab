// Package content discovers blog posts in a content directory, parses their
// frontmatter, renders their bodies, and builds the navigation tree.
package content

import (
	"path"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/namick/site/markdown"
)

// ErrNotFound is returned when no post matches a slug.
var ErrNotFound = eris.New("content: page not found")

// Layout names accepted in frontmatter.
const (
	LayoutArticle = "article"
	LayoutDocs    = "docs"
)

// Post is a single content page.
type Post struct {
	Slugs []string
	URL   string
	// Path is the source file path relative to the content root.
	Path string

	Title       string
	Description string
	Summary     string
	PublishedOn time.Time
	HeroImage   string
	Full        bool
	Layout      string
	Draft       bool
	Tags        []string

	HTML string
	TOC  []markdown.Heading
}

// HasDate reports whether the post carries a usable publish date.
func (p *Post) HasDate() bool {
	return !p.PublishedOn.IsZero()
}

// Date is the publish date as YYYY-MM-DD, or "" when missing.
func (p *Post) Date() string {
	if !p.HasDate() {
		return ""
	}
	return p.PublishedOn.Format("2006-01-02")
}

// Slug is the slug segments joined with "/".
func (p *Post) Slug() string {
	return strings.Join(p.Slugs, "/")
}

// IsDocs reports whether the post renders with the documentation layout.
func (p *Post) IsDocs() bool {
	return p.Layout == LayoutDocs || p.Full
}

// HeroImagePath is the public URL of the hero image, or "" when unset.
func (p *Post) HeroImagePath() string {
	if p.HeroImage == "" {
		return ""
	}
	return path.Join(HeroImageDir, p.HeroImage)
}

// HeroImageDir is the public directory holding post hero images.
const HeroImageDir = "/images/hero"

// frontMatter is the YAML header of a content file.
type frontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Summary     string   `yaml:"summary"`
	PublishedOn string   `yaml:"publishedOn"`
	HeroImage   string   `yaml:"heroImage"`
	Full        bool     `yaml:"full"`
	Layout      string   `yaml:"layout"`
	Draft       bool     `yaml:"draft"`
	Tags        []string `yaml:"tags"`
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"January 2, 2006",
}

// ParseDate parses a frontmatter date. ok is false for empty or
// unrecognised values.
func ParseDate(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

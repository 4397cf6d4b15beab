package site

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/namick/site/content"
)

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		case r == '\'' || r == '’':
			// "I'm" -> "im"
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash
// when any segment is given.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") && path.Ext(u.Path) == "" {
		u.Path += "/"
	}
	return u.String()
}

// SplitSlug splits a request path below /blog into unescaped slug segments.
func SplitSlug(raw string) ([]string, error) {
	raw = strings.Trim(raw, "/")
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, "/")
	out := parts[:0]
	for _, p := range parts {
		if p == "" {
			continue
		}
		s, err := url.PathUnescape(p)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// RelatedPosts finds posts that share at least one tag with current.
func RelatedPosts(current *content.Post, posts []*content.Post, limit int) []*content.Post {
	tagSet := make(map[string]struct{}, len(current.Tags))
	for _, t := range current.Tags {
		tagSet[t] = struct{}{}
	}
	var related []*content.Post
	for _, p := range posts {
		if p.URL == current.URL {
			continue
		}
		for _, t := range p.Tags {
			if _, ok := tagSet[t]; ok {
				related = append(related, p)
				break
			}
		}
		if limit > 0 && len(related) == limit {
			break
		}
	}
	return related
}

// JoinTags joins tags with ", ".
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// ldThing is a named schema.org entity such as a Person or Organization.
type ldThing struct {
	Type string `json:"@type"`
	Name string `json:"name,omitempty"`
	ID   string `json:"@id,omitempty"`
}

type ldWebSite struct {
	Context     string   `json:"@context"`
	Type        string   `json:"@type"`
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Description string   `json:"description,omitempty"`
	Author      *ldThing `json:"author,omitempty"`
}

type ldBlogPosting struct {
	Context          string   `json:"@context"`
	Type             string   `json:"@type"`
	Headline         string   `json:"headline"`
	Description      string   `json:"description,omitempty"`
	URL              string   `json:"url"`
	DatePublished    string   `json:"datePublished,omitempty"`
	Image            string   `json:"image,omitempty"`
	Keywords         string   `json:"keywords,omitempty"`
	MainEntityOfPage ldThing  `json:"mainEntityOfPage"`
	Author           *ldThing `json:"author,omitempty"`
	Publisher        *ldThing `json:"publisher,omitempty"`
}

const schemaContext = "https://schema.org"

func person(name string) *ldThing {
	if name == "" {
		return nil
	}
	return &ldThing{Type: "Person", Name: name}
}

func marshalLD(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// WebsiteJsonLD returns the WebSite JSON-LD for the home page.
func WebsiteJsonLD(cfg SiteConfig) string {
	return marshalLD(ldWebSite{
		Context:     schemaContext,
		Type:        "WebSite",
		Name:        cfg.Name,
		URL:         BuildURL(cfg.URL),
		Description: cfg.Description,
		Author:      person(cfg.Author),
	})
}

// BlogPostingJsonLD returns the BlogPosting JSON-LD for a post page.
// datePublished is omitted for undated posts.
func BlogPostingJsonLD(post *content.Post, cfg SiteConfig) string {
	postURL := BuildURL(cfg.URL, post.URL)
	ld := ldBlogPosting{
		Context:          schemaContext,
		Type:             "BlogPosting",
		Headline:         post.Title,
		Description:      post.Description,
		URL:              postURL,
		DatePublished:    post.Date(),
		Keywords:         JoinTags(post.Tags),
		MainEntityOfPage: ldThing{Type: "WebPage", ID: postURL},
		Author:           person(cfg.Author),
	}
	if hero := post.HeroImagePath(); hero != "" {
		ld.Image = BuildURL(cfg.URL, hero)
	}
	if cfg.Name != "" {
		ld.Publisher = &ldThing{Type: "Organization", Name: cfg.Name}
	}
	return marshalLD(ld)
}

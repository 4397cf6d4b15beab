package content

import (
	"bytes"
	"io/fs"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/namick/site/markdown"
)

var contentExts = []string{".mdx", ".md"}

var metaFiles = map[string]bool{"meta.json": true, "meta.yaml": true, "meta.yml": true}

// Renderer converts a post body to HTML.
type Renderer interface {
	Render(src []byte) (markdown.Result, error)
}

// Options configures Load.
type Options struct {
	// FS is the content root, e.g. os.DirFS("content/blog").
	FS fs.FS
	// BasePath is the URL prefix of every page (default "/blog").
	BasePath string
	Renderer Renderer
	// IncludeDrafts keeps posts marked draft: true.
	IncludeDrafts bool
	// RootName names the tree when the root folder has no meta title.
	RootName string
}

// Source is an immutable snapshot of the content directory.
type Source struct {
	posts  []*Post
	index  *Post
	bySlug map[string]*Post
	tree   *Tree
	tags   []string
}

// Load walks opts.FS, parses every .md/.mdx file and builds the page tree.
func Load(opts Options) (*Source, error) {
	if opts.FS == nil {
		return nil, eris.New("content: FS is required")
	}
	if opts.Renderer == nil {
		opts.Renderer = markdown.New(markdown.Options{})
	}
	base := "/" + strings.Trim(opts.BasePath, "/")
	if opts.BasePath == "" {
		base = "/blog"
	}

	root := newFolder("")
	folders := map[string]*folder{".": root}
	src := &Source{bySlug: make(map[string]*Post)}

	err := fs.WalkDir(opts.FS, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return eris.Wrapf(walkErr, "walk %s", p)
		}
		if p == "." {
			return nil
		}
		name := d.Name()
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		parent := folders[path.Dir(p)]
		if parent == nil {
			return nil
		}
		if d.IsDir() {
			f := newFolder(name)
			parent.folders[name] = f
			folders[p] = f
			return nil
		}
		if metaFiles[name] {
			return readMeta(opts.FS, p, &parent.meta)
		}
		ext := contentExt(name)
		if ext == "" {
			return nil
		}
		post, err := parseFile(opts.FS, p, ext, base, opts.Renderer)
		if err != nil {
			return err
		}
		if post.Draft && !opts.IncludeDrafts {
			return nil
		}
		if prev, clash := src.bySlug[post.Slug()]; clash {
			return eris.Errorf("%s and %s both map to %s", prev.Path, post.Path, post.URL)
		}
		stem := strings.TrimSuffix(name, ext)
		if stem == "index" {
			parent.index = post
			if parent == root {
				src.index = post
			}
		} else {
			parent.pages[stem] = post
		}
		if parent != root || stem != "index" {
			src.posts = append(src.posts, post)
		}
		src.bySlug[post.Slug()] = post
		return nil
	})
	if err != nil {
		return nil, err
	}

	treeName := root.meta.Title
	if treeName == "" {
		treeName = opts.RootName
	}
	if treeName == "" {
		treeName = "Blog"
	}
	if src.index != nil && src.index.Title == "" {
		src.index.Title = treeName
	}
	src.tree = &Tree{Name: treeName, Children: root.children()}

	SortByPublished(src.posts)
	src.tags = collectTags(src.posts)
	return src, nil
}

func contentExt(name string) string {
	for _, ext := range contentExts {
		if strings.HasSuffix(name, ext) {
			return ext
		}
	}
	return ""
}

func readMeta(fsys fs.FS, p string, meta *folderMeta) error {
	raw, err := fs.ReadFile(fsys, p)
	if err != nil {
		return eris.Wrapf(err, "read %s", p)
	}
	if err := yaml.Unmarshal(raw, meta); err != nil {
		return eris.Wrapf(err, "parse %s", p)
	}
	return nil
}

func parseFile(fsys fs.FS, p, ext, base string, r Renderer) (*Post, error) {
	raw, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, eris.Wrapf(err, "read %s", p)
	}
	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return nil, eris.Wrapf(err, "parse frontmatter of %s", p)
	}
	rendered, err := r.Render(body)
	if err != nil {
		return nil, eris.Wrapf(err, "render %s", p)
	}

	slugs := strings.Split(strings.TrimSuffix(p, ext), "/")
	if slugs[len(slugs)-1] == "index" {
		slugs = slugs[:len(slugs)-1]
	}

	post := &Post{
		Slugs:       slugs,
		URL:         pageURL(base, slugs),
		Path:        p,
		Title:       strings.TrimSpace(fm.Title),
		Description: strings.TrimSpace(fm.Description),
		Summary:     strings.TrimSpace(fm.Summary),
		HeroImage:   strings.Trim(strings.TrimSpace(fm.HeroImage), "/"),
		Full:        fm.Full,
		Layout:      strings.ToLower(strings.TrimSpace(fm.Layout)),
		Draft:       fm.Draft,
		Tags:        normalizeTags(fm.Tags),
		HTML:        rendered.HTML,
		TOC:         rendered.TOC,
	}
	if t, ok := ParseDate(fm.PublishedOn); ok {
		post.PublishedOn = t
	}
	if post.Title == "" && len(slugs) > 0 {
		post.Title = titleFromName(slugs[len(slugs)-1])
	}
	if post.Description == "" {
		post.Description = post.Summary
	}
	return post, nil
}

func pageURL(base string, slugs []string) string {
	escaped := make([]string, len(slugs))
	for i, s := range slugs {
		escaped[i] = url.PathEscape(s)
	}
	u := path.Join(append([]string{base}, escaped...)...)
	return strings.TrimSuffix(u, "/") + "/"
}

func normalizeTags(tags []string) []string {
	var out []string
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func collectTags(posts []*Post) []string {
	set := make(map[string]struct{})
	for _, p := range posts {
		for _, t := range p.Tags {
			set[t] = struct{}{}
		}
	}
	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// Pages returns every post, newest first. The root index page is not
// included; see Index.
func (s *Source) Pages() []*Post {
	out := make([]*Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Index returns the root index page, if the content root has one.
func (s *Source) Index() (*Post, bool) {
	return s.index, s.index != nil
}

// GetPage looks a post up by its slug segments.
func (s *Source) GetPage(slugs []string) (*Post, bool) {
	p, ok := s.bySlug[strings.Join(slugs, "/")]
	return p, ok
}

// PageTree returns the navigation tree.
func (s *Source) PageTree() *Tree {
	return s.tree
}

// GenerateParams returns the slug segments of every routable page,
// including the root index page (an empty slice) when present.
func (s *Source) GenerateParams() [][]string {
	params := make([][]string, 0, len(s.bySlug))
	for _, p := range s.bySlug {
		params = append(params, append([]string(nil), p.Slugs...))
	}
	sort.Slice(params, func(i, j int) bool {
		return strings.Join(params[i], "/") < strings.Join(params[j], "/")
	})
	return params
}

// Tags returns every tag in use, lowercase and sorted.
func (s *Source) Tags() []string {
	return append([]string(nil), s.tags...)
}

// PostsByTag returns the posts carrying tag, newest first.
func (s *Source) PostsByTag(tag string) []*Post {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return s.Pages()
	}
	var out []*Post
	for _, p := range s.posts {
		for _, t := range p.Tags {
			if t == tag {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

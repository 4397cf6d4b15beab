package content

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NodeType distinguishes page tree entries.
type NodeType string

const (
	NodePage      NodeType = "page"
	NodeFolder    NodeType = "folder"
	NodeSeparator NodeType = "separator"
)

// Node is one entry in the navigation tree.
type Node struct {
	Type NodeType
	Name string
	// URL is set for pages, and for folders that have an index page.
	URL         string
	DefaultOpen bool
	Children    []*Node
}

// Contains reports whether url is this node or one of its descendants.
func (n *Node) Contains(url string) bool {
	if n.URL != "" && n.URL == url {
		return true
	}
	for _, c := range n.Children {
		if c.Contains(url) {
			return true
		}
	}
	return false
}

// Tree is the navigation structure generated from the content directory.
type Tree struct {
	Name     string
	Children []*Node
}

// Pages returns every page node in display order, depth first.
func (t *Tree) Pages() []*Node {
	var out []*Node
	var walk func([]*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			if n.Type == NodePage || (n.Type == NodeFolder && n.URL != "") {
				out = append(out, n)
			}
			walk(n.Children)
		}
	}
	walk(t.Children)
	return out
}

// folderMeta is the optional meta.json / meta.yaml file of a folder.
type folderMeta struct {
	Title       string   `yaml:"title"`
	Pages       []string `yaml:"pages"`
	DefaultOpen bool     `yaml:"defaultOpen"`
}

const restMarker = "..."

// folder accumulates one directory of the content tree during loading.
type folder struct {
	name    string
	meta    folderMeta
	index   *Post
	pages   map[string]*Post
	folders map[string]*folder
}

func newFolder(name string) *folder {
	return &folder{
		name:    name,
		pages:   make(map[string]*Post),
		folders: make(map[string]*folder),
	}
}

func (f *folder) title() string {
	switch {
	case f.meta.Title != "":
		return f.meta.Title
	case f.index != nil && f.index.Title != "":
		return f.index.Title
	default:
		return titleFromName(f.name)
	}
}

func (f *folder) node() *Node {
	n := &Node{
		Type:        NodeFolder,
		Name:        f.title(),
		DefaultOpen: f.meta.DefaultOpen,
		Children:    f.children(),
	}
	if f.index != nil {
		n.URL = f.index.URL
	}
	return n
}

// children lists the folder's entries, honouring meta.pages when present.
func (f *folder) children() []*Node {
	names := make([]string, 0, len(f.pages)+len(f.folders))
	entries := make(map[string]*Node, cap(names))
	for name, p := range f.pages {
		names = append(names, name)
		entries[name] = &Node{Type: NodePage, Name: p.Title, URL: p.URL}
	}
	for name, sub := range f.folders {
		n := sub.node()
		if n.URL == "" && len(n.Children) == 0 {
			continue
		}
		if _, clash := entries[name]; clash {
			// a page and a folder share a name; the folder wins
			names = removeString(names, name)
		}
		names = append(names, name)
		entries[name] = n
	}
	sort.Strings(names)

	if len(f.meta.Pages) == 0 {
		out := make([]*Node, 0, len(names))
		for _, name := range names {
			out = append(out, entries[name])
		}
		return out
	}

	listed := make(map[string]bool, len(f.meta.Pages))
	for _, item := range f.meta.Pages {
		if item != restMarker && !isSeparator(item) {
			listed[entryName(item)] = true
		}
	}
	var out []*Node
	for _, item := range f.meta.Pages {
		switch {
		case item == restMarker:
			for _, name := range names {
				if !listed[name] {
					out = append(out, entries[name])
				}
			}
		case isSeparator(item):
			out = append(out, &Node{Type: NodeSeparator, Name: strings.Trim(item, "-")})
		default:
			if n, ok := entries[entryName(item)]; ok {
				out = append(out, n)
			}
		}
	}
	return out
}

func isSeparator(item string) bool {
	return len(item) >= 6 && strings.HasPrefix(item, "---") && strings.HasSuffix(item, "---")
}

// entryName strips a content extension from a meta.pages item.
func entryName(item string) string {
	for _, ext := range contentExts {
		item = strings.TrimSuffix(item, ext)
	}
	return strings.Trim(item, "/")
}

func removeString(vals []string, s string) []string {
	out := vals[:0]
	for _, v := range vals {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}

// titleFromName turns a file or directory name into a display title,
// e.g. "writing-hooks_simplified" -> "Writing Hooks Simplified".
func titleFromName(name string) string {
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return cases.Title(language.English).String(strings.TrimSpace(name))
}

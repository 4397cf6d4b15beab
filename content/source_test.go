package content

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func file(s string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(s)}
}

func fixture() fstest.MapFS {
	return fstest.MapFS{
		"index.mdx": file("---\nsummary: Things I write about code.\n---\nWelcome.\n"),
		"writing-hooks-simplified.mdx": file(`---
title: Writing Hooks, Simplified
summary: A gentle introduction.
publishedOn: 2024-03-10
heroImage: hooks.png
tags: [React, hooks]
---
import { ClickableFonts } from './components/clickable-fonts'

## Why hooks

Hooks are functions.
`),
		"clickable-fonts.md": file("---\ntitle: Clickable Fonts\npublishedOn: 2023-11-02\ntags: [css]\n---\nFonts.\n"),
		"no-date.md":         file("# Just words\n"),
		"draft-post.md":      file("---\ntitle: Secret\npublishedOn: 2025-01-01\ndraft: true\n---\nNot yet.\n"),
		"guides/index.md":    file("---\ntitle: Guides\npublishedOn: 2022-01-01\n---\nAll guides.\n"),
		"guides/go-setup.md": file("---\ntitle: Go Setup\npublishedOn: 2022-05-05\nlayout: docs\ntags: [go]\n---\n## Install\n"),
		"guides/meta.json":   file(`{"title": "Field Guides", "defaultOpen": true}`),
		"components/clickable-fonts.jsx": file("export function ClickableFonts() {}"),
		"_hidden/skip.md":                file("---\ntitle: Hidden\n---\n"),
		".drafts/skip.md":                file("---\ntitle: Hidden\n---\n"),
	}
}

func TestLoad_ParsesFrontmatterAndBody(t *testing.T) {
	src, err := Load(Options{FS: fixture()})
	require.NoError(t, err)

	post, ok := src.GetPage([]string{"writing-hooks-simplified"})
	require.True(t, ok)
	assert.Equal(t, "Writing Hooks, Simplified", post.Title)
	assert.Equal(t, "A gentle introduction.", post.Summary)
	assert.Equal(t, "A gentle introduction.", post.Description, "description falls back to summary")
	assert.Equal(t, "2024-03-10", post.Date())
	assert.Equal(t, "/images/hero/hooks.png", post.HeroImagePath())
	assert.Equal(t, []string{"react", "hooks"}, post.Tags)
	assert.Equal(t, "/blog/writing-hooks-simplified/", post.URL)
	assert.Equal(t, "writing-hooks-simplified.mdx", post.Path)
	assert.Contains(t, post.HTML, `<h2 id="why-hooks">Why hooks</h2>`)
	assert.NotContains(t, post.HTML, "import {")
	require.Len(t, post.TOC, 1)
	assert.Equal(t, "why-hooks", post.TOC[0].ID)
	assert.False(t, post.IsDocs())
}

func TestLoad_TitleFallsBackToFileName(t *testing.T) {
	src, err := Load(Options{FS: fixture()})
	require.NoError(t, err)

	post, ok := src.GetPage([]string{"no-date"})
	require.True(t, ok)
	assert.Equal(t, "No Date", post.Title)
	assert.False(t, post.HasDate())
	assert.Equal(t, "", post.Date())
}

func TestLoad_PagesNewestFirstWithoutRootIndexOrDrafts(t *testing.T) {
	src, err := Load(Options{FS: fixture()})
	require.NoError(t, err)

	// walk order: clickable-fonts, guides/go-setup, guides/index, no-date, writing-hooks
	// no-date holds index 3; the dated run before it is sorted.
	assert.Equal(t, []string{
		"clickable-fonts",
		"guides/go-setup",
		"guides",
		"no-date",
		"writing-hooks-simplified",
	}, slugs(src.Pages()))

	_, ok := src.GetPage([]string{"draft-post"})
	assert.False(t, ok, "drafts are not routable by default")

	idx, ok := src.Index()
	require.True(t, ok)
	assert.Equal(t, "/blog/", idx.URL)
	assert.Equal(t, "Blog", idx.Title)
}

func TestLoad_IncludeDrafts(t *testing.T) {
	src, err := Load(Options{FS: fixture(), IncludeDrafts: true})
	require.NoError(t, err)

	post, ok := src.GetPage([]string{"draft-post"})
	require.True(t, ok)
	assert.True(t, post.Draft)
	assert.Equal(t, "draft-post", src.Pages()[0].Slug(), "newest dated post leads the first run")
}

func TestLoad_SkipsHiddenAndNonContentFiles(t *testing.T) {
	src, err := Load(Options{FS: fixture()})
	require.NoError(t, err)

	for _, params := range src.GenerateParams() {
		assert.NotContains(t, params, "_hidden")
		assert.NotContains(t, params, ".drafts")
		assert.NotContains(t, params, "components")
	}
}

func TestLoad_NestedIndexAndLayout(t *testing.T) {
	src, err := Load(Options{FS: fixture(), BasePath: "/writing/"})
	require.NoError(t, err)

	guides, ok := src.GetPage([]string{"guides"})
	require.True(t, ok)
	assert.Equal(t, "/writing/guides/", guides.URL)

	setup, ok := src.GetPage([]string{"guides", "go-setup"})
	require.True(t, ok)
	assert.True(t, setup.IsDocs())
	assert.Equal(t, "/writing/guides/go-setup/", setup.URL)
}

func TestLoad_PageTree(t *testing.T) {
	src, err := Load(Options{FS: fixture()})
	require.NoError(t, err)

	tree := src.PageTree()
	assert.Equal(t, "Blog", tree.Name)
	require.Len(t, tree.Children, 4)

	names := make([]string, len(tree.Children))
	for i, n := range tree.Children {
		names[i] = n.Name
	}
	assert.Equal(t, []string{"Clickable Fonts", "Field Guides", "No Date", "Writing Hooks, Simplified"}, names)

	guides := tree.Children[1]
	assert.Equal(t, NodeFolder, guides.Type)
	assert.True(t, guides.DefaultOpen)
	assert.Equal(t, "/blog/guides/", guides.URL)
	require.Len(t, guides.Children, 1)
	assert.Equal(t, "Go Setup", guides.Children[0].Name)
	assert.True(t, guides.Contains("/blog/guides/go-setup/"))
	assert.False(t, guides.Contains("/blog/no-date/"))

	assert.Len(t, tree.Pages(), 5)
}

func TestLoad_MetaPagesOrderingWithSeparatorAndRest(t *testing.T) {
	fsys := fstest.MapFS{
		"meta.yaml": file("title: Notes\npages:\n  - zebra\n  - \"---Archive---\"\n  - ...\n"),
		"alpha.md":  file("# a\n"),
		"beta.md":   file("# b\n"),
		"zebra.mdx": file("# z\n"),
	}
	src, err := Load(Options{FS: fsys})
	require.NoError(t, err)

	tree := src.PageTree()
	assert.Equal(t, "Notes", tree.Name)
	require.Len(t, tree.Children, 4)
	assert.Equal(t, "Zebra", tree.Children[0].Name)
	assert.Equal(t, NodeSeparator, tree.Children[1].Type)
	assert.Equal(t, "Archive", tree.Children[1].Name)
	assert.Equal(t, "Alpha", tree.Children[2].Name)
	assert.Equal(t, "Beta", tree.Children[3].Name)
}

func TestLoad_MetaPagesWithoutRestOmitsUnlisted(t *testing.T) {
	fsys := fstest.MapFS{
		"meta.json": file(`{"pages": ["beta.md"]}`),
		"alpha.md":  file("# a\n"),
		"beta.md":   file("# b\n"),
	}
	src, err := Load(Options{FS: fsys})
	require.NoError(t, err)

	require.Len(t, src.PageTree().Children, 1)
	assert.Equal(t, "Beta", src.PageTree().Children[0].Name)

	_, ok := src.GetPage([]string{"alpha"})
	assert.True(t, ok, "unlisted pages stay routable")
}

func TestLoad_TagsAndFilter(t *testing.T) {
	src, err := Load(Options{FS: fixture()})
	require.NoError(t, err)

	assert.Equal(t, []string{"css", "go", "hooks", "react"}, src.Tags())
	assert.Equal(t, []string{"writing-hooks-simplified"}, slugs(src.PostsByTag("REACT")))
	assert.Empty(t, src.PostsByTag("rust"))
	assert.Len(t, src.PostsByTag(""), len(src.Pages()))
}

func TestLoad_GenerateParams(t *testing.T) {
	src, err := Load(Options{FS: fixture()})
	require.NoError(t, err)

	params := src.GenerateParams()
	require.Len(t, params, 6)
	assert.Empty(t, params[0], "root index sorts first")
	assert.Equal(t, []string{"clickable-fonts"}, params[1])
	assert.Equal(t, []string{"guides"}, params[2])
	assert.Equal(t, []string{"guides", "go-setup"}, params[3])
}

func TestLoad_BrokenFrontmatterNamesFile(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.md": file("---\ntitle: [unclosed\n---\nbody\n"),
	}
	_, err := Load(Options{FS: fsys})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.md")
}

func TestLoad_RequiresFS(t *testing.T) {
	_, err := Load(Options{})
	require.Error(t, err)
}

func TestLoad_SlugCollisionNamesBothFiles(t *testing.T) {
	tests := []struct {
		name  string
		fsys  fstest.MapFS
		paths []string
	}{
		{
			name: "md and mdx",
			fsys: fstest.MapFS{
				"foo.md":  file("# a\n"),
				"foo.mdx": file("# b\n"),
			},
			paths: []string{"foo.md", "foo.mdx"},
		},
		{
			name: "page and folder index",
			fsys: fstest.MapFS{
				"foo.mdx":       file("# a\n"),
				"foo/index.mdx": file("# b\n"),
			},
			paths: []string{"foo.mdx", "foo/index.mdx"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(Options{FS: tt.fsys})
			require.Error(t, err)
			for _, p := range tt.paths {
				assert.Contains(t, err.Error(), p)
			}
			assert.Contains(t, err.Error(), "/blog/foo/")
		})
	}
}

func TestLoad_DraftDoesNotCollide(t *testing.T) {
	fsys := fstest.MapFS{
		"foo.md":  file("---\ndraft: true\n---\nold\n"),
		"foo.mdx": file("# foo\n"),
	}
	src, err := Load(Options{FS: fsys})
	require.NoError(t, err)
	require.Len(t, src.Pages(), 1)
	assert.Equal(t, "foo.mdx", src.Pages()[0].Path)
}

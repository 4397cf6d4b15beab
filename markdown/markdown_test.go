package markdown

import (
	"strings"
	"testing"
)

func render(t *testing.T, r *Renderer, src string) Result {
	t.Helper()
	res, err := r.Render([]byte(src))
	if err != nil {
		t.Fatalf("Render(%q) failed: %v", src, err)
	}
	return res
}

func TestRenderHeadingsGetIDs(t *testing.T) {
	r := New(Options{})
	tests := []struct {
		input    string
		expected string
	}{
		{"# Heading 1", `<h1 id="heading-1">Heading 1</h1>`},
		{"## Heading 2", `<h2 id="heading-2">Heading 2</h2>`},
		{"### Heading 3", `<h3 id="heading-3">Heading 3</h3>`},
	}
	for _, tt := range tests {
		got := render(t, r, tt.input).HTML
		if !strings.Contains(got, tt.expected) {
			t.Errorf("Render(%q) = %q, want it to contain %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderTableOfContents(t *testing.T) {
	r := New(Options{})
	res := render(t, r, "# Title\n\n## First\n\ntext\n\n### Second `code`\n\n##### Too deep\n")

	if len(res.TOC) != 2 {
		t.Fatalf("TOC = %+v, want 2 entries", res.TOC)
	}
	if res.TOC[0].Level != 2 || res.TOC[0].ID != "first" || res.TOC[0].Text != "First" {
		t.Errorf("TOC[0] = %+v", res.TOC[0])
	}
	if res.TOC[1].Level != 3 || res.TOC[1].Text != "Second code" {
		t.Errorf("TOC[1] = %+v", res.TOC[1])
	}
}

func TestRenderCodeBlockWithLanguage(t *testing.T) {
	r := New(Options{})
	got := render(t, r, "```go\nfmt.Println(\"hello\")\n```\n").HTML

	if !strings.Contains(got, `<div class="code-block-wrapper">`) {
		t.Errorf("code block should be wrapped in div: %q", got)
	}
	if !strings.Contains(got, `<span class="code-lang code-lang-go">go</span>`) {
		t.Errorf("code block should have language badge: %q", got)
	}
	if !strings.Contains(got, "<pre") || !strings.Contains(got, "Println") {
		t.Errorf("code block missing highlighted content: %q", got)
	}
	if !strings.HasSuffix(strings.TrimSpace(got), "</div>") {
		t.Errorf("wrapper div should be closed: %q", got)
	}
}

func TestRenderCodeBlockWithoutLanguage(t *testing.T) {
	r := New(Options{})
	got := render(t, r, "```\nplain code\n```\n").HTML
	if strings.Contains(got, "code-lang") || strings.Contains(got, "code-block-wrapper") {
		t.Errorf("code block without language should not have badge: %q", got)
	}
	if !strings.Contains(got, "plain code") {
		t.Errorf("code block missing content: %q", got)
	}
}

func TestRenderGFMTable(t *testing.T) {
	r := New(Options{})
	got := render(t, r, "| a | b |\n|---|---|\n| 1 | 2 |\n").HTML
	if !strings.Contains(got, "<table>") || !strings.Contains(got, "<td>1</td>") {
		t.Errorf("expected GFM table: %q", got)
	}
}

func TestRenderPassesRawHTML(t *testing.T) {
	r := New(Options{})
	got := render(t, r, "<iframe src=\"https://codesandbox.io/embed/x\"></iframe>\n").HTML
	if !strings.Contains(got, "<iframe") {
		t.Errorf("raw HTML should pass through: %q", got)
	}
}

func TestRenderSizesLocalImages(t *testing.T) {
	var asked []string
	r := New(Options{Images: ImageResolverFunc(func(src string) (ImageInfo, bool) {
		asked = append(asked, src)
		if src != "/images/a.png" {
			return ImageInfo{}, false
		}
		return ImageInfo{Width: 40, Height: 20, BlurDataURL: "data:image/png;base64,AAAA"}, true
	})})

	got := render(t, r, "![a](/images/a.png)\n\n![b](https://example.com/b.png)\n\n![c](/images/missing.png)\n").HTML

	if !strings.Contains(got, `width="40"`) || !strings.Contains(got, `height="20"`) {
		t.Errorf("local image should be sized: %q", got)
	}
	if !strings.Contains(got, "data:image/png;base64,AAAA") {
		t.Errorf("local image should carry blur placeholder: %q", got)
	}
	if strings.Count(got, `loading="lazy"`) != 1 {
		t.Errorf("only the resolved image should be lazy: %q", got)
	}
	if len(asked) != 2 {
		t.Errorf("resolver asked %v, want only the two local images", asked)
	}
}

func TestStripModuleLines(t *testing.T) {
	input := "import { Grid } from './grid'\nexport const meta = {}\n\n# Title\n\n```js\nimport x from 'y'\n```\n"
	got := string(StripModuleLines([]byte(input)))

	if strings.Contains(got, "./grid") || strings.Contains(got, "export const") {
		t.Errorf("module lines should be stripped: %q", got)
	}
	if !strings.Contains(got, "import x from 'y'") {
		t.Errorf("lines inside code fences must be kept: %q", got)
	}
	if !strings.Contains(got, "# Title") {
		t.Errorf("body lost: %q", got)
	}
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/blog/post", "/blog/post"},
		{"#section", "#section"},
		{"../guides/setup/", "../guides/setup/"},
		{"https://example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"mailto:a@b.c", "mailto:a@b.c"},
		{"tel:+123", "tel:+123"},
		{"/a?b=1&amp;c=2", "/a?b=1&c=2"},
		{"javascript:alert(1)", ""},
		{"JavaScript:alert(1)", ""},
		{"javascript&#58;alert(1)", ""},
		{"data:text/html;base64,abc", ""},
		{"vbscript:msgbox", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SafeURL(tt.input); got != tt.expected {
			t.Errorf("SafeURL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderDropsUnsafeLinkAndImageURLs(t *testing.T) {
	r := New(Options{})
	got := render(t, r, "[click](javascript:alert(1))\n\n![x](javascript:alert(2))\n\n<javascript:alert(3)>\n").HTML

	if strings.Contains(got, `href="javascript:`) || strings.Contains(got, `src="javascript:`) {
		t.Errorf("unsafe URL survived: %q", got)
	}
	if !strings.Contains(got, `<a href="#">click</a>`) {
		t.Errorf("unsafe link should point at #: %q", got)
	}
	if !strings.Contains(got, `<img src="" alt="x"`) {
		t.Errorf("unsafe image should lose its src: %q", got)
	}
}

func TestRenderKeepsSafeLinks(t *testing.T) {
	r := New(Options{})
	got := render(t, r, "[home](/) [top](#intro) [mail](mailto:a@b.c) [site](https://example.com/x?a=1)\n").HTML

	for _, want := range []string{`href="/"`, `href="#intro"`, `href="mailto:a@b.c"`, `href="https://example.com/x?a=1"`} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %s in %q", want, got)
		}
	}
}

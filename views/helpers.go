package views

import (
	"html/template"
	"strings"
	"time"

	"github.com/namick/site"
)

var funcs = template.FuncMap{
	"raw":        func(s string) template.HTML { return template.HTML(s) },
	"jsonLD":     func(s string) template.JS { return template.JS(s) },
	"joinTags":   site.JoinTags,
	"formatDate": formatDate,
	"firstName":  firstName,
	"tagClass":   tagClass,
	"blurStyle":  blurStyle,
	"dict":       dict,
}

// formatDate renders a publish date like "March 10, 2024".
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

func firstName(name string) string {
	if f := strings.Fields(name); len(f) > 0 {
		return f[0]
	}
	return name
}

// tagClass returns CSS classes for a tag pill, with active variant.
func tagClass(active bool) string {
	if active {
		return "tag active"
	}
	return "tag"
}

// blurStyle is the inline style showing a blur placeholder behind an image
// until it loads. The data URL comes from the placeholder service.
func blurStyle(dataURL string) template.CSS {
	if dataURL == "" {
		return ""
	}
	return template.CSS("background-size:cover;background-image:url(" + dataURL + ")")
}

// dict builds a map from alternating keys and values, for passing several
// values to a nested template.
func dict(kv ...any) map[string]any {
	m := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			m[k] = kv[i+1]
		}
	}
	return m
}

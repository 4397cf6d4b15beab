package theme

import (
	"net/url"
	"strings"
)

// Font is a web font loaded from Google Fonts.
type Font struct {
	Family    string
	ClassName string
	Weights   []string
	Fallback  []string
}

// Stack is the CSS font-family value with fallbacks.
func (f Font) Stack() string {
	parts := append([]string{"'" + f.Family + "'"}, f.Fallback...)
	return strings.Join(parts, ",")
}

// Fonts is the site's font selection.
type Fonts struct {
	Body    Font
	Display Font
}

// DefaultFonts is Inter for body text and Fredoka for headings.
func DefaultFonts() Fonts {
	return Fonts{
		Body: Font{
			Family:    "Inter",
			ClassName: "font-inter",
			Weights:   []string{"400", "500", "600", "700"},
			Fallback:  []string{"ui-sans-serif", "system-ui", "sans-serif"},
		},
		Display: Font{
			Family:    "Fredoka",
			ClassName: "font-fredoka",
			Weights:   []string{"400", "600", "700"},
			Fallback:  []string{"ui-rounded", "system-ui", "sans-serif"},
		},
	}
}

// All returns every configured font.
func (f Fonts) All() []Font {
	return []Font{f.Body, f.Display}
}

// StylesheetURL is the Google Fonts CSS2 URL that loads every font with the
// latin subset.
func (f Fonts) StylesheetURL() string {
	q := url.Values{}
	for _, font := range f.All() {
		q.Add("family", font.Family+":wght@"+strings.Join(font.Weights, ";"))
	}
	q.Set("display", "swap")
	q.Set("subset", "latin")
	return "https://fonts.googleapis.com/css2?" + q.Encode()
}

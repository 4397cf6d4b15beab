// Package theme holds the site's color presets and font selection and renders
// them as CSS custom properties.
package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
)

// DefaultPreset is used when no preset is configured.
const DefaultPreset = "catppuccin"

// ErrUnknownPreset is returned by Lookup for a name with no palette.
var ErrUnknownPreset = eris.New("unknown theme preset")

// Palette maps color token names (background, primary, ...) to HSL triplets
// in the "H S% L%" form Tailwind expects inside hsl(var(--token)).
type Palette map[string]string

// Preset is a pair of light and dark palettes.
type Preset struct {
	Name  string
	Light Palette
	Dark  Palette
}

// Tokens lists every color token a palette must define, in output order.
var Tokens = []string{
	"background",
	"foreground",
	"muted",
	"muted-foreground",
	"popover",
	"popover-foreground",
	"card",
	"card-foreground",
	"border",
	"primary",
	"primary-foreground",
	"secondary",
	"secondary-foreground",
	"accent",
	"accent-foreground",
	"ring",
}

// Lookup returns the named preset.
func Lookup(name string) (Preset, error) {
	if name == "" {
		name = DefaultPreset
	}
	p, ok := presets[strings.ToLower(name)]
	if !ok {
		return Preset{}, eris.Wrapf(ErrUnknownPreset, "preset %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// Names returns all preset names, sorted.
func Names() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Theme is the full styling configuration of the site.
type Theme struct {
	Preset Preset
	Fonts  Fonts
	// Dark renders the page with the dark palette unless the visitor opts out.
	Dark bool
}

// New returns the theme for the named preset with the site's default fonts.
func New(preset string) (Theme, error) {
	p, err := Lookup(preset)
	if err != nil {
		return Theme{}, err
	}
	return Theme{Preset: p, Fonts: DefaultFonts(), Dark: true}, nil
}

// HTMLClass is the class list for the <html> element.
func (t Theme) HTMLClass() string {
	classes := []string{t.Fonts.Body.ClassName}
	if t.Dark {
		classes = append([]string{"dark"}, classes...)
	}
	return strings.Join(classes, " ")
}

// CSS renders the custom properties for both palettes, the font utility
// classes, and the gradient helpers used by the page layouts.
func (t Theme) CSS() string {
	var b strings.Builder
	writePalette(&b, ":root", t.Preset.Light)
	writePalette(&b, ".dark", t.Preset.Dark)
	for _, f := range t.Fonts.All() {
		fmt.Fprintf(&b, ".%s{font-family:%s}\n", f.ClassName, f.Stack())
	}
	b.WriteString(".bg-gradient-radial{background-image:radial-gradient(var(--tw-gradient-stops))}\n")
	b.WriteString(".bg-gradient-conic{background-image:conic-gradient(from 180deg at 50% 50%,var(--tw-gradient-stops))}\n")
	return b.String()
}

func writePalette(b *strings.Builder, selector string, p Palette) {
	b.WriteString(selector)
	b.WriteString("{")
	for _, tok := range Tokens {
		if v, ok := p[tok]; ok {
			fmt.Fprintf(b, "--color-fd-%s:%s;", tok, v)
		}
	}
	b.WriteString("}\n")
}

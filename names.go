package tint

import (
	"image/color"
	"sort"
	"strings"

	"golang.org/x/image/colornames"
)

// colornames carries the SVG 1.1 table; CSS Color Module Level 4 added
// rebeccapurple on top of that set, so it is supplemented here.
var extraNames = map[string]color.RGBA{
	"rebeccapurple": {R: 0x66, G: 0x33, B: 0x99, A: 0xFF},
}

// Named looks up one of the CSS color names ("navy", "tomato",
// "rebeccapurple" and friends). Lookup is case-insensitive. The second
// result reports whether the name is known.
func Named(name string) (RGB, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	c, ok := colornames.Map[key]
	if !ok {
		c, ok = extraNames[key]
	}
	if !ok {
		return RGB{}, false
	}
	return RGB{R: int(c.R), G: int(c.G), B: int(c.B), Alpha: 1}, true
}

// Names returns the recognized color names in alphabetical order.
func Names() []string {
	out := make([]string, 0, len(colornames.Names)+len(extraNames))
	out = append(out, colornames.Names...)
	for name := range extraNames {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

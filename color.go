package tint

// Color is an opaque wrapper around a colorspace value. It remembers
// the preferred textual format (used only when rendering back to text)
// and, optionally, a background color for alpha flattening.
//
// Color is immutable: every operation returns a new Color carrying the
// same format tag, regardless of which colorspace the operation worked
// in internally.
type Color struct {
	value      Value
	format     Format
	background Value
}

// Wrap turns a bare colorspace value into a Color with the default hex
// format tag. Wrapping a Color returns it unchanged.
func Wrap(v Value) Color {
	if c, ok := v.(Color); ok {
		return c
	}
	return Color{value: v.cast(), format: FormatHex}
}

// Value returns the wrapped colorspace value.
func (c Color) Value() Value { return c.value }

// Format returns the preferred textual format.
func (c Color) Format() Format { return c.format }

// WithFormat returns a copy of c preferring the given textual format.
func (c Color) WithFormat(f Format) Color {
	c.format = f
	return c
}

// Background returns the remembered background color, or nil.
func (c Color) Background() Value { return c.background }

// WithBackground returns a copy of c remembering bg as the background
// used by Flatten.
func (c Color) WithBackground(bg Value) Color {
	if w, ok := bg.(Color); ok {
		bg = w.value
	}
	c.background = bg
	return c
}

// Flatten resolves the color's alpha against its background, producing
// an equivalent fully opaque color. Without a remembered background it
// flattens against white.
func (c Color) Flatten() Color {
	p := c.value.Pivot()
	if p.Alpha == 1 {
		return c
	}
	bg := c.background
	if bg == nil {
		bg = RGB{R: 255, G: 255, B: 255, Alpha: 1}
	}
	// Mix weights plain opaque inputs by exactly p.Alpha, which is the
	// flattening formula fg*a + bg*(1-a) per channel.
	fg := Convert(c.value, SpaceRGB).(RGB)
	fg.Alpha = 1
	over := Convert(bg, SpaceRGB).(RGB)
	over.Alpha = 1
	rgb := Mix(fg, over, p.Alpha).(RGB)
	return c.rewrap(Convert(rgb, c.value.Space()))
}

// rewrap wraps a result value with c's format tag and background.
func (c Color) rewrap(v Value) Color {
	if w, ok := v.(Color); ok {
		v = w.value
	}
	return Color{value: v, format: c.format, background: c.background}
}

// Space reports the colorspace of the wrapped value.
func (c Color) Space() Space { return c.value.Space() }

// Pivot converts the wrapped value to the canonical pivot tuple.
func (c Color) Pivot() Pivot { return c.value.Pivot() }

func (c Color) cast() Value { return c.rewrap(c.value.cast()) }

// String renders the color in its preferred textual format.
func (c Color) String() string { return ToText(c.value, c.format) }

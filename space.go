package tint

// Space identifies one of the supported colorspaces.
type Space uint8

const (
	// SpaceRGB is 8-bit-per-channel red/green/blue.
	SpaceRGB Space = iota
	// SpaceHSL is hue (degrees), saturation and lightness.
	SpaceHSL
	// SpaceLAB is CIE L*a*b* under a D65 reference white.
	SpaceLAB
	// SpaceXYZ is CIE 1931 XYZ scaled so Y ranges over [0, 100].
	SpaceXYZ
	// SpaceCMYK is cyan/magenta/yellow/black.
	SpaceCMYK
)

// String returns the lowercase name of the colorspace.
func (s Space) String() string {
	switch s {
	case SpaceRGB:
		return "rgb"
	case SpaceHSL:
		return "hsl"
	case SpaceLAB:
		return "lab"
	case SpaceXYZ:
		return "xyz"
	case SpaceCMYK:
		return "cmyk"
	}
	return "unknown"
}

// Value is the closed set of color shapes accepted by every operation in
// this package: the five colorspace structs plus the Color wrapper.
// All implementations are immutable; operations return fresh values.
type Value interface {
	// Space reports the colorspace the value is expressed in.
	Space() Space

	// Pivot converts the value to the canonical pivot tuple.
	Pivot() Pivot

	// cast returns the value with every field clamped to its valid
	// range. Unexported so the set of implementations stays closed.
	cast() Value
}

// Pivot is the canonical 8-bit RGB + float alpha tuple every conversion
// routes through. Converting between two non-identical colorspaces always
// goes source -> Pivot -> target.
type Pivot struct {
	R, G, B uint8
	Alpha   float64
}

// Convert expresses v in the target colorspace. Converting to the
// colorspace v is already in returns v unchanged. A wrapped color stays
// wrapped: the conversion applies to the underlying value and the result
// carries the same format tag.
//
// Conversions are total: any well-formed value converts to any space
// without error, and out-of-gamut intermediates are clamped.
func Convert(v Value, target Space) Value {
	if c, ok := v.(Color); ok {
		return c.rewrap(Convert(c.value, target))
	}
	if v.Space() == target {
		return v
	}
	return fromPivot(v.Pivot(), target)
}

// fromPivot expands the pivot tuple into the requested colorspace.
func fromPivot(p Pivot, target Space) Value {
	switch target {
	case SpaceHSL:
		return hslFromPivot(p)
	case SpaceLAB:
		return labFromPivot(p)
	case SpaceXYZ:
		return xyzFromPivot(p)
	case SpaceCMYK:
		return cmykFromPivot(p)
	default:
		return rgbFromPivot(p)
	}
}

// Cast returns v with every field clamped to its declared range.
// Casting an already-valid value is a no-op. The hue field wraps modulo
// 360 degrees instead of saturating.
func Cast(v Value) Value {
	return v.cast()
}

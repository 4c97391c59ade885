package tint

import "math"

// Key names a single color attribute for the colorspace-agnostic
// accessors Get, Put and Update. Each key belongs to exactly one
// colorspace and carries a static numeric range.
type Key uint8

const (
	KeyRed Key = iota
	KeyGreen
	KeyBlue
	KeyAlpha
	KeyHue
	KeySaturation
	KeyLightness
	KeyL
	KeyA
	KeyB
	KeyCyan
	KeyMagenta
	KeyYellow
	KeyBlack
	KeyX
	KeyY
	KeyZ

	numKeys
)

// String returns the attribute name.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

var keyNames = [numKeys]string{
	"red", "green", "blue", "alpha", "hue", "saturation", "lightness",
	"l", "a", "b", "cyan", "magenta", "yellow", "black", "x", "y", "z",
}

// Domain reports the colorspace that owns the key and the key's valid
// range.
func (k Key) Domain() (space Space, min, max float64) {
	info := keyTable[k]
	return info.space, info.min, info.max
}

// keyInfo is one row of the static dispatch table: the owning
// colorspace, the valid range, whether the value wraps instead of
// saturating, and direct field accessors. The accessors assume the
// value has already been converted to the owning colorspace.
type keyInfo struct {
	space    Space
	min, max float64
	wraps    bool
	get      func(Value) float64
	set      func(Value, float64) Value
}

var keyTable = [numKeys]keyInfo{
	KeyRed: {space: SpaceRGB, min: 0, max: 255,
		get: func(v Value) float64 { return float64(v.(RGB).R) },
		set: func(v Value, x float64) Value {
			c := v.(RGB)
			c.R = int(math.Round(x))
			return c
		}},
	KeyGreen: {space: SpaceRGB, min: 0, max: 255,
		get: func(v Value) float64 { return float64(v.(RGB).G) },
		set: func(v Value, x float64) Value {
			c := v.(RGB)
			c.G = int(math.Round(x))
			return c
		}},
	KeyBlue: {space: SpaceRGB, min: 0, max: 255,
		get: func(v Value) float64 { return float64(v.(RGB).B) },
		set: func(v Value, x float64) Value {
			c := v.(RGB)
			c.B = int(math.Round(x))
			return c
		}},
	KeyAlpha: {space: SpaceRGB, min: 0, max: 1,
		get: func(v Value) float64 { return v.(RGB).Alpha },
		set: func(v Value, x float64) Value {
			c := v.(RGB)
			c.Alpha = x
			return c
		}},
	KeyHue: {space: SpaceHSL, min: 0, max: 360, wraps: true,
		get: func(v Value) float64 { return v.(HSL).H },
		set: func(v Value, x float64) Value {
			c := v.(HSL)
			c.H = x
			return c
		}},
	KeySaturation: {space: SpaceHSL, min: 0, max: 1,
		get: func(v Value) float64 { return v.(HSL).S },
		set: func(v Value, x float64) Value {
			c := v.(HSL)
			c.S = x
			return c
		}},
	KeyLightness: {space: SpaceHSL, min: 0, max: 1,
		get: func(v Value) float64 { return v.(HSL).L },
		set: func(v Value, x float64) Value {
			c := v.(HSL)
			c.L = x
			return c
		}},
	KeyL: {space: SpaceLAB, min: 0, max: 100,
		get: func(v Value) float64 { return v.(Lab).L },
		set: func(v Value, x float64) Value {
			c := v.(Lab)
			c.L = x
			return c
		}},
	KeyA: {space: SpaceLAB, min: -128, max: 128,
		get: func(v Value) float64 { return v.(Lab).A },
		set: func(v Value, x float64) Value {
			c := v.(Lab)
			c.A = x
			return c
		}},
	KeyB: {space: SpaceLAB, min: -128, max: 128,
		get: func(v Value) float64 { return v.(Lab).B },
		set: func(v Value, x float64) Value {
			c := v.(Lab)
			c.B = x
			return c
		}},
	KeyCyan: {space: SpaceCMYK, min: 0, max: 1,
		get: func(v Value) float64 { return v.(CMYK).C },
		set: func(v Value, x float64) Value {
			c := v.(CMYK)
			c.C = x
			return c
		}},
	KeyMagenta: {space: SpaceCMYK, min: 0, max: 1,
		get: func(v Value) float64 { return v.(CMYK).M },
		set: func(v Value, x float64) Value {
			c := v.(CMYK)
			c.M = x
			return c
		}},
	KeyYellow: {space: SpaceCMYK, min: 0, max: 1,
		get: func(v Value) float64 { return v.(CMYK).Y },
		set: func(v Value, x float64) Value {
			c := v.(CMYK)
			c.Y = x
			return c
		}},
	KeyBlack: {space: SpaceCMYK, min: 0, max: 1,
		get: func(v Value) float64 { return v.(CMYK).K },
		set: func(v Value, x float64) Value {
			c := v.(CMYK)
			c.K = x
			return c
		}},
	KeyX: {space: SpaceXYZ, min: 0, max: 95.047,
		get: func(v Value) float64 { return v.(XYZ).X },
		set: func(v Value, x float64) Value {
			c := v.(XYZ)
			c.X = x
			return c
		}},
	KeyY: {space: SpaceXYZ, min: 0, max: 100,
		get: func(v Value) float64 { return v.(XYZ).Y },
		set: func(v Value, x float64) Value {
			c := v.(XYZ)
			c.Y = x
			return c
		}},
	KeyZ: {space: SpaceXYZ, min: 0, max: 108.883,
		get: func(v Value) float64 { return v.(XYZ).Z },
		set: func(v Value, x float64) Value {
			c := v.(XYZ)
			c.Z = x
			return c
		}},
}

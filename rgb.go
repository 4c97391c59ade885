package tint

import (
	"math"

	"github.com/tintpkg/tint/internal/fmath"
)

// RGB is an 8-bit-per-channel color. R, G and B are integers in
// [0, 255]; Alpha is in [0.0, 1.0]. The channel fields are plain ints so
// Put can store an out-of-range value verbatim; Cast restores the
// invariant.
type RGB struct {
	R, G, B int
	Alpha   float64
}

// NewRGB builds an RGB value, clamping every component into range.
func NewRGB(r, g, b int, alpha float64) RGB {
	return RGB{R: r, G: g, B: b, Alpha: alpha}.cast().(RGB)
}

// Space reports SpaceRGB.
func (c RGB) Space() Space { return SpaceRGB }

// Pivot converts to the canonical pivot tuple. RGB already matches the
// pivot channel domain, so this only clamps.
func (c RGB) Pivot() Pivot {
	return Pivot{
		R:     clampChannel(c.R),
		G:     clampChannel(c.G),
		B:     clampChannel(c.B),
		Alpha: fmath.Clamp01(c.Alpha),
	}
}

func (c RGB) cast() Value {
	return RGB{
		R:     int(clampChannel(c.R)),
		G:     int(clampChannel(c.G)),
		B:     int(clampChannel(c.B)),
		Alpha: fmath.Clamp01(c.Alpha),
	}
}

func rgbFromPivot(p Pivot) RGB {
	return RGB{R: int(p.R), G: int(p.G), B: int(p.B), Alpha: p.Alpha}
}

// clampChannel saturates an integer channel to [0, 255].
func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// roundChannel converts a [0, 1] channel fraction to its 8-bit value.
func roundChannel(v float64) int {
	return int(math.Round(fmath.Clamp01(v) * 255))
}

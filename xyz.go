package tint

import (
	"math"

	"github.com/tintpkg/tint/internal/fmath"
)

// XYZ is a CIE 1931 tristimulus value under D65, scaled so that Y spans
// [0, 100]. X spans [0, 95.047] and Z spans [0, 108.883]; Alpha is in
// [0.0, 1.0].
type XYZ struct {
	X, Y, Z float64
	Alpha   float64
}

// NewXYZ builds an XYZ value, clamping every component into range.
func NewXYZ(x, y, z, alpha float64) XYZ {
	return XYZ{X: x, Y: y, Z: z, Alpha: alpha}.cast().(XYZ)
}

// Space reports SpaceXYZ.
func (c XYZ) Space() Space { return SpaceXYZ }

// Pivot converts to the canonical pivot tuple by the inverse sRGB
// matrix followed by gamma compression. A NaN out of the power branch
// (possible for out-of-gamut negatives) resolves to channel 0.
func (c XYZ) Pivot() Pivot {
	v := c.cast().(XYZ)
	x := v.X / 100
	y := v.Y / 100
	z := v.Z / 100

	rl := x*3.2406 + y*-1.5372 + z*-0.4986
	gl := x*-0.9689 + y*1.8758 + z*0.0415
	bl := x*0.0557 + y*-0.2040 + z*1.0570

	return Pivot{
		R:     uint8(roundChannel(delinearize(rl))),
		G:     uint8(roundChannel(delinearize(gl))),
		B:     uint8(roundChannel(delinearize(bl))),
		Alpha: v.Alpha,
	}
}

func (c XYZ) cast() Value {
	return XYZ{
		X:     fmath.Clamp(c.X, 0, 95.047),
		Y:     fmath.Clamp(c.Y, 0, 100),
		Z:     fmath.Clamp(c.Z, 0, 108.883),
		Alpha: fmath.Clamp01(c.Alpha),
	}
}

func xyzFromPivot(p Pivot) XYZ {
	rl := linearize(float64(p.R)/255) * 100
	gl := linearize(float64(p.G)/255) * 100
	bl := linearize(float64(p.B)/255) * 100

	// The 4-digit matrix rows sum slightly past the reference white,
	// so full-intensity channels can land a hair over the declared
	// maxima. Cast before handing the value out.
	out := XYZ{
		X:     rl*0.4124 + gl*0.3576 + bl*0.1805,
		Y:     rl*0.2126 + gl*0.7152 + bl*0.0722,
		Z:     rl*0.0193 + gl*0.1192 + bl*0.9505,
		Alpha: p.Alpha,
	}
	return out.cast().(XYZ)
}

// linearize removes sRGB gamma encoding from a [0, 1] component.
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func linearize(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// delinearize applies sRGB gamma encoding to a linear component.
// The power branch is clamped to non-negative input; any NaN result is
// treated as 0 rather than propagated.
func delinearize(l float64) float64 {
	var s float64
	if l > 0.0031308 {
		s = 1.055*math.Pow(math.Max(l, 0), 1.0/2.4) - 0.055
	} else {
		s = 12.92 * l
	}
	if math.IsNaN(s) {
		return 0
	}
	return s
}

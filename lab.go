package tint

import "github.com/tintpkg/tint/internal/fmath"

// Lab is a CIE L*a*b* color under a D65 reference white. L is in
// [0.0, 100.0], A and B are in [-128.0, 128.0], Alpha is in [0.0, 1.0].
type Lab struct {
	L, A, B float64
	Alpha   float64
}

// Reference whites for the Lab conversions. The forward direction uses
// the higher-precision values; the inverse re-scales by the same white
// the XYZ ranges are declared against.
const (
	labWhiteX = 95.0489
	labWhiteY = 100.0
	labWhiteZ = 108.8840

	xyzWhiteX = 95.047
	xyzWhiteY = 100.0
	xyzWhiteZ = 108.883
)

// delta3 is (6/29)^3, the breakpoint of the forward piecewise function.
const delta3 = 216.0 / 24389.0

// NewLab builds a Lab value, clamping every component into range.
func NewLab(l, a, b, alpha float64) Lab {
	return Lab{L: l, A: a, B: b, Alpha: alpha}.cast().(Lab)
}

// Space reports SpaceLAB.
func (c Lab) Space() Space { return SpaceLAB }

// Pivot converts to the canonical pivot tuple. Lab always routes
// through XYZ: the piecewise function inverts (cube when t^3 exceeds
// 0.008856, linear below), the result re-scales by the reference white,
// and the XYZ conversion finishes the trip.
func (c Lab) Pivot() Pivot {
	v := c.cast().(Lab)
	fy := (v.L + 16) / 116
	fx := fy + v.A/500
	fz := fy - v.B/200

	xyz := XYZ{
		X:     labFInv(fx) * xyzWhiteX,
		Y:     labFInv(fy) * xyzWhiteY,
		Z:     labFInv(fz) * xyzWhiteZ,
		Alpha: v.Alpha,
	}
	return xyz.Pivot()
}

func (c Lab) cast() Value {
	return Lab{
		L:     fmath.Clamp(c.L, 0, 100),
		A:     fmath.Clamp(c.A, -128, 128),
		B:     fmath.Clamp(c.B, -128, 128),
		Alpha: fmath.Clamp01(c.Alpha),
	}
}

func labFromPivot(p Pivot) Lab {
	xyz := xyzFromPivot(p)
	fx := labF(xyz.X / labWhiteX)
	fy := labF(xyz.Y / labWhiteY)
	fz := labF(xyz.Z / labWhiteZ)

	return Lab{
		L:     fmath.Round(116*fy-16, 4),
		A:     fmath.Round(500*(fx-fy), 4),
		B:     fmath.Round(200*(fy-fz), 4),
		Alpha: p.Alpha,
	}
}

// labF is the forward piecewise correction: cube root above the (6/29)^3
// breakpoint, linear below.
func labF(t float64) float64 {
	if t > delta3 {
		return fmath.Cbrt(t)
	}
	return t/(3*(6.0/29.0)*(6.0/29.0)) + 4.0/29.0
}

// labFInv inverts labF. The guard condition compares the cube against
// 0.008856 rather than t against 6/29; keep it that way, downstream
// expectations are built on this exact branch.
func labFInv(t float64) float64 {
	if t*t*t > 0.008856 {
		return t * t * t
	}
	return (t - 16.0/116.0) / 7.787
}

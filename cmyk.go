package tint

import (
	"math"

	"github.com/tintpkg/tint/internal/fmath"
)

// CMYK is a cyan/magenta/yellow/black color. Every component, including
// Alpha, is in [0.0, 1.0].
type CMYK struct {
	C, M, Y, K float64
	Alpha      float64
}

// NewCMYK builds a CMYK value, clamping every component into range.
func NewCMYK(c, m, y, k, alpha float64) CMYK {
	return CMYK{C: c, M: m, Y: y, K: k, Alpha: alpha}.cast().(CMYK)
}

// Space reports SpaceCMYK.
func (c CMYK) Space() Space { return SpaceCMYK }

// Pivot converts to the canonical pivot tuple.
func (c CMYK) Pivot() Pivot {
	v := c.cast().(CMYK)
	return Pivot{
		R:     uint8(math.Round(255 * (1 - v.C) * (1 - v.K))),
		G:     uint8(math.Round(255 * (1 - v.M) * (1 - v.K))),
		B:     uint8(math.Round(255 * (1 - v.Y) * (1 - v.K))),
		Alpha: v.Alpha,
	}
}

func (c CMYK) cast() Value {
	return CMYK{
		C:     fmath.Clamp01(c.C),
		M:     fmath.Clamp01(c.M),
		Y:     fmath.Clamp01(c.Y),
		K:     fmath.Clamp01(c.K),
		Alpha: fmath.Clamp01(c.Alpha),
	}
}

func cmykFromPivot(p Pivot) CMYK {
	rf := float64(p.R) / 255
	gf := float64(p.G) / 255
	bf := float64(p.B) / 255

	k := 1 - max(rf, gf, bf)
	if k == 1 {
		// Pure black: the (1-k) denominator vanishes, so the
		// chromatic components are defined as zero.
		return CMYK{C: 0, M: 0, Y: 0, K: 1, Alpha: p.Alpha}
	}
	return CMYK{
		C:     (1 - rf - k) / (1 - k),
		M:     (1 - gf - k) / (1 - k),
		Y:     (1 - bf - k) / (1 - k),
		K:     k,
		Alpha: p.Alpha,
	}
}

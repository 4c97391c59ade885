package tint

import "github.com/tintpkg/tint/internal/fmath"

// HSL is hue, saturation and lightness. H is in degrees and wraps
// modulo 360; S, L and Alpha are in [0.0, 1.0].
type HSL struct {
	H, S, L float64
	Alpha   float64
}

// NewHSL builds an HSL value, wrapping the hue and clamping the rest.
func NewHSL(h, s, l, alpha float64) HSL {
	return HSL{H: h, S: s, L: l, Alpha: alpha}.cast().(HSL)
}

// Space reports SpaceHSL.
func (c HSL) Space() Space { return SpaceHSL }

// Pivot converts to the canonical pivot tuple using the standard
// hue/chroma/lightness formulas.
func (c HSL) Pivot() Pivot {
	v := c.cast().(HSL)
	if v.S == 0 {
		ch := uint8(roundChannel(v.L))
		return Pivot{R: ch, G: ch, B: ch, Alpha: v.Alpha}
	}
	var q float64
	if v.L < 0.5 {
		q = v.L * (1 + v.S)
	} else {
		q = v.L + v.S - v.L*v.S
	}
	p := 2*v.L - q
	hn := v.H / 360
	return Pivot{
		R:     uint8(roundChannel(hueToChannel(p, q, hn+1.0/3))),
		G:     uint8(roundChannel(hueToChannel(p, q, hn))),
		B:     uint8(roundChannel(hueToChannel(p, q, hn-1.0/3))),
		Alpha: v.Alpha,
	}
}

// hueToChannel resolves one RGB channel from the normalized hue t and
// the chroma bounds p and q. The hue circle partitions into six
// sextants with breakpoints at 1/6, 1/2 and 2/3.
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

func (c HSL) cast() Value {
	return HSL{
		H:     fmath.Wrap360(c.H),
		S:     fmath.Clamp01(c.S),
		L:     fmath.Clamp01(c.L),
		Alpha: fmath.Clamp01(c.Alpha),
	}
}

func hslFromPivot(p Pivot) HSL {
	rf := float64(p.R) / 255
	gf := float64(p.G) / 255
	bf := float64(p.B) / 255
	mx := max(rf, gf, bf)
	mn := min(rf, gf, bf)
	l := (mx + mn) / 2

	if mx == mn {
		return HSL{H: 0, S: 0, L: l, Alpha: p.Alpha}
	}

	d := mx - mn
	var s float64
	if l > 0.5 {
		s = d / (2 - mx - mn)
	} else {
		s = d / (mx + mn)
	}

	var h float64
	switch mx {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}
	return HSL{H: h * 60, S: s, L: l, Alpha: p.Alpha}
}

package tint

import (
	"math"

	"github.com/tintpkg/tint/internal/fmath"
)

// Mix blends two colors channel by channel. weight is the share of a:
// 1 yields a, 0 yields b, 0.5 an even blend. Translucency shifts the
// balance toward the more opaque input, and the result's alpha is the
// weighted mean of the inputs' alphas. The result is returned in a's
// colorspace, wrapped if a was wrapped.
//
// Mixing works on light-like averaging of the 8-bit channels; for
// paint-like behavior where blue and yellow make green, see
// SpectralMix.
func Mix(a, b Value, weight float64) Value {
	weight = fmath.Clamp01(weight)
	pa := a.Pivot()
	pb := b.Pivot()

	// Compensate the weight for the alpha difference so that a fully
	// transparent input contributes nothing regardless of weight.
	w := 2*weight - 1
	d := pa.Alpha - pb.Alpha
	w1 := w
	if w*d != -1 {
		w1 = (w + d) / (1 + w*d)
	}
	w1 = (w1 + 1) / 2
	w2 := 1 - w1

	p := Pivot{
		R:     mixChannel(pa.R, pb.R, w1, w2),
		G:     mixChannel(pa.G, pb.G, w1, w2),
		B:     mixChannel(pa.B, pb.B, w1, w2),
		Alpha: pa.Alpha*weight + pb.Alpha*(1-weight),
	}
	return inSpaceOf(a, p)
}

// Average blends any number of colors evenly, computing the root mean
// square of each channel rather than the arithmetic mean, which keeps
// the result from darkening the way a plain average would. Alpha is
// averaged arithmetically. The result is returned in the first value's
// colorspace, wrapped if it was wrapped. A nil result means vs was
// empty.
func Average(vs ...Value) Value {
	if len(vs) == 0 {
		return nil
	}
	var r, g, b, alpha float64
	for _, v := range vs {
		p := v.Pivot()
		r += float64(p.R) * float64(p.R)
		g += float64(p.G) * float64(p.G)
		b += float64(p.B) * float64(p.B)
		alpha += p.Alpha
	}
	n := float64(len(vs))
	p := Pivot{
		R:     clampChannel(int(math.Round(math.Sqrt(r / n)))),
		G:     clampChannel(int(math.Round(math.Sqrt(g / n)))),
		B:     clampChannel(int(math.Round(math.Sqrt(b / n)))),
		Alpha: alpha / n,
	}
	return inSpaceOf(vs[0], p)
}

func mixChannel(a, b uint8, w1, w2 float64) uint8 {
	return clampChannel(int(math.Round(float64(a)*w1 + float64(b)*w2)))
}

// inSpaceOf converts the pivot into v's colorspace, re-wrapping when v
// is a Color.
func inSpaceOf(v Value, p Pivot) Value {
	out := fromPivot(p, v.Space())
	if c, ok := v.(Color); ok {
		return c.rewrap(out)
	}
	return out
}

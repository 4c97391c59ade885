package tint

import (
	"math"

	"github.com/tintpkg/tint/internal/fmath"
)

// reflectanceFloor keeps Kubelka-Munk K/S finite for zero reflectance.
const reflectanceFloor = 1e-6

// luminanceFloor keeps a pure black pigment from vanishing entirely
// out of the concentration weighting.
const luminanceFloor = 1e-4

// SpectralMix blends two colors the way pigments blend: each color is
// expanded into a reflectance curve over the visible spectrum, the
// curves are combined with the Kubelka-Munk model using luminance-
// weighted concentrations, and the result is projected back to RGB.
// Unlike Mix, blue and yellow make green here, not gray.
//
// weight is the share of a, as in Mix. Alpha does not take part in
// the pigment model; the result's alpha is the weighted mean of the
// inputs' alphas. The result is returned in a's colorspace, wrapped
// if a was wrapped.
func SpectralMix(a, b Value, weight float64) Value {
	weight = fmath.Clamp01(weight)
	pa := a.Pivot()
	pb := b.Pivot()

	r1 := reflectanceOf(pa)
	r2 := reflectanceOf(pb)

	// Concentrations scale with the luminance of each input so that a
	// strong pigment does not swamp a weak one at equal weights.
	y1 := math.Max(luminance(&r1), luminanceFloor)
	y2 := math.Max(luminance(&r2), luminanceFloor)
	c1 := y1 * weight * weight
	c2 := y2 * (1 - weight) * (1 - weight)

	var mixed [spectralBands]float64
	for i := range mixed {
		ks1 := kubelkaMunk(r1[i])
		ks2 := kubelkaMunk(r2[i])
		ks := (c1*ks1 + c2*ks2) / (c1 + c2)
		mixed[i] = 1 + ks - math.Sqrt(ks*ks+2*ks)
	}

	p := reflectanceToPivot(&mixed)
	p.Alpha = pa.Alpha*weight + pb.Alpha*(1-weight)
	return inSpaceOf(a, p)
}

// kubelkaMunk is the absorption-to-scattering ratio K/S of a surface
// with the given reflectance.
func kubelkaMunk(r float64) float64 {
	return (1 - r) * (1 - r) / (2 * r)
}

// reflectanceOf expands a color into a reflectance curve as a blend of
// the seven basis spectra. The linear RGB channels decompose exactly
// into white plus at most one secondary and one primary component, so
// projecting each component onto its basis curve reconstructs the
// original color bit for bit.
func reflectanceOf(p Pivot) [spectralBands]float64 {
	lr := channelToLinear(p.R)
	lg := channelToLinear(p.G)
	lb := channelToLinear(p.B)

	w := math.Min(lr, math.Min(lg, lb))
	r, g, b := lr-w, lg-w, lb-w
	c := math.Min(g, b)
	m := math.Min(r, b)
	y := math.Min(r, g)
	rr := math.Max(0, math.Min(r-b, r-g))
	gg := math.Max(0, math.Min(g-b, g-r))
	bb := math.Max(0, math.Min(b-g, b-r))

	var out [spectralBands]float64
	for i := range out {
		v := w*basisWhite[i] + c*basisCyan[i] + m*basisMagenta[i] +
			y*basisYellow[i] + rr*basisRed[i] + gg*basisGreen[i] +
			bb*basisBlue[i]
		out[i] = math.Max(v, reflectanceFloor)
	}
	return out
}

// luminance is the CIE Y of a reflectance curve under D65.
func luminance(rho *[spectralBands]float64) float64 {
	var y float64
	for i, r := range rho {
		y += lumWeights[i] * r
	}
	return y
}

// reflectanceToPivot projects a reflectance curve onto linear sRGB and
// gamma-encodes the result. Alpha is left for the caller to fill in.
func reflectanceToPivot(rho *[spectralBands]float64) Pivot {
	var lr, lg, lb float64
	for i, r := range rho {
		lr += reflToLinearR[i] * r
		lg += reflToLinearG[i] * r
		lb += reflToLinearB[i] * r
	}
	return Pivot{
		R: linearToChannel(lr),
		G: linearToChannel(lg),
		B: linearToChannel(lb),
	}
}

// channelToLinear removes the sRGB gamma encoding from an 8-bit
// channel.
func channelToLinear(c uint8) float64 {
	v := float64(c) / 255
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// linearToChannel gamma-encodes a linear intensity back to an 8-bit
// channel, clamping out-of-gamut values.
func linearToChannel(v float64) uint8 {
	v = fmath.Clamp01(v)
	var s float64
	if v <= 0.0031308 {
		s = 12.92 * v
	} else {
		s = 1.055*math.Pow(v, 1/2.4) - 0.055
	}
	return clampChannel(roundChannel(s))
}

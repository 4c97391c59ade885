// Package fmath provides the small numeric helpers shared by the color
// conversion code: clamping, degree wrapping, decimal rounding and a
// bounded cube root.
package fmath

import "math"

// Clamp restricts v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 restricts v to the range [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Wrap360 wraps a degree value into [0, 360).
// Unlike Clamp it never saturates: 500 wraps to 140, -10 wraps to 350.
func Wrap360(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// cbrtTolerance and cbrtMaxIter bound the Newton iteration in Cbrt.
// The cap guarantees termination even if the tolerance is never met.
const (
	cbrtTolerance = 1e-12
	cbrtMaxIter   = 64
)

// Cbrt computes the real cube root of x by Newton iteration.
// The iteration refines r until successive estimates agree within
// cbrtTolerance, or until cbrtMaxIter iterations have run.
func Cbrt(x float64) float64 {
	if x == 0 {
		return 0
	}
	neg := x < 0
	if neg {
		x = -x
	}
	r := x
	if r > 1 {
		r = x / 3
	}
	for i := 0; i < cbrtMaxIter; i++ {
		next := (2*r + x/(r*r)) / 3
		if math.Abs(next-r) < cbrtTolerance {
			r = next
			break
		}
		r = next
	}
	if neg {
		return -r
	}
	return r
}

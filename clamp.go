package tint

import "github.com/tintpkg/tint/internal/fmath"

// Clamp returns the nearest in-range value for the given key. Every key
// saturates at its bounds except KeyHue, which wraps modulo 360:
// Clamp(500, KeyHue) is 140 and Clamp(-10, KeyHue) is 350.
func Clamp(x float64, k Key) float64 {
	info := keyTable[k]
	if info.wraps {
		return fmath.Wrap360(x)
	}
	return fmath.Clamp(x, info.min, info.max)
}

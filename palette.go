package tint

// Palette helpers derive related colors by rotating the hue or walking
// the lightness axis. Each returns values in the colorspace of its
// input, wrapped if the input was wrapped, with the input itself first.

// Complementary returns the color and its opposite on the hue wheel.
func Complementary(v Value) []Value {
	return rotations(v, 0, 180)
}

// Analogous returns the color and its two neighbors 30 degrees to
// either side.
func Analogous(v Value) []Value {
	return rotations(v, 0, 30, -30)
}

// Triadic returns three colors evenly spaced on the hue wheel.
func Triadic(v Value) []Value {
	return rotations(v, 0, 120, 240)
}

// Tetradic returns four colors evenly spaced on the hue wheel.
func Tetradic(v Value) []Value {
	return rotations(v, 0, 90, 180, 270)
}

// Shades walks from the color toward black in n even lightness steps,
// the color itself included. n below 1 yields an empty slice.
func Shades(v Value, n int) []Value {
	return lightnessWalk(v, n, 0)
}

// Tints walks from the color toward white in n even lightness steps,
// the color itself included. n below 1 yields an empty slice.
func Tints(v Value, n int) []Value {
	return lightnessWalk(v, n, 1)
}

func rotations(v Value, offsets ...float64) []Value {
	out := make([]Value, len(offsets))
	for i, off := range offsets {
		rotated := Update(v, KeyHue, func(h float64) float64 { return h + off })
		out[i] = Convert(rotated, v.Space())
	}
	return out
}

func lightnessWalk(v Value, n int, target float64) []Value {
	if n < 1 {
		return nil
	}
	start := Get(v, KeyLightness)
	step := (target - start) / float64(n)
	out := make([]Value, n)
	for i := range out {
		l := start + step*float64(i)
		out[i] = Convert(Put(v, KeyLightness, l), v.Space())
	}
	return out
}

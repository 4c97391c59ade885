// Package tint models colors across five colorspaces and converts,
// compares and mixes them.
//
// # Overview
//
// tint represents a color as one of five value types (RGB, HSL, Lab,
// XYZ, CMYK), all implementing the Value interface, plus an opaque
// Color wrapper that remembers a preferred textual format. Every
// operation accepts any of these shapes and returns the shape it was
// given.
//
// # Quick Start
//
//	import "github.com/tintpkg/tint"
//
//	c := tint.MustParse("#FF7F00")
//
//	// Convert between colorspaces
//	hsl := tint.Convert(c, tint.SpaceHSL)
//
//	// Read and write single attributes regardless of colorspace
//	hue := tint.Get(c, tint.KeyHue)
//	dim := tint.Put(c, tint.KeyLightness, 0.2)
//
//	// Compare and mix
//	d := tint.Distance(c, dim)
//	mid := tint.Mix(c, dim, 0.5)
//	green := tint.SpectralMix(tint.MustParse("#0000FF"), tint.MustParse("#FFFF00"), 0.5)
//
// # Conversions
//
// Every cross-colorspace conversion passes through an 8-bit RGBA pivot,
// so converting any value to another colorspace and back reproduces it
// exactly. All numeric inputs are clamped into range rather than
// rejected; only text parsing can fail.
//
// # Mixing
//
// Mix blends channels linearly with alpha compensation, the way light
// blends. SpectralMix simulates pigments with the Kubelka-Munk model,
// so blue and yellow make green.
//
// # Concurrency
//
// All values are immutable and all operations are pure functions, safe
// for unsynchronized concurrent use.
package tint

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

package tint

import (
	"math"
	"testing"
)

func TestGetCrossSpace(t *testing.T) {
	orange := RGB{R: 255, G: 128, B: 0, Alpha: 1}
	tests := []struct {
		name string
		v    Value
		key  Key
		want float64
		tol  float64
	}{
		{"rgb red from rgb", orange, KeyRed, 255, 0},
		{"hue from rgb", orange, KeyHue, 30.117647058823529, 1e-9},
		{"lightness from rgb", orange, KeyLightness, 0.5, 1e-9},
		{"magenta from rgb", orange, KeyMagenta, 127.0 / 255, 1e-9},
		{"alpha from hsl", HSL{H: 10, S: 1, L: 0.5, Alpha: 0.25}, KeyAlpha, 0.25, 0},
		{"green from hsl", HSL{H: 120, S: 1, L: 0.5, Alpha: 1}, KeyGreen, 255, 0},
		{"l from rgb", RGB{R: 255, G: 0, B: 0, Alpha: 1}, KeyL, 53.2329, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Get(tt.v, tt.key)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("Get(%+v, %v) = %v, want %v", tt.v, tt.key, got, tt.want)
			}
		})
	}
}

func TestGetUnwrapsColor(t *testing.T) {
	c := Wrap(RGB{R: 255, G: 128, B: 0, Alpha: 1})
	if got := Get(c, KeyRed); got != 255 {
		t.Errorf("Get(wrapped, red) = %v, want 255", got)
	}
}

func TestPutReturnsOwningSpace(t *testing.T) {
	// Put expresses its result in the key's owning colorspace, not the
	// input's.
	got := Put(RGB{R: 255, G: 0, B: 0, Alpha: 1}, KeyLightness, 0.25)
	h, ok := got.(HSL)
	if !ok {
		t.Fatalf("Put(rgb, lightness, ...) returned %T, want HSL", got)
	}
	if h.L != 0.25 {
		t.Errorf("lightness = %v, want 0.25", h.L)
	}
}

func TestPutStoresVerbatim(t *testing.T) {
	// No clamping on Put: the caller owns the range.
	got := Put(HSL{H: 0, S: 1, L: 0.5, Alpha: 1}, KeySaturation, 1.5).(HSL)
	if got.S != 1.5 {
		t.Errorf("Put stored %v, want 1.5 verbatim", got.S)
	}
}

func TestPutLightnessOnBlackYieldsWhite(t *testing.T) {
	c := Wrap(MustParse("#000000"))
	got := Put(c, KeyLightness, 1.0).(Color)
	if got.String() != "#FFFFFF" {
		t.Errorf("black with lightness 1 = %s, want #FFFFFF", got)
	}
}

func TestPutWrappedStaysWrapped(t *testing.T) {
	c := Wrap(RGB{R: 10, G: 20, B: 30, Alpha: 1}).WithFormat(FormatHSL)
	got := Put(c, KeyHue, 90)
	w, ok := got.(Color)
	if !ok {
		t.Fatalf("Put(Color, ...) returned %T, want Color", got)
	}
	if w.Format() != FormatHSL {
		t.Errorf("format tag = %v, want %v", w.Format(), FormatHSL)
	}
}

func TestUpdateClampsResult(t *testing.T) {
	red := RGB{R: 200, G: 0, B: 0, Alpha: 1}
	got := Update(red, KeyRed, func(cur float64) float64 { return cur + 100 }).(RGB)
	if got.R != 255 {
		t.Errorf("updated red = %v, want clamped 255", got.R)
	}
}

func TestUpdateHueWraps(t *testing.T) {
	c := HSL{H: 120, S: 1, L: 0.5, Alpha: 1}
	tests := []struct {
		name string
		fn   UpdateFunc
		want float64
	}{
		{"forward wrap", func(float64) float64 { return 500 }, 140},
		{"backward wrap", func(float64) float64 { return -10 }, 350},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Update(c, KeyHue, tt.fn).(HSL)
			if got.H != tt.want {
				t.Errorf("hue = %v, want %v", got.H, tt.want)
			}
		})
	}
}

func TestUpdateRangeReceivesDomain(t *testing.T) {
	var gotMin, gotMax float64
	UpdateRange(RGB{Alpha: 1}, KeyRed, func(cur, min, max float64) float64 {
		gotMin, gotMax = min, max
		return max
	})
	if gotMin != 0 || gotMax != 255 {
		t.Errorf("range = (%v, %v), want (0, 255)", gotMin, gotMax)
	}
}

func TestGetAfterPutReturnsWritten(t *testing.T) {
	v := Put(RGB{R: 1, G: 2, B: 3, Alpha: 1}, KeySaturation, 0.75)
	if got := Get(v, KeySaturation); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Get after Put = %v, want 0.75", got)
	}
}

func TestKeyDomain(t *testing.T) {
	tests := []struct {
		key      Key
		space    Space
		min, max float64
	}{
		{KeyRed, SpaceRGB, 0, 255},
		{KeyHue, SpaceHSL, 0, 360},
		{KeyA, SpaceLAB, -128, 128},
		{KeyZ, SpaceXYZ, 0, 108.883},
		{KeyBlack, SpaceCMYK, 0, 1},
	}
	for _, tt := range tests {
		space, min, max := tt.key.Domain()
		if space != tt.space || min != tt.min || max != tt.max {
			t.Errorf("%v.Domain() = (%v, %v, %v), want (%v, %v, %v)",
				tt.key, space, min, max, tt.space, tt.min, tt.max)
		}
	}
}

func TestKeyString(t *testing.T) {
	if KeySaturation.String() != "saturation" {
		t.Errorf("KeySaturation.String() = %q", KeySaturation.String())
	}
	if Key(200).String() != "unknown" {
		t.Errorf("out-of-range key String() = %q", Key(200).String())
	}
}

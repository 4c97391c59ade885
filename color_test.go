package tint

import "testing"

func TestWrap(t *testing.T) {
	v := RGB{R: 10, G: 20, B: 30, Alpha: 1}
	c := Wrap(v)
	if c.Value() != Value(v) {
		t.Errorf("Wrap().Value() = %+v, want %+v", c.Value(), v)
	}
	if c.Format() != FormatHex {
		t.Errorf("default format = %v, want %v", c.Format(), FormatHex)
	}
}

func TestWrapClampsValue(t *testing.T) {
	c := Wrap(RGB{R: 300, G: -1, B: 30, Alpha: 2})
	want := RGB{R: 255, G: 0, B: 30, Alpha: 1}
	if c.Value() != Value(want) {
		t.Errorf("Wrap stored %+v, want clamped %+v", c.Value(), want)
	}
}

func TestWrapIdempotent(t *testing.T) {
	c := Wrap(RGB{R: 1, G: 2, B: 3, Alpha: 1}).WithFormat(FormatHSL)
	if got := Wrap(c); got != c {
		t.Errorf("Wrap(Color) = %+v, want unchanged", got)
	}
}

func TestWithFormat(t *testing.T) {
	c := Wrap(RGB{R: 255, G: 0, B: 0, Alpha: 1})
	r := c.WithFormat(FormatRGB)
	if c.Format() != FormatHex {
		t.Error("WithFormat mutated the receiver")
	}
	if r.String() != "rgb(255 0 0)" {
		t.Errorf("String() = %q, want rgb(255 0 0)", r.String())
	}
}

func TestColorString(t *testing.T) {
	if got := Wrap(RGB{R: 255, G: 127, B: 0, Alpha: 1}).String(); got != "#FF7F00" {
		t.Errorf("String() = %q, want #FF7F00", got)
	}
}

func TestFlattenAgainstWhite(t *testing.T) {
	c := Wrap(RGB{R: 255, G: 0, B: 0, Alpha: 0.5})
	got := c.Flatten()
	want := RGB{R: 255, G: 128, B: 128, Alpha: 1}
	if got.Value() != Value(want) {
		t.Errorf("Flatten() = %+v, want %+v", got.Value(), want)
	}
}

func TestFlattenAgainstBackground(t *testing.T) {
	bg := RGB{R: 0, G: 0, B: 0, Alpha: 1}
	c := Wrap(RGB{R: 255, G: 0, B: 0, Alpha: 0.5}).WithBackground(bg)
	got := c.Flatten()
	want := RGB{R: 128, G: 0, B: 0, Alpha: 1}
	if got.Value() != Value(want) {
		t.Errorf("Flatten() over black = %+v, want %+v", got.Value(), want)
	}
}

func TestFlattenOpaqueIsNoop(t *testing.T) {
	c := Wrap(RGB{R: 12, G: 34, B: 56, Alpha: 1})
	if got := c.Flatten(); got != c {
		t.Errorf("Flatten of opaque color = %+v, want unchanged", got)
	}
}

func TestFlattenKeepsSpace(t *testing.T) {
	h := Convert(RGB{R: 255, G: 0, B: 0, Alpha: 0.5}, SpaceHSL)
	got := Wrap(h).Flatten()
	if got.Space() != SpaceHSL {
		t.Errorf("Flatten changed space to %v, want %v", got.Space(), SpaceHSL)
	}
	p := got.Pivot()
	if p.Alpha != 1 {
		t.Errorf("flattened alpha = %v, want 1", p.Alpha)
	}
}

func TestColorForwardsPivot(t *testing.T) {
	v := RGB{R: 9, G: 8, B: 7, Alpha: 0.5}
	if got := Wrap(v).Pivot(); got != v.Pivot() {
		t.Errorf("Color.Pivot() = %+v, want %+v", got, v.Pivot())
	}
}

func TestBackgroundAccessors(t *testing.T) {
	c := Wrap(RGB{R: 1, G: 1, B: 1, Alpha: 1})
	if c.Background() != nil {
		t.Errorf("default background = %v, want nil", c.Background())
	}
	bg := RGB{R: 250, G: 250, B: 250, Alpha: 1}
	withBG := c.WithBackground(bg)
	if withBG.Background() != Value(bg) {
		t.Errorf("Background() = %v, want %+v", withBG.Background(), bg)
	}
	if c.Background() != nil {
		t.Error("WithBackground mutated the receiver")
	}
}

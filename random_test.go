package tint

import (
	"math/rand/v2"
	"testing"
)

func TestRandomDeterministicSource(t *testing.T) {
	a := Random(WithRand(rand.New(rand.NewPCG(1, 2))))
	b := Random(WithRand(rand.New(rand.NewPCG(1, 2))))
	if a != b {
		t.Errorf("same seed produced %v and %v", a, b)
	}
}

func TestRandomOpaqueInRange(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 100; i++ {
		c := Random(WithRand(r))
		v := c.Value().(RGB)
		if v.R < 0 || v.R > 255 || v.G < 0 || v.G > 255 || v.B < 0 || v.B > 255 {
			t.Fatalf("channel out of range: %+v", v)
		}
		if v.Alpha != 1 {
			t.Fatalf("random color not opaque: %+v", v)
		}
	}
}

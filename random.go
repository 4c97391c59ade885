package tint

import "math/rand/v2"

// RandomOption configures Random.
type RandomOption func(*randomOptions)

type randomOptions struct {
	rand *rand.Rand
}

// WithRand supplies a deterministic random source, for reproducible
// palettes and tests.
func WithRand(r *rand.Rand) RandomOption {
	return func(o *randomOptions) { o.rand = r }
}

// Random returns a uniformly random opaque color.
func Random(opts ...RandomOption) Color {
	var o randomOptions
	for _, opt := range opts {
		opt(&o)
	}
	intn := rand.IntN
	if o.rand != nil {
		intn = o.rand.IntN
	}
	return Wrap(RGB{
		R:     intn(256),
		G:     intn(256),
		B:     intn(256),
		Alpha: 1,
	})
}

// File: config.go
// Role: functional-options configuration for graph constructors, mirrored
// directly from lvlath/builder's builderConfig/BuilderOption pair.
package construct

import "math/rand"

// Option customizes a constructor invocation, applied in order over a
// config seeded with defaults.
type Option func(cfg *config)

// config holds constructor-wide settings. Not safe for concurrent mutation;
// each Build call owns its own config.
type config struct {
	rng *rand.Rand // resolved PRNG; nil until WithSpec or WithRand runs
}

// newConfig applies opts over sensible defaults.
func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRand injects an explicit PRNG, overriding any seed derived from a
// GraphSpec. A nil rng is a no-op.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSpec seeds the constructor's PRNG deterministically from spec.Seed.
func WithSpec(spec GraphSpec) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(rand.NewSource(spec.seedInt64()))
	}
}

package gridgraph

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/labyrinth/weight"
)

// Option configures New.
type Option func(*Options)

// Options holds construction parameters.
type Options struct {
	// Policy drives the initial weight draw.
	Policy weight.Policy
	// Rand is the weight source; nil means weight.Policy.Draw's zero fallback.
	Rand *rand.Rand
}

// DefaultOptions returns Options with the Uniform policy and a time-seeded source.
func DefaultOptions() Options {
	return Options{
		Policy: weight.Uniform,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithPolicy selects the weight policy used at construction.
func WithPolicy(p weight.Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithRand injects an explicit weight source.
// Panics on nil; use WithZeroWeights for a deterministic all-zero graph.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gridgraph: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed creates a seeded source for reproducible weights.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithZeroWeights disables randomness: every edge starts at weight 0.
func WithZeroWeights() Option {
	return func(o *Options) {
		o.Rand = nil
	}
}

// Package outfit assembles and ranks outfit suggestions from a wardrobe.
package outfit

import (
	"github.com/okian/outfitter/internal/domain/season"
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithRandom sets the source used for outerwear/accessory picks and phrasing.
func WithRandom(r Random) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithSeed seeds the engine with a deterministic PCG source.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.rng = NewSeededRandom(seed)
	}
}

// WithCurrentSeason sets the season used when preferences ask for "current".
func WithCurrentSeason(s season.Season) Option {
	return func(e *Engine) {
		if _, ok := season.Parse(string(s)); ok {
			e.current = s
		}
	}
}

// WithCombinationBudget caps the number of base combinations enumerated per
// run across both outfit families.
func WithCombinationBudget(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.budget = n
		}
	}
}

// WithIDGenerator overrides how suggestion ids are produced.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		if fn != nil {
			e.newID = fn
		}
	}
}

package santa

import (
	"log/slog"
	"math/rand/v2"
)

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source. Nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rnd = r
		}
	}
}

// WithSeed makes the engine deterministic for a given seed.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.rnd = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithMaxAttempts caps the number of attempts. Zero or negative means no cap.
func WithMaxAttempts(n int) Option {
	return func(e *Engine) {
		if n < 0 {
			n = 0
		}
		e.maxAttempts = n
	}
}

// WithFeasibilityCheck toggles the matching precheck run before the first attempt.
// With the check disabled and no attempt cap, infeasible input never returns.
func WithFeasibilityCheck(enabled bool) Option {
	return func(e *Engine) {
		e.feasibilityCheck = enabled
	}
}

// WithLogger sets the logger used for attempt diagnostics. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithAttemptHook registers a callback invoked after each attempt.
func WithAttemptHook(fn func(Attempt)) Option {
	return func(e *Engine) {
		e.onAttempt = fn
	}
}

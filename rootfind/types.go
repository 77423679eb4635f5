// Package rootfind defines core types, configuration options, and sentinel
// errors for the scalar root finders (bisection and Newton–Raphson).
package rootfind

import (
	"errors"

	"github.com/katalvlaran/dualroot/dual"
)

// Sentinel errors returned by the root finders.
var (
	// ErrNilFunc indicates that a nil function was passed to a root finder.
	ErrNilFunc = errors.New("rootfind: function must be non-nil")

	// ErrBadEpsilon indicates a tolerance that is zero, negative, or NaN.
	ErrBadEpsilon = errors.New("rootfind: epsilon must be a positive number")

	// ErrInvalidBracket indicates that Bisection was called with endpoints
	// whose function values do not have opposite signs, so the interval is
	// not known to contain a root.
	ErrInvalidBracket = errors.New("rootfind: function values at endpoints must have opposite signs")

	// ErrNoConvergence indicates that the iteration budget was exhausted
	// before the tolerance was met (Newton's max iterations, or bisection's
	// defensive halving cap).
	ErrNoConvergence = errors.New("rootfind: did not converge within the iteration limit")

	// ErrBadMaxIterations indicates that WithMaxIterations was given a value
	// below 1, which would forbid any iteration at all.
	ErrBadMaxIterations = errors.New("rootfind: max iterations must be at least 1")
)

// Func is a real scalar function expressed over dual numbers, so that one
// definition serves both plain evaluation (via a Const seed) and exact
// differentiation. Newton requires this form; Bisection needs only a plain
// func(float64) float64 and is independent of the autodiff stack.
type Func func(dual.Dual[float64]) dual.Dual[float64]

// DefaultMaxIterations is Newton's iteration budget when not overridden.
const DefaultMaxIterations = 100

// Default wide bracket and loose tolerance used by Newton to derive an
// initial guess via bisection when the caller supplies none.
const (
	defaultBracketLo  = -1e10
	defaultBracketHi  = 1e10
	defaultBracketEps = 1e-2
)

// maxHalvings caps the bisection loop as a defensive measure. A float64
// interval collapses below any positive epsilon in well under 1100 halvings,
// so the cap never binds for valid inputs and the convergence contract is
// unchanged.
const maxHalvings = 4096

// Options configures Newton's iteration.
//
// InitialGuess    – starting iterate x₀; meaningful only when HasInitialGuess
//
//	is true. When absent, Newton derives a starting point by
//	bisecting the wide default bracket [-1e10, 1e10] at a
//	loose tolerance (1e-2).
//
// HasInitialGuess – explicit presence flag for InitialGuess; the zero value
//
//	means "absent, use the bisection fallback".
//
// MaxIterations   – iteration budget before ErrNoConvergence. Must be ≥ 1.
type Options struct {
	InitialGuess    float64 // starting iterate, if supplied
	HasInitialGuess bool    // whether InitialGuess was supplied
	MaxIterations   int     // iteration budget (≥ 1)
}

// Option represents a functional option for configuring Newton.
type Option func(*Options)

// WithInitialGuess supplies an explicit starting iterate, skipping the
// wide-bracket bisection fallback.
func WithInitialGuess(x0 float64) Option {
	return func(o *Options) {
		o.InitialGuess = x0
		o.HasInitialGuess = true
	}
}

// WithMaxIterations overrides the iteration budget.
// Must pass a value ≥ 1; smaller values cause ErrBadMaxIterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for further functional-options
// overrides.
//
// Defaults:
//   - InitialGuess:    absent (HasInitialGuess=false) — Newton falls back to
//     bisection over [-1e10, 1e10] with tolerance 1e-2.
//   - MaxIterations:   DefaultMaxIterations (100).
func DefaultOptions() Options {
	return Options{
		InitialGuess:    0,
		HasInitialGuess: false,
		MaxIterations:   DefaultMaxIterations,
	}
}

// Newton–Raphson: derivative-based root iteration with exact derivatives
// from forward-mode automatic differentiation.
//
// Algorithm outline:
//  1. Obtain a starting iterate x₀ — supplied via WithInitialGuess, or
//     derived by bisecting the wide default bracket [-1e10, 1e10] at a
//     loose tolerance so the caller need not pick one.
//  2. Repeat up to MaxIterations times:
//     fx = f(x); |fx| ≤ epsilon → x is the root.
//     dfx = exact derivative of f at x (dual.Derivative).
//     dfx = 0 → stationary point: nudge x by epsilon and continue
//     (local recovery, not an error — the Newton step is undefined there).
//     Otherwise x ← x − fx/dfx.
//  3. Budget exhausted → ErrNoConvergence.
//
// Convergence is local, not global: quadratic near a simple root, but
// sensitive to the starting point and to near-zero derivatives.
package rootfind

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dualroot/dual"
)

// Newton finds an approximate root of f via Newton–Raphson iteration,
// obtaining the derivative at each iterate exactly through the dual package.
//
// f must be expressed over dual numbers (see Func) so that the same
// definition serves both value evaluation and differentiation. Undefined
// operations inside f (division by zero, Log of a non-positive real, ...)
// surface as errors, wrapped with the iterate at which they occurred.
//
// Preconditions and validation (in order):
//  1. f must be non-nil (ErrNilFunc).
//  2. epsilon must be positive and not NaN (ErrBadEpsilon).
//
// Options customization:
//
//   - WithInitialGuess(x0): start from x0 instead of the bisection fallback.
//   - WithMaxIterations(n): override the 100-iteration default (n ≥ 1).
//
// Returns x with |f(x)| ≤ epsilon, or ErrNoConvergence after the budget is
// spent. Complexity: O(MaxIterations) evaluations of f and of its
// derivative.
func Newton(f Func, epsilon float64, opts ...Option) (float64, error) {
	// 1) Validate the function.
	if f == nil {
		return 0, ErrNilFunc
	}

	// 2) Validate the tolerance.
	if !(epsilon > 0) {
		return 0, fmt.Errorf("%w: got %v", ErrBadEpsilon, epsilon)
	}

	// 3) Build and apply options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 4) Resolve the starting iterate: explicit guess, or a rough root
	//    estimate from bisecting the wide default bracket.
	x := cfg.InitialGuess
	if !cfg.HasInitialGuess {
		x0, err := fallbackGuess(f)
		if err != nil {
			return 0, fmt.Errorf("rootfind: newton fallback guess: %w", err)
		}
		x = x0
	}

	// 5) Iterate the Newton update.
	for i := 0; i < cfg.MaxIterations; i++ {
		// 5a) Evaluate the function value at the current iterate.
		fx, err := eval(f, x)
		if err != nil {
			return 0, fmt.Errorf("rootfind: newton at x=%g: %w", x, err)
		}

		// 5b) Converged: the residual is within tolerance.
		if math.Abs(fx) <= epsilon {
			return x, nil
		}

		// 5c) Exact derivative at the iterate.
		dfx, err := dual.Derivative(f, x)
		if err != nil {
			return 0, fmt.Errorf("rootfind: newton derivative at x=%g: %w", x, err)
		}

		// 5d) Stationary point: the step fx/dfx is undefined. Perturb the
		//     iterate by epsilon and retry rather than failing.
		if dfx == 0 {
			x += epsilon
			continue
		}

		// 5e) Newton update.
		x -= fx / dfx
	}

	// 6) Budget exhausted without meeting the tolerance.
	return 0, fmt.Errorf("%w: %d iterations at epsilon=%g", ErrNoConvergence, cfg.MaxIterations, epsilon)
}

// eval computes the plain function value f(x) by seeding a constant
// (derivative 0) dual number, recovering any undefined-operation panic from
// the dual layer into an error return.
func eval(f Func, x float64) (y float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()

	return f(dual.Const(x)).Real, nil
}

// evalFunc adapts a dual-number Func to the plain-scalar form Bisection
// expects. Panics from undefined operations propagate to the caller, which
// must recover them (see fallbackGuess).
func evalFunc(f Func) func(float64) float64 {
	return func(x float64) float64 {
		return f(dual.Const(x)).Real
	}
}

// fallbackGuess derives Newton's starting iterate by bisecting the wide
// default bracket at a loose tolerance. The wide endpoints can trip domain
// checks inside f (e.g. a logarithm evaluated at -1e10), so any
// undefined-operation panic raised during the bisection is recovered here
// and returned as an error, keeping the public API panic-free.
func fallbackGuess(f Func) (x0 float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()

	return Bisection(evalFunc(f), defaultBracketLo, defaultBracketHi, defaultBracketEps)
}

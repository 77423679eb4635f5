// Bisection: bracket-halving root search over plain scalars.
//
// Bisection needs only real-valued function evaluation — it has no
// dependency on the dual-number stack — and doubles as Newton's fallback
// initial-guess generator (see newton.go).
//
// Algorithm outline:
//  1. Require f(a)·f(b) ≤ 0: the endpoints bracket at least one root.
//  2. Repeat: p = (a+b)/2. If |f(p)| ≤ epsilon, p is the root.
//     Otherwise keep whichever half preserves the sign opposition
//     (f(a)·f(p) < 0 keeps [a,p]; else [p,b]) — the bracket invariant
//     holds by construction as the interval shrinks.
//  3. Stop when |b−a| ≤ epsilon and return the final midpoint.
//
// Each pass halves the bracket width, so convergence is geometric:
// at most log₂((b−a)/epsilon) halvings in exact arithmetic. A defensive
// cap (maxHalvings) bounds the loop against floating-point pathologies
// without changing the contract.
package rootfind

import (
	"fmt"
	"math"
)

// Bisection finds an approximate root of f inside [a, b] by repeated
// interval halving.
//
// Preconditions and validation (in order):
//  1. f must be non-nil (ErrNilFunc).
//  2. epsilon must be positive and not NaN (ErrBadEpsilon).
//  3. f(a)·f(b) must be ≤ 0 (ErrInvalidBracket) — checked before any
//     iteration.
//
// Returns a point p with either |f(p)| ≤ epsilon or p the midpoint of a
// bracket no wider than epsilon. Complexity: O(log₂((b−a)/epsilon))
// evaluations of f.
func Bisection(f func(float64) float64, a, b, epsilon float64) (float64, error) {
	// 1) Validate the function.
	if f == nil {
		return 0, ErrNilFunc
	}

	// 2) Validate the tolerance.
	if !(epsilon > 0) {
		return 0, fmt.Errorf("%w: got %v", ErrBadEpsilon, epsilon)
	}

	// 3) Validate the bracket: endpoint values must oppose in sign (or one
	//    of them is already a root).
	fa := f(a)
	if fa*f(b) > 0 {
		return 0, fmt.Errorf("%w: f(%g)·f(%g) > 0", ErrInvalidBracket, a, b)
	}

	// 4) Halve until the bracket is narrower than epsilon.
	for i := 0; math.Abs(b-a) > epsilon; i++ {
		// Defensive cap; never binds for a valid float64 bracket.
		if i >= maxHalvings {
			return 0, fmt.Errorf("%w: bracket stalled at [%g, %g]", ErrNoConvergence, a, b)
		}

		// 4a) Midpoint of the current bracket.
		p := (a + b) / 2
		fp := f(p)

		// 4b) Close enough in function value: accept p immediately.
		if math.Abs(fp) <= epsilon {
			return p, nil
		}

		// 4c) Keep the half that still brackets a sign change.
		if fa*fp < 0 {
			b = p // root lies in [a, p]
		} else {
			a = p // root lies in [p, b]
			fa = fp
		}
	}

	// 5) The bracket is narrower than epsilon; its midpoint is the best
	//    approximation available.
	return (a + b) / 2, nil
}

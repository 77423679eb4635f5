// Package rootfind provides two scalar root finders: bisection, a
// guaranteed bracket-halving search, and Newton–Raphson, a fast locally
// convergent iteration powered by exact derivatives from the dual package.
//
// Overview:
//
//   - Bisection(f, a, b, epsilon) requires only that f(a) and f(b) oppose in
//     sign; it halves the bracket until it is narrower than epsilon, never
//     losing the root. Convergence is geometric — one binary digit of
//     accuracy per evaluation — and guaranteed for any valid bracket.
//   - Newton(f, epsilon, ...) applies the update x ← x − f(x)/f'(x), with
//     f'(x) computed exactly by forward-mode automatic differentiation
//     rather than a finite-difference estimate. Near a simple root it
//     converges quadratically; away from one it may wander, so the
//     iteration budget (default 100) bounds the attempt.
//   - When no initial guess is supplied, Newton bootstraps itself with a
//     loose bisection pass over the wide bracket [-1e10, 1e10], trading a
//     few extra evaluations for not having to pick a starting point.
//
// Choosing between them:
//
//   - Use Bisection when you can bracket the root and want certainty.
//   - Use Newton when evaluations are cheap, f is smooth, and speed matters;
//     it needs f in dual-number form (see Func) for the derivative step.
//   - Newton on the derivative of f (differentiate first, then root-find)
//     locates extrema of f — see the package examples.
//
// Error handling (sentinel errors):
//
//   - ErrNilFunc:          nil function passed to either finder.
//   - ErrBadEpsilon:       tolerance zero, negative, or NaN.
//   - ErrInvalidBracket:   bisection endpoints do not bracket a sign change.
//   - ErrNoConvergence:    iteration budget exhausted (Newton), or the
//     defensive halving cap reached (bisection; never for valid inputs).
//   - ErrBadMaxIterations: WithMaxIterations given a value below 1 (panic
//     at option construction).
//
// Undefined arithmetic inside f during Newton's evaluation or
// differentiation (division by zero, Log of a non-positive real, Abs at
// zero) is reported as an error wrapped around the dual package's
// sentinels, annotated with the iterate at which it occurred.
//
// The stationary-point case is the one deliberate internal recovery: when
// f'(x) = 0 the Newton step is undefined, so the iterate is perturbed by
// epsilon and the loop continues instead of failing.
//
// Example:
//
//	// Root of x³ − x − 2, letting Newton pick its own starting point.
//	f := func(x dual.Dual[float64]) dual.Dual[float64] {
//	    return x.Pow(3).Sub(x).SubScalar(2)
//	}
//	root, err := rootfind.Newton(f, 1e-10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%.7f\n", root) // 1.5213797
//
// All functions are pure: no shared state, no goroutines, safe for
// concurrent use.
package rootfind

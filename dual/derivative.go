// Differentiation driver: seed, evaluate once, extract the derivative.
package dual

import "fmt"

// Derivative computes the exact first derivative of f at x by forward-mode
// automatic differentiation.
//
// It seeds the independent variable as New(x, 1) — "x, whose derivative with
// respect to itself is 1" — evaluates f once on that seed, and returns the
// Dual component of the result. The value is exact (no finite-difference
// truncation error) for any f expressed purely in terms of the arithmetic
// operations and elementary functions of this package, at a cost
// proportional to the number of operations in f.
//
// Any undefined operation encountered during evaluation (division by a zero
// Real component, Pow with exponent < 1, Log of a non-positive real, Abs at
// zero or of a complex value) is recovered and returned as an error; the
// sentinels remain matchable with errors.Is.
func Derivative[T Scalar](f func(Dual[T]) Dual[T], x T) (deriv T, err error) {
	// 1) Convert arithmetic-layer panics into an ordinary error return.
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				// Re-raise anything that is not one of ours.
				panic(r)
			}
			err = e
		}
	}()

	// 2) Seed the variable and evaluate f once; the evaluation graph exists
	//    only implicitly in the arithmetic, never as a structure.
	return f(New(x, 1)).Dual, nil
}

// MustDerivative is Derivative for callers that treat an undefined operation
// as a programming error: it panics instead of returning the error.
// Intended for demonstration and test scaffolding.
func MustDerivative[T Scalar](f func(Dual[T]) Dual[T], x T) T {
	d, err := Derivative(f, x)
	if err != nil {
		panic(fmt.Errorf("dual: MustDerivative: %w", err))
	}

	return d
}

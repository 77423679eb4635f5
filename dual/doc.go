// Package dual implements forward-mode automatic differentiation over
// dual numbers: two-component values (Real, Dual) that carry a function
// value together with its exact first derivative through every operation.
//
// Overview:
//
//   - A dual number behaves like an ordinary scalar extended with an
//     infinitesimal unit E satisfying E² = 0, so that
//     f(a + bE) = f(a) + b·f'(a)E. Evaluating an expression on the seed
//     (x, 1) therefore produces (f(x), f'(x)) in one pass.
//   - The arithmetic core (Add, Sub, Mul, Div, Pow) implements the exact
//     sum, product, and quotient rules; the elementary-function layer
//     (Exp, Log, Sin, Cos, Abs) adds the chain rule for the transcendental
//     building blocks.
//   - Derivative(f, x) wraps the seed-evaluate-extract cycle behind a single
//     call and converts any undefined operation into an error return.
//
// When to use:
//
//   - Whenever you need machine-precision first derivatives of a scalar
//     function you can write with this package's operations — root finding
//     (see the rootfind package), sensitivity analysis, extremum hunting via
//     the derivative's roots.
//   - Not for symbolic differentiation, gradients of multivariate functions,
//     or reverse-mode (tape-based) differentiation; one seeded variable per
//     evaluation is the model.
//
// Scalar domains:
//
//   - Dual[float64] for real analysis, Dual[complex128] for complex.
//   - Log range-checks real inputs only; the complex logarithm is taken as
//     defined for all nonzero values and zero is not separately checked.
//   - Abs is real-only: its derivative does not exist at 0, and the complex
//     absolute value is nowhere complex-differentiable. Both cases fail
//     loudly rather than approximate.
//
// Mixed scalar/dual arithmetic:
//
//   - One promotion rule: a bare scalar k participates as Const(k), i.e.
//     (k, 0). The *Scalar methods apply it on the right of a dual receiver;
//     Const(k).Sub(d) and Const(k).Div(d) give the right-scalar forms with
//     identical semantics, including the zero-divisor check.
//
// Error handling:
//
//   - Undefined operations panic with wrapped sentinel errors at the point
//     of violation, so a composed expression fails fast mid-evaluation.
//   - Derivative recovers these panics and returns them as ordinary errors;
//     match with errors.Is against ErrDivisionByZero, ErrNonPositivePower,
//     ErrNonPositiveLog, ErrAbsAtZero, ErrComplexAbs.
//
// Example:
//
//	// f(x) = x² · sin(x)
//	f := func(x dual.Dual[float64]) dual.Dual[float64] {
//	    return x.Pow(2).Mul(dual.Sin(x))
//	}
//	df, err := dual.Derivative(f, 1.5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(df) // 2·1.5·sin(1.5) + 1.5²·cos(1.5)
//
// Complexity: every operation is O(1); Derivative costs one evaluation of f.
// All values are immutable; the package holds no state and is safe for
// concurrent use.
package dual

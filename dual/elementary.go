// Elementary-function layer: exp, log, sin, cos, abs over dual numbers.
//
// Each function combines the real-valued transform with its chain-rule
// derivative: for input (a, b) the result is (f(a), b·f'(a)) — the outer
// derivative evaluated at the inner value, multiplied by the inner
// derivative. Real inputs use package math, complex inputs package
// math/cmplx; domain checks fire only where the real-domain function is
// genuinely undefined.
package dual

import (
	"fmt"
	"math"
	"math/cmplx"
)

// chain applies an elementary function to d using the chain rule.
// realFn and cplxFn each return the pair (f(a), f'(a)) for their domain;
// the result is (f(a), b·f'(a)).
func chain[T Scalar](d Dual[T], realFn func(float64) (float64, float64), cplxFn func(complex128) (complex128, complex128)) Dual[T] {
	switch a := any(d.Real).(type) {
	case float64:
		v, dv := realFn(a)

		return Dual[T]{Real: any(v).(T), Dual: any(any(d.Dual).(float64) * dv).(T)}
	case complex128:
		v, dv := cplxFn(a)

		return Dual[T]{Real: any(v).(T), Dual: any(any(d.Dual).(complex128) * dv).(T)}
	default:
		// Unreachable: Scalar admits only float64 and complex128.
		panic("dual: unsupported scalar type")
	}
}

// Exp returns e^d: (e^a, b·e^a).
func Exp[T Scalar](d Dual[T]) Dual[T] {
	return chain(d,
		func(a float64) (float64, float64) {
			e := math.Exp(a)

			return e, e
		},
		func(a complex128) (complex128, complex128) {
			e := cmplx.Exp(a)

			return e, e
		},
	)
}

// Log returns the natural logarithm of d: (ln a, b/a).
//
// Panics with ErrNonPositiveLog if d.Real is real and ≤ 0. Complex inputs
// bypass the check: the complex logarithm is defined for all nonzero values,
// and zero is deliberately not checked in the complex domain (cmplx.Log(0)
// yields −Inf, matching the underlying library).
func Log[T Scalar](d Dual[T]) Dual[T] {
	// 1) Range-check the real domain only.
	if a, ok := any(d.Real).(float64); ok && a <= 0 {
		panic(fmt.Errorf("%w: log(%v)", ErrNonPositiveLog, a))
	}

	// 2) ln'(a) = 1/a in both domains.
	return chain(d,
		func(a float64) (float64, float64) { return math.Log(a), 1 / a },
		func(a complex128) (complex128, complex128) { return cmplx.Log(a), 1 / a },
	)
}

// Cos returns the cosine of d: (cos a, −b·sin a).
func Cos[T Scalar](d Dual[T]) Dual[T] {
	return chain(d,
		func(a float64) (float64, float64) { return math.Cos(a), -math.Sin(a) },
		func(a complex128) (complex128, complex128) { return cmplx.Cos(a), -cmplx.Sin(a) },
	)
}

// Sin returns the sine of d: (sin a, b·cos a).
func Sin[T Scalar](d Dual[T]) Dual[T] {
	return chain(d,
		func(a float64) (float64, float64) { return math.Sin(a), math.Cos(a) },
		func(a complex128) (complex128, complex128) { return cmplx.Sin(a), cmplx.Cos(a) },
	)
}

// Abs returns the absolute value of d: (|a|, b·sign a), defined for real
// nonzero inputs only.
//
// Panics with ErrAbsAtZero if d.Real == 0 (the derivative of |x| does not
// exist at the origin) and with ErrComplexAbs for complex inputs (the
// complex absolute value is nowhere complex-differentiable). Neither case
// is approximated.
func Abs[T Scalar](d Dual[T]) Dual[T] {
	// 1) Reject the complex domain outright.
	a, ok := any(d.Real).(float64)
	if !ok {
		panic(fmt.Errorf("%w: abs(%v)", ErrComplexAbs, d.Real))
	}

	// 2) Reject the origin, where |x| has no derivative.
	if a == 0 {
		panic(fmt.Errorf("%w", ErrAbsAtZero))
	}

	// 3) |x|' = sign(x) away from zero.
	return chain(d,
		func(a float64) (float64, float64) { return math.Abs(a), math.Copysign(1, a) },
		nil, // complex inputs rejected above
	)
}

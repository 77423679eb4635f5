// Arithmetic core: the dual-number operator set.
//
// Writing the operands as (a, b) and (c, d) — value and derivative — the
// operations implement the exact first-order rules:
//
//	add: (a+c, b+d)
//	sub: (a−c, b−d)
//	mul: (a·c, b·c + a·d)              (product rule)
//	div: (a/c, (b·c − a·d)/c²)         (quotient rule, c ≠ 0)
//	pow: n-fold self-multiplication     (n ≥ 1)
//
// Mixed scalar/dual operands follow the Const promotion rule (scalar k
// behaves as (k, 0)); the *Scalar convenience methods below apply it for
// the common left-dual case, and Const(k).Sub(d) / Const(k).Div(d) cover
// the right-scalar forms with the same semantics.
//
// Undefined operations — division by a zero Real component, exponents
// below 1 — fail fast by panicking with a wrapped sentinel error before any
// arithmetic is attempted. Derivative (and rootfind.Newton) recover these
// panics into ordinary error returns at the API boundary.
package dual

import "fmt"

// Add returns the sum of two dual numbers.
func (d Dual[T]) Add(o Dual[T]) Dual[T] {
	return Dual[T]{Real: d.Real + o.Real, Dual: d.Dual + o.Dual}
}

// AddScalar returns d + k, treating k as Const(k).
func (d Dual[T]) AddScalar(k T) Dual[T] {
	return d.Add(Const(k))
}

// Sub returns the difference of two dual numbers.
// For the right-scalar form k − d, use Const(k).Sub(d).
func (d Dual[T]) Sub(o Dual[T]) Dual[T] {
	return Dual[T]{Real: d.Real - o.Real, Dual: d.Dual - o.Dual}
}

// SubScalar returns d − k, treating k as Const(k).
func (d Dual[T]) SubScalar(k T) Dual[T] {
	return d.Sub(Const(k))
}

// Mul returns the product of two dual numbers via the product rule.
func (d Dual[T]) Mul(o Dual[T]) Dual[T] {
	return Dual[T]{
		Real: d.Real * o.Real,
		Dual: d.Dual*o.Real + d.Real*o.Dual,
	}
}

// MulScalar returns d · k, treating k as Const(k).
func (d Dual[T]) MulScalar(k T) Dual[T] {
	return d.Mul(Const(k))
}

// Div returns the quotient of two dual numbers via the quotient rule.
//
// Panics with ErrDivisionByZero if o.Real == 0, before any arithmetic.
// The check is symmetric: dividing a scalar by a dual number with zero Real
// component (Const(k).Div(d)) fails the same way.
func (d Dual[T]) Div(o Dual[T]) Dual[T] {
	// 1) Fail fast on a zero divisor; the quotient rule divides by o.Real².
	if o.Real == 0 {
		panic(fmt.Errorf("%w: %v / %v", ErrDivisionByZero, d, o))
	}

	// 2) Apply the quotient rule.
	return Dual[T]{
		Real: d.Real / o.Real,
		Dual: (d.Dual*o.Real - d.Real*o.Dual) / (o.Real * o.Real),
	}
}

// DivScalar returns d / k, treating k as Const(k).
// Panics with ErrDivisionByZero if k == 0.
func (d Dual[T]) DivScalar(k T) Dual[T] {
	return d.Div(Const(k))
}

// Pow raises d to a positive integer power by repeated self-multiplication,
// so the derivative component accumulates through the product rule with no
// separate power-rule formula. Pow(1) is d itself.
//
// Panics with ErrNonPositivePower if n < 1: zero, negative, and fractional
// exponents are outside the contract and are rejected rather than guessed at.
func (d Dual[T]) Pow(n int) Dual[T] {
	// 1) Reject undefined exponents before any work.
	if n < 1 {
		panic(fmt.Errorf("%w: got %d", ErrNonPositivePower, n))
	}

	// 2) n−1 successive self-multiplications.
	result := d
	for i := 1; i < n; i++ {
		result = result.Mul(d)
	}

	return result
}

// Neg returns −d, the additive inverse of both components.
func (d Dual[T]) Neg() Dual[T] {
	return Dual[T]{Real: -d.Real, Dual: -d.Dual}
}

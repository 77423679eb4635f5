// Package dual defines the dual-number value type and its scalar domain
// for forward-mode automatic differentiation.
//
// A dual number is the pair (Real, Dual) where Real is a function value and
// Dual is the exact derivative of that value with respect to one designated
// independent variable. Seeding the variable as (x, 1) and evaluating an
// expression built from the arithmetic operations and elementary functions
// of this package propagates the derivative in lockstep with the value, so
// the Dual component of the result is the exact first derivative — no
// finite-difference truncation error.
//
// Scalar domain:
//
//	– Real and Dual share one scalar type, either float64 or complex128.
//	– Domain checks (Log, Abs) dispatch on which domain is active: real
//	  inputs are range-checked, complex inputs follow the complex-plane
//	  definitions of the elementary functions.
//
// Errors (sentinel):
//
//	– ErrDivisionByZero   if a divisor's Real component is zero (either side).
//	– ErrNonPositivePower if Pow is called with an exponent below 1.
//	– ErrNonPositiveLog   if Log is applied to a real value ≤ 0.
//	– ErrAbsAtZero        if Abs is applied at 0, where |x| is not differentiable.
//	– ErrComplexAbs       if Abs is applied to a complex value.
package dual

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by the arithmetic core and the elementary-function layer.
var (
	// ErrDivisionByZero indicates division by a dual number (or scalar) whose
	// Real component is zero. The check fires before any arithmetic is
	// attempted and applies symmetrically to scalar/dual right-division.
	ErrDivisionByZero = errors.New("dual: division by zero real component")

	// ErrNonPositivePower indicates that Pow was called with an exponent < 1.
	// Only positive integer exponents are defined; zero, negative, or
	// fractional powers are outside the modeled contract and are rejected
	// rather than guessed at.
	ErrNonPositivePower = errors.New("dual: power exponent must be a positive integer")

	// ErrNonPositiveLog indicates that Log was applied to a real value ≤ 0,
	// where the real logarithm is undefined. Complex inputs are not subject
	// to this check.
	ErrNonPositiveLog = errors.New("dual: logarithm is undefined for non-positive real values")

	// ErrAbsAtZero indicates that Abs was applied at zero, where the
	// derivative of the absolute value does not exist.
	ErrAbsAtZero = errors.New("dual: derivative of absolute value is undefined at 0")

	// ErrComplexAbs indicates that Abs was applied to a complex value.
	// The complex absolute value is nowhere complex-differentiable, so the
	// operation is unsupported rather than approximated.
	ErrComplexAbs = errors.New("dual: absolute value of a complex number is nowhere differentiable")
)

// Scalar is the set of scalar domains a dual number may carry.
// All arithmetic operations are defined for both; domain-restricted
// elementary functions dispatch on the concrete type.
type Scalar interface {
	float64 | complex128
}

// Dual is an immutable (value, derivative) pair over a single scalar domain T.
//
// Invariant: Dual is always interpreted as d(Real)/dx for the one variable
// seeded with derivative 1 at the start of an evaluation (see Derivative).
// Every operation returns a fresh value; no operation mutates its receiver
// or shares state across calls.
type Dual[T Scalar] struct {
	Real T // function value
	Dual T // derivative value
}

// New constructs a dual number with the given value and derivative components.
func New[T Scalar](real, dual T) Dual[T] {
	return Dual[T]{Real: real, Dual: dual}
}

// Const promotes a bare scalar to a dual number with derivative 0.
// This is the single promotion rule for mixed scalar/dual arithmetic:
// a plain constant does not vary with the independent variable, so its
// derivative component is zero.
func Const[T Scalar](k T) Dual[T] {
	return Dual[T]{Real: k, Dual: 0}
}

// String renders the pair as "<real>, <dual>E", with E marking the dual unit.
func (d Dual[T]) String() string {
	return fmt.Sprintf("%v, %vE", d.Real, d.Dual)
}

// Package dual_test contains unit tests for the dual-number arithmetic core.
// These tests validate the exact sum, product, and quotient rules, the
// scalar-promotion rule, power semantics, and the fail-fast behavior of
// undefined operations.
package dual_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dualroot/dual"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requirePanicsWithErrorIs runs fn and asserts that it panics with an error
// matching the given sentinel via errors.Is.
func requirePanicsWithErrorIs(t *testing.T, sentinel error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		assert.ErrorIs(t, err, sentinel)
	}()
	fn()
}

// ------------------------------------------------------------------------
// 1. Additive operations: sum/difference rules and scalar forms.
// ------------------------------------------------------------------------

// TestDual_AddSumsBothComponents verifies (a+c, b+d).
func TestDual_AddSumsBothComponents(t *testing.T) {
	got := dual.New(2.0, 3.0).Add(dual.New(5.0, 7.0))
	assert.Equal(t, dual.New(7.0, 10.0), got, "Add must sum value and derivative componentwise")
}

// TestDual_AddScalarKeepsDerivative verifies (a+k, b): a constant shifts the
// value but contributes no derivative.
func TestDual_AddScalarKeepsDerivative(t *testing.T) {
	d := dual.New(2.0, 3.0)
	got := d.AddScalar(10)
	assert.Equal(t, dual.New(12.0, 3.0), got, "scalar addition must not change the derivative")

	// Commutative scalar form: k + d via Const promotion gives the same result.
	assert.Equal(t, got, dual.Const(10.0).Add(d), "left- and right-scalar addition must agree")
}

// TestDual_SubDiffersBothComponents verifies (a−c, b−d) and both scalar forms.
func TestDual_SubDiffersBothComponents(t *testing.T) {
	d := dual.New(5.0, 2.0)
	assert.Equal(t, dual.New(2.0, 1.0), d.Sub(dual.New(3.0, 1.0)), "Sub must subtract componentwise")
	assert.Equal(t, dual.New(2.0, 2.0), d.SubScalar(3), "d − k keeps the derivative")

	// Right-scalar form k − d negates the derivative.
	assert.Equal(t, dual.New(-2.0, -2.0), dual.Const(3.0).Sub(d), "k − d must negate the derivative")
}

// ------------------------------------------------------------------------
// 2. Multiplicative operations: product and quotient rules.
// ------------------------------------------------------------------------

// TestDual_MulProductRule verifies (a·c, b·c + a·d).
func TestDual_MulProductRule(t *testing.T) {
	got := dual.New(2.0, 3.0).Mul(dual.New(5.0, 7.0))
	assert.Equal(t, dual.New(10.0, 29.0), got, "Mul must apply the product rule: 3·5 + 2·7 = 29")
}

// TestDual_MulScalarScalesBoth verifies (a·k, b·k).
func TestDual_MulScalarScalesBoth(t *testing.T) {
	d := dual.New(2.0, 3.0)
	got := d.MulScalar(4)
	assert.Equal(t, dual.New(8.0, 12.0), got, "scalar multiplication scales both components")
	assert.Equal(t, got, dual.Const(4.0).Mul(d), "left- and right-scalar multiplication must agree")
}

// TestDual_DivQuotientRule verifies (a/c, (b·c − a·d)/c²).
func TestDual_DivQuotientRule(t *testing.T) {
	got := dual.New(6.0, 3.0).Div(dual.New(2.0, 1.0))
	// Value: 6/2 = 3. Derivative: (3·2 − 6·1)/2² = 0.
	assert.Equal(t, dual.New(3.0, 0.0), got, "Div must apply the quotient rule")
}

// TestDual_DivScalarUsesZeroDerivative verifies that d / k follows the same
// quotient rule with the scalar's derivative taken as 0.
func TestDual_DivScalarUsesZeroDerivative(t *testing.T) {
	got := dual.New(6.0, 3.0).DivScalar(2)
	assert.Equal(t, dual.New(3.0, 1.5), got, "d / k divides both components by k")
}

// TestDual_DivByZeroRealPanics verifies the fail-fast division check on both
// sides: dual/dual, dual/scalar, and scalar/dual.
func TestDual_DivByZeroRealPanics(t *testing.T) {
	zeroReal := dual.New(0.0, 1.0)

	// Left division by a dual with zero Real component.
	requirePanicsWithErrorIs(t, dual.ErrDivisionByZero, func() {
		dual.New(5.0, 1.0).Div(zeroReal)
	})

	// Division by the zero scalar.
	requirePanicsWithErrorIs(t, dual.ErrDivisionByZero, func() {
		dual.New(5.0, 1.0).DivScalar(0)
	})

	// Right division: scalar / dual with zero Real component.
	requirePanicsWithErrorIs(t, dual.ErrDivisionByZero, func() {
		dual.Const(5.0).Div(zeroReal)
	})
}

// ------------------------------------------------------------------------
// 3. Pow: repeated self-multiplication and exponent-domain rejection.
// ------------------------------------------------------------------------

// TestDual_PowOneIsIdentity verifies Pow(1) returns the value unchanged.
func TestDual_PowOneIsIdentity(t *testing.T) {
	d := dual.New(3.0, 2.0)
	assert.Equal(t, d, d.Pow(1), "Pow(1) must be the identity")
}

// TestDual_PowMatchesPowerRule verifies that seeding (a, 1) and raising to n
// accumulates the derivative n·a^(n−1) through the product rule.
func TestDual_PowMatchesPowerRule(t *testing.T) {
	for _, a := range []float64{-2.0, 0.5, 3.0} {
		for n := 1; n <= 6; n++ {
			got := dual.New(a, 1.0).Pow(n)
			assert.InDelta(t, math.Pow(a, float64(n)), got.Real, 1e-9,
				"Pow(%d) value at a=%g", n, a)
			assert.InDelta(t, float64(n)*math.Pow(a, float64(n-1)), got.Dual, 1e-9,
				"Pow(%d) derivative at a=%g must equal n·a^(n-1)", n, a)
		}
	}
}

// TestDual_PowRejectsNonPositiveExponents verifies fail-fast rejection of
// exponents outside the contract.
func TestDual_PowRejectsNonPositiveExponents(t *testing.T) {
	d := dual.New(3.0, 1.0)
	requirePanicsWithErrorIs(t, dual.ErrNonPositivePower, func() { d.Pow(0) })
	requirePanicsWithErrorIs(t, dual.ErrNonPositivePower, func() { d.Pow(-2) })
}

// ------------------------------------------------------------------------
// 4. Promotion, negation, rendering, and the complex domain.
// ------------------------------------------------------------------------

// TestDual_ConstHasZeroDerivative verifies the promotion rule: a bare scalar
// is a dual number that does not vary with the independent variable.
func TestDual_ConstHasZeroDerivative(t *testing.T) {
	assert.Equal(t, dual.New(7.0, 0.0), dual.Const(7.0), "Const must carry derivative 0")
}

// TestDual_NegFlipsBothComponents verifies the additive inverse.
func TestDual_NegFlipsBothComponents(t *testing.T) {
	assert.Equal(t, dual.New(-2.0, -3.0), dual.New(2.0, 3.0).Neg())
}

// TestDual_StringRendersPair verifies the "<real>, <dual>E" rendering.
func TestDual_StringRendersPair(t *testing.T) {
	assert.Equal(t, "3, 1E", dual.New(3.0, 1.0).String())
}

// TestDual_ComplexArithmetic verifies that the operator rules hold verbatim
// in the complex domain.
func TestDual_ComplexArithmetic(t *testing.T) {
	x := dual.New(2+1i, 1+0i)

	// (2+i)² = 3+4i; derivative 2·(2+i) = 4+2i by the product rule.
	sq := x.Mul(x)
	assert.Equal(t, complex(3, 4), sq.Real, "complex square value")
	assert.Equal(t, complex(4, 2), sq.Dual, "complex square derivative")

	// Division by a complex dual with zero Real component still fails fast.
	requirePanicsWithErrorIs(t, dual.ErrDivisionByZero, func() {
		x.Div(dual.New(0+0i, 1+0i))
	})
}

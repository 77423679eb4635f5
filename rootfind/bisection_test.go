// Package rootfind_test contains unit tests for the bisection root finder:
// input validation, bracket-invariant preservation, and convergence accuracy.
package rootfind_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dualroot/rootfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Validation: errors are returned before any iteration.
// ------------------------------------------------------------------------

// TestBisection_NilFunc verifies the nil-function check.
func TestBisection_NilFunc(t *testing.T) {
	_, err := rootfind.Bisection(nil, 0, 1, 1e-6)
	assert.ErrorIs(t, err, rootfind.ErrNilFunc)
}

// TestBisection_BadEpsilon verifies rejection of non-positive and NaN
// tolerances.
func TestBisection_BadEpsilon(t *testing.T) {
	f := func(x float64) float64 { return x }

	for _, eps := range []float64{0, -1e-6, math.NaN()} {
		_, err := rootfind.Bisection(f, -1, 1, eps)
		assert.ErrorIs(t, err, rootfind.ErrBadEpsilon, "epsilon=%v must be rejected", eps)
	}
}

// TestBisection_InvalidBracket verifies that same-sign endpoints fail with
// ErrInvalidBracket.
func TestBisection_InvalidBracket(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }

	// Both endpoints on the positive side of the root.
	_, err := rootfind.Bisection(f, 3, 5, 1e-6)
	assert.ErrorIs(t, err, rootfind.ErrInvalidBracket)

	// Both on the negative side.
	_, err = rootfind.Bisection(f, -1, 1, 1e-6)
	assert.ErrorIs(t, err, rootfind.ErrInvalidBracket, "f < 0 at both endpoints must also be rejected")
}

// ------------------------------------------------------------------------
// 2. Convergence: known roots within tolerance.
// ------------------------------------------------------------------------

// TestBisection_Sqrt2 locates the root of x² − 2 in [0, 2].
func TestBisection_Sqrt2(t *testing.T) {
	root, err := rootfind.Bisection(func(x float64) float64 { return x*x - 2 }, 0, 2, 1e-6)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, root, 1e-6, "root of x²−2 must be √2 within epsilon")
}

// TestBisection_MonotonicLinear verifies the accuracy contract on a strictly
// monotonic function with a known root: |p − r| ≤ epsilon.
func TestBisection_MonotonicLinear(t *testing.T) {
	root, err := rootfind.Bisection(func(x float64) float64 { return x - math.Pi }, 0, 10, 1e-8)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, root, 1e-8)
}

// TestBisection_EndpointRootAccepted verifies that a zero at an endpoint
// satisfies the sign condition (f(a)·f(b) = 0) instead of erroring.
func TestBisection_EndpointRootAccepted(t *testing.T) {
	root, err := rootfind.Bisection(func(x float64) float64 { return x }, -4, 0, 1e-6)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, root, 1e-6, "the root at the right endpoint must be found")
}

// TestBisection_ReversedBracket verifies that a descending bracket [b, a]
// works identically: the width check and sign logic are symmetric.
func TestBisection_ReversedBracket(t *testing.T) {
	root, err := rootfind.Bisection(func(x float64) float64 { return x*x - 2 }, 2, 0, 1e-6)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, root, 1e-6)
}

// TestBisection_TightTolerance drives the bracket close to float64
// granularity to confirm the defensive cap never binds for valid input.
func TestBisection_TightTolerance(t *testing.T) {
	root, err := rootfind.Bisection(func(x float64) float64 { return x*x*x - x - 2 }, 1, 2, 1e-14)
	require.NoError(t, err)
	assert.InDelta(t, 1.5213797068045676, root, 1e-12, "cubic root to near machine precision")
}

// Package dualroot is a compact toolkit for exact first derivatives and
// scalar root finding — forward-mode automatic differentiation via dual
// numbers, feeding Newton–Raphson with machine-precision slopes.
//
// 🚀 What is dualroot?
//
//	A small, focused library that brings together:
//		• Dual numbers: (value, derivative) pairs with exact sum, product,
//		  quotient, and chain rules — no finite-difference error
//		• Elementary functions: Exp, Log, Sin, Cos, Abs over real or
//		  complex scalars, with honest domain handling
//		• Derivative(f, x): seed, evaluate once, read off f'(x)
//		• Bisection: guaranteed bracket-halving root search
//		• Newton: quadratic local convergence on exact derivatives,
//		  with a bisection bootstrap when no starting point is given
//
// ✨ Why choose dualroot?
//
//   - Exact – derivatives are computed, not approximated
//   - Honest – undefined operations fail loudly with sentinel errors,
//     never silently wrong answers
//   - Pure Go – value types only, no state, safe for concurrent use
//   - Small API – two packages, a handful of functions each
//
// Everything is organized under two subpackages:
//
//	dual/     — Dual[T] value type, arithmetic core, elementary functions,
//	            and the Derivative driver
//	rootfind/ — Bisection and Newton root finders over float64
//
// Quick taste:
//
//	f := func(x dual.Dual[float64]) dual.Dual[float64] {
//	    return x.Mul(x) // f(x) = x²
//	}
//	df, _ := dual.Derivative(f, 3.0) // df == 6.0, exactly
//
// Dive into the per-package docs for the full contracts, error taxonomy,
// and runnable examples.
//
//	go get github.com/katalvlaran/dualroot
package dualroot

// Package solver provides the one-dimensional root finding routines used by
// the pricing inversions: Newton-Raphson for yield/spread solving and a
// Brent-style bracketed search for IRR.
//
// Both routines return a result or a named error so callers can tell a bad
// bracket from an exhausted iteration budget.
package solver

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNonConvergence is returned when the iteration budget is exhausted
	// before the tolerance is met.
	ErrNonConvergence = errors.New("solver: did not converge")
	// ErrZeroDerivative is returned when a Newton step cannot be taken.
	ErrZeroDerivative = errors.New("solver: derivative too small")
	// ErrBadBracket is returned when the bracket endpoints do not have
	// opposite-signed objective values.
	ErrBadBracket = errors.New("solver: bracket endpoints must have opposite signs")
)

const brentMaxIter = 100

// Newton finds a root of f near guess using Newton-Raphson with a central
// finite-difference derivative.
func Newton(f func(float64) float64, guess, tol float64, maxIter int) (float64, error) {
	x := guess
	for iter := 0; iter < maxIter; iter++ {
		fx := f(x)
		if math.Abs(fx) < tol {
			return x, nil
		}

		h := 1e-7 * (math.Abs(x) + 1.0)
		deriv := (f(x+h) - f(x-h)) / (2.0 * h)
		if math.Abs(deriv) < 1e-15 {
			return x, fmt.Errorf("Newton: %w at iteration %d", ErrZeroDerivative, iter)
		}

		step := fx / deriv
		x -= step
		if math.Abs(step) < tol {
			return x, nil
		}
	}
	return x, fmt.Errorf("Newton: %w after %d iterations", ErrNonConvergence, maxIter)
}

// Brent finds a root of f on [a, b] where f(a) and f(b) have opposite signs.
//
// It combines inverse quadratic interpolation, the secant step and bisection,
// keeping the bracket valid throughout, so convergence is guaranteed for any
// continuous f with a sign change.
func Brent(f func(float64) float64, a, b, tol float64) (float64, error) {
	fa := f(a)
	fb := f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if fa*fb > 0 {
		return 0, fmt.Errorf("Brent: %w: f(%g)=%g, f(%g)=%g", ErrBadBracket, a, fa, b, fb)
	}

	// Keep b the best estimate.
	if math.Abs(fa) < math.Abs(fb) {
		a, b = b, a
		fa, fb = fb, fa
	}

	c, fc := a, fa
	d := b - a
	bisected := true

	for iter := 0; iter < brentMaxIter; iter++ {
		if fb == 0 || math.Abs(b-a) < tol {
			return b, nil
		}

		var s float64
		if fa != fc && fb != fc {
			// Inverse quadratic interpolation.
			s = a*fb*fc/((fa-fb)*(fa-fc)) +
				b*fa*fc/((fb-fa)*(fb-fc)) +
				c*fa*fb/((fc-fa)*(fc-fb))
		} else {
			// Secant step.
			s = b - fb*(b-a)/(fb-fa)
		}

		mid := (a + b) / 2.0
		useBisection := false
		switch {
		case (s-mid)*(s-b) >= 0:
			// s not between the midpoint and b.
			useBisection = true
		case bisected && math.Abs(s-b) >= math.Abs(b-c)/2.0:
			useBisection = true
		case !bisected && math.Abs(s-b) >= math.Abs(c-d)/2.0:
			useBisection = true
		case bisected && math.Abs(b-c) < tol:
			useBisection = true
		case !bisected && math.Abs(c-d) < tol:
			useBisection = true
		}
		if useBisection {
			s = mid
		}
		bisected = useBisection

		fs := f(s)
		d = c
		c, fc = b, fb

		if fa*fs < 0 {
			b, fb = s, fs
		} else {
			a, fa = s, fs
		}
		if math.Abs(fa) < math.Abs(fb) {
			a, b = b, a
			fa, fb = fb, fa
		}
	}
	return b, fmt.Errorf("Brent: %w after %d iterations", ErrNonConvergence, brentMaxIter)
}

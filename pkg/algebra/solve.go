// Package algebra solves low-degree polynomial equations over the
// complex numbers. It backs the quartic surface intersections, where
// real-root filtering of the full complex solution set is required.
package algebra

import (
	"math"
	"math/cmplx"
	"sort"
)

// Tolerance bounds how far a value may sit from zero, per component,
// and still be treated as zero.
const Tolerance = 1e-8

func isZero(z complex128) bool {
	return math.Abs(real(z)) < Tolerance && math.Abs(imag(z)) < Tolerance
}

// cbrt returns the nth branch of the complex cube root, n in {0, 1, 2}.
func cbrt(z complex128, n int) complex128 {
	r, theta := cmplx.Polar(z)
	return cmplx.Rect(math.Cbrt(r), (theta+2*math.Pi*float64(n))/3)
}

// SolveLinear returns the root of a*x + b = 0, or no roots when the
// equation is degenerate.
func SolveLinear(a, b complex128) []complex128 {
	if isZero(a) {
		return nil
	}
	return []complex128{-b / a}
}

// SolveQuadratic returns both roots of a*x^2 + b*x + c = 0. A
// vanishing leading coefficient degrades to the linear equation.
func SolveQuadratic(a, b, c complex128) []complex128 {
	if isZero(a) {
		return SolveLinear(b, c)
	}
	s := cmplx.Sqrt(b*b - 4*a*c)
	return []complex128{
		(-b - s) / (2 * a),
		(-b + s) / (2 * a),
	}
}

// SolveCubic returns all three roots of a*x^3 + b*x^2 + c*x + d = 0
// using Cardano's method, taking the cube root over each complex
// branch. A vanishing leading coefficient degrades to the quadratic.
func SolveCubic(a, b, c, d complex128) []complex128 {
	if isZero(a) {
		return SolveQuadratic(b, c, d)
	}

	// Depress with x = y - b/(3a) to y^3 + p*y + q = 0.
	p := c/a - b*b/(3*a*a)
	q := 2*b*b*b/(27*a*a*a) - b*c/(3*a*a) + d/a
	shift := -b / (3 * a)

	s := cmplx.Sqrt(q*q/4 + p*p*p/27)
	base := -q/2 + s
	if isZero(base) {
		base = -q/2 - s
	}
	if isZero(base) {
		// p and q both vanish: triple root at the shift.
		return []complex128{shift, shift, shift}
	}

	roots := make([]complex128, 0, 3)
	for n := 0; n < 3; n++ {
		u := cbrt(base, n)
		roots = append(roots, u-p/(3*u)+shift)
	}
	return roots
}

// SolveQuartic returns all four roots of
// a*x^4 + b*x^3 + c*x^2 + d*x + e = 0 by Ferrari's method: the
// depressed quartic is split into two quadratics using a root of the
// resolvent cubic. A vanishing leading coefficient degrades to the
// cubic.
func SolveQuartic(a, b, c, d, e complex128) []complex128 {
	if isZero(a) {
		return SolveCubic(b, c, d, e)
	}

	// Normalize and depress with x = y - b/(4a) to
	// y^4 + p*y^2 + q*y + r = 0.
	bn := b / a
	cn := c / a
	dn := d / a
	en := e / a
	p := cn - 3*bn*bn/8
	q := dn - bn*cn/2 + bn*bn*bn/8
	r := en - bn*dn/4 + bn*bn*cn/16 - 3*bn*bn*bn*bn/256
	shift := -bn / 4

	if isZero(q) {
		// Biquadratic: solve z^2 + p*z + r = 0 in z = y^2.
		roots := make([]complex128, 0, 4)
		for _, z := range SolveQuadratic(1, p, r) {
			s := cmplx.Sqrt(z)
			roots = append(roots, s+shift, -s+shift)
		}
		return roots
	}

	// Resolvent cubic: 8m^3 + 8p*m^2 + (2p^2 - 8r)*m - q^2 = 0. Any
	// root with 2m != 0 completes the square; take the largest for
	// stability.
	var m complex128
	for _, candidate := range SolveCubic(8, 8*p, 2*p*p-8*r, -q*q) {
		if cmplx.Abs(candidate) > cmplx.Abs(m) {
			m = candidate
		}
	}

	s2m := cmplx.Sqrt(2 * m)
	roots := make([]complex128, 0, 4)
	for _, y := range SolveQuadratic(1, -s2m, p/2+m+q/(2*s2m)) {
		roots = append(roots, y+shift)
	}
	for _, y := range SolveQuadratic(1, s2m, p/2+m-q/(2*s2m)) {
		roots = append(roots, y+shift)
	}
	return roots
}

// SolveQuarticReal returns the real roots of a quartic with real
// coefficients, sorted ascending. Roots whose imaginary part exceeds
// Tolerance are discarded.
func SolveQuarticReal(a, b, c, d, e float64) []float64 {
	roots := SolveQuartic(
		complex(a, 0),
		complex(b, 0),
		complex(c, 0),
		complex(d, 0),
		complex(e, 0),
	)
	real64 := make([]float64, 0, len(roots))
	for _, z := range roots {
		if math.Abs(imag(z)) < Tolerance {
			real64 = append(real64, real(z))
		}
	}
	sort.Float64s(real64)
	return real64
}

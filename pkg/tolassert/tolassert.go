// Package tolassert provides functions for asserting the near equality
// of floating point values within a tolerance.
package tolassert

import (
	"math"

	"github.com/stretchr/testify/assert"

	"github.com/df07/go-solid-raytracer/pkg/core"
)

// StandardTol is the default tolerance used by Equal.
const StandardTol = 1e-9

type tHelper interface {
	Helper()
}

// Equal asserts that actual is within StandardTol of expected.
func Equal(t assert.TestingT, expected, actual float64, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return EqualTol(t, expected, actual, StandardTol, msgAndArgs...)
}

// EqualTol asserts that actual is within tol of expected.
func EqualTol(t assert.TestingT, expected, actual, tol float64, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if math.Abs(expected-actual) <= tol {
		return true
	}
	return assert.Equal(t, expected, actual, msgAndArgs...)
}

// EqualPoint asserts that two points agree componentwise within tol.
func EqualPoint(t assert.TestingT, expected, actual core.Point, tol float64, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if math.Abs(expected.X-actual.X) <= tol &&
		math.Abs(expected.Y-actual.Y) <= tol &&
		math.Abs(expected.Z-actual.Z) <= tol {
		return true
	}
	return assert.Equal(t, expected, actual, msgAndArgs...)
}

// EqualDirection asserts that two directions agree componentwise within tol.
func EqualDirection(t assert.TestingT, expected, actual core.Direction, tol float64, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if math.Abs(expected.X-actual.X) <= tol &&
		math.Abs(expected.Y-actual.Y) <= tol &&
		math.Abs(expected.Z-actual.Z) <= tol {
		return true
	}
	return assert.Equal(t, expected, actual, msgAndArgs...)
}

// EqualColor asserts that two colors agree componentwise within tol.
func EqualColor(t assert.TestingT, expected, actual core.Color, tol float64, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if math.Abs(expected.R-actual.R) <= tol &&
		math.Abs(expected.G-actual.G) <= tol &&
		math.Abs(expected.B-actual.B) <= tol {
		return true
	}
	return assert.Equal(t, expected, actual, msgAndArgs...)
}

package core

import (
	"math"
	"math/rand"
)

// UniformSphere generates a uniform random direction on the unit
// sphere using the inverse CDF method.
func UniformSphere(rng *rand.Rand) Direction {
	z := 1.0 - 2.0*rng.Float64() // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * rng.Float64()
	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	return NewDirection(x, y, z)
}

// OrthonormalBasis returns two unit tangents completing a right-handed
// frame around the given unit normal.
func OrthonormalBasis(normal Direction) (tangent, bitangent Direction) {
	// Find a helper vector not parallel to the normal
	helper := NewDirection(1, 0, 0)
	if math.Abs(normal.X) > 0.1 {
		helper = NewDirection(0, 1, 0)
	}
	tangent = helper.Cross(normal).Normalize()
	bitangent = normal.Cross(tangent)
	return tangent, bitangent
}

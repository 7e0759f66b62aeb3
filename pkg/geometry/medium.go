package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-solid-raytracer/pkg/core"
)

// HomogeneousMedium is a participating volume of constant density
// filling a solid boundary shape. A ray interacts at a random depth
// drawn from the exponential free-flight distribution, or passes
// through when the drawn depth exceeds the boundary span. Media must
// be paired with an isotropic material: the reported normal is a
// placeholder.
type HomogeneousMedium struct {
	Boundary Solid
	Density  float64
}

// NewHomogeneousMedium creates a constant-density volume inside the
// boundary solid.
func NewHomogeneousMedium(boundary Solid, density float64) *HomogeneousMedium {
	return &HomogeneousMedium{Boundary: boundary, Density: density}
}

// Intersect samples a scattering event inside the first boundary span
// ahead of the ray origin.
func (m *HomogeneousMedium) Intersect(ray core.Ray, rng *rand.Rand) (core.Intersection, bool) {
	var span core.Interval
	found := false
	for _, iv := range m.Boundary.Intervals(ray) {
		if iv.Exit.T > 0 {
			span = iv
			found = true
			break
		}
	}
	if !found {
		return core.Intersection{}, false
	}

	enter := math.Max(span.Enter.T, 0)
	dirLength := ray.Direction.Length()
	inside := (span.Exit.T - enter) * dirLength

	// Free flight distance with U in (0, 1]; d is non-negative.
	depth := -math.Log(1-rng.Float64()) / m.Density
	if depth >= inside {
		return core.Intersection{}, false
	}

	return core.Intersection{
		T:      enter + depth/dirLength,
		Normal: core.NewDirection(1, 0, 0),
	}, true
}

package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-solid-raytracer/pkg/core"
)

// Plane is an infinite plane through a point with a fixed outward
// normal. UV coordinates are measured along two in-plane axes derived
// from the normal, so textures tile across the surface.
type Plane struct {
	Point  core.Point
	Normal core.Direction

	tangent   core.Direction
	bitangent core.Direction
}

// NewPlane creates a plane. The normal is normalized.
func NewPlane(point core.Point, normal core.Direction) *Plane {
	n := normal.Normalize()
	tangent, bitangent := core.OrthonormalBasis(n)
	return &Plane{Point: point, Normal: n, tangent: tangent, bitangent: bitangent}
}

// Intersect returns the hit where the ray crosses the plane. Rays
// within the parallel tolerance miss.
func (p *Plane) Intersect(ray core.Ray, rng *rand.Rand) (core.Intersection, bool) {
	denominator := ray.Direction.Dot(p.Normal)
	if math.Abs(denominator) < 1e-6 {
		return core.Intersection{}, false
	}

	t := p.Point.Sub(ray.Origin).Dot(p.Normal) / denominator
	if t < 0 {
		return core.Intersection{}, false
	}

	rel := ray.At(t).Sub(p.Point)
	uv := core.UV{U: rel.Dot(p.tangent), V: rel.Dot(p.bitangent)}
	return core.Intersection{T: t, Normal: p.Normal, UV: uv}, true
}

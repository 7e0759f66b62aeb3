package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-solid-raytracer/pkg/core"
)

// Sphere is a solid sphere.
type Sphere struct {
	Center core.Point
	Radius float64
}

// NewSphere creates a sphere.
func NewSphere(center core.Point, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Intersect returns the smallest non-negative root of the ray-sphere
// quadratic.
func (s *Sphere) Intersect(ray core.Ray, rng *rand.Rand) (core.Intersection, bool) {
	t0, t1, ok := s.roots(ray)
	if !ok {
		return core.Intersection{}, false
	}
	t := t0
	if t < 0 {
		t = t1
		if t < 0 {
			return core.Intersection{}, false
		}
	}
	return s.at(ray, t), true
}

// Intervals returns the single span between the two quadratic roots.
// Tangent rays yield a degenerate interval.
func (s *Sphere) Intervals(ray core.Ray) []core.Interval {
	t0, t1, ok := s.roots(ray)
	if !ok {
		return nil
	}
	return []core.Interval{{Enter: s.at(ray, t0), Exit: s.at(ray, t1)}}
}

func (s *Sphere) roots(ray core.Ray) (t0, t1 float64, ok bool) {
	oc := ray.Origin.Sub(s.Center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, 0, false
	}
	sqrtD := math.Sqrt(discriminant)
	return (-halfB - sqrtD) / a, (-halfB + sqrtD) / a, true
}

func (s *Sphere) at(ray core.Ray, t float64) core.Intersection {
	normal := ray.At(t).Sub(s.Center).Scale(1 / s.Radius)
	return core.Intersection{T: t, Normal: normal, UV: sphereUV(normal)}
}

// sphereUV maps a unit normal to spherical texture coordinates with u
// wrapping around the Y axis and v running pole to pole.
func sphereUV(n core.Direction) core.UV {
	u := (1 - math.Atan2(n.Z, n.X)/math.Pi) / 2
	v := math.Acos(clamp(n.Y, -1, 1)) / math.Pi
	return core.UV{U: u, V: v}
}

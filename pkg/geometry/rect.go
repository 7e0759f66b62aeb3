package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-solid-raytracer/pkg/core"
)

// RectPlane selects the axis pair an axis-aligned rectangle spans.
type RectPlane int

const (
	// RectXY spans x and y at a fixed z; the normal points along +z.
	RectXY RectPlane = iota
	// RectXZ spans x and z at a fixed y; the normal points along +y.
	RectXZ
	// RectZY spans z and y at a fixed x; the normal points along +x.
	RectZY
)

// Rect is an axis-aligned rectangle. U runs along the first named
// axis, V along the second. Reverse flips the normal to the negative
// axis direction.
type Rect struct {
	Plane   RectPlane
	U0, U1  float64 // bounds along the first axis
	V0, V1  float64 // bounds along the second axis
	Offset  float64 // position along the fixed axis
	Reverse bool
}

// NewRect creates a rectangle on the given plane.
func NewRect(plane RectPlane, u0, u1, v0, v1, offset float64, reverse bool) *Rect {
	return &Rect{Plane: plane, U0: u0, U1: u1, V0: v0, V1: v1, Offset: offset, Reverse: reverse}
}

// axes returns the component indices of the U, V and fixed axes.
func (r *Rect) axes() (u, v, fixed int) {
	switch r.Plane {
	case RectXY:
		return 0, 1, 2
	case RectXZ:
		return 0, 2, 1
	default:
		return 2, 1, 0
	}
}

// Normal returns the rectangle's outward normal.
func (r *Rect) Normal() core.Direction {
	_, _, fixed := r.axes()
	var n core.Direction
	switch fixed {
	case 0:
		n = core.NewDirection(1, 0, 0)
	case 1:
		n = core.NewDirection(0, 1, 0)
	default:
		n = core.NewDirection(0, 0, 1)
	}
	if r.Reverse {
		n = n.Negate()
	}
	return n
}

// Intersect returns the hit where the ray crosses the rectangle at a
// non-negative parameter.
func (r *Rect) Intersect(ray core.Ray, rng *rand.Rand) (core.Intersection, bool) {
	hit, ok := r.hit(ray)
	if !ok || hit.T < 0 {
		return core.Intersection{}, false
	}
	return hit, true
}

// hit crosses the ray with the rectangle's plane without rejecting
// negative parameters; cube interval assembly needs hits behind the
// origin.
func (r *Rect) hit(ray core.Ray) (core.Intersection, bool) {
	uAxis, vAxis, fixed := r.axes()

	denominator := ray.Direction.Component(fixed)
	if math.Abs(denominator) < 1e-6 {
		return core.Intersection{}, false
	}
	t := (r.Offset - ray.Origin.Component(fixed)) / denominator

	hu := ray.Origin.Component(uAxis) + t*ray.Direction.Component(uAxis)
	hv := ray.Origin.Component(vAxis) + t*ray.Direction.Component(vAxis)
	if hu < r.U0 || hu > r.U1 || hv < r.V0 || hv > r.V1 {
		return core.Intersection{}, false
	}

	uv := core.UV{
		U: (hu - r.U0) / (r.U1 - r.U0),
		V: (hv - r.V0) / (r.V1 - r.V0),
	}
	return core.Intersection{T: t, Normal: r.Normal(), UV: uv}, true
}

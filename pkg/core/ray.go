package core

// RayKind tags the role a ray plays during rendering.
type RayKind uint8

const (
	// PrimaryRay covers camera rays and every scattered bounce.
	PrimaryRay RayKind = iota
	// ShadowRay is reserved for occlusion queries.
	ShadowRay
)

// Ray is a parametric line origin + t*direction. The reciprocal
// direction and its sign bits are precomputed for slab tests.
type Ray struct {
	Kind      RayKind
	Origin    Point
	Direction Direction
	Depth     int
	InvDir    Direction
	Sign      [3]int
}

// NewRay creates a ray with a normalized direction. Depth counts the
// number of bounces taken so far and starts at zero for camera rays.
func NewRay(kind RayKind, origin Point, direction Direction, depth int) Ray {
	return newRay(kind, origin, direction.Normalize(), depth)
}

func newRay(kind RayKind, origin Point, direction Direction, depth int) Ray {
	r := Ray{
		Kind:      kind,
		Origin:    origin,
		Direction: direction,
		Depth:     depth,
	}
	r.InvDir = Direction{X: 1 / direction.X, Y: 1 / direction.Y, Z: 1 / direction.Z}
	if r.InvDir.X < 0 {
		r.Sign[0] = 1
	}
	if r.InvDir.Y < 0 {
		r.Sign[1] = 1
	}
	if r.InvDir.Z < 0 {
		r.Sign[2] = 1
	}
	return r
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Point {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform maps the ray through a matrix without renormalizing the
// direction, so parameter values keep their meaning across spaces.
func (r Ray) Transform(m Matrix44) Ray {
	return newRay(r.Kind, m.TransformPoint(r.Origin), m.TransformDirection(r.Direction), r.Depth)
}

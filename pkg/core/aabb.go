package core

import "math"

// AABB is an axis-aligned bounding box. Bounds[0] holds the minimum
// corner and Bounds[1] the maximum, indexed by the ray sign bits
// during slab tests.
type AABB struct {
	Bounds [2]Point
}

// NewAABB creates a bounding box from its minimum and maximum corners.
func NewAABB(min, max Point) AABB {
	return AABB{Bounds: [2]Point{min, max}}
}

// AABBFromPoints returns the smallest box enclosing all points.
func AABBFromPoints(points []Point) AABB {
	min := NewPoint(math.Inf(1), math.Inf(1), math.Inf(1))
	max := NewPoint(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for _, p := range points {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		min.Z = math.Min(min.Z, p.Z)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
		max.Z = math.Max(max.Z, p.Z)
	}
	return NewAABB(min, max)
}

// Min returns the minimum corner.
func (b AABB) Min() Point {
	return b.Bounds[0]
}

// Max returns the maximum corner.
func (b AABB) Max() Point {
	return b.Bounds[1]
}

// Pad expands the box by delta on every side. Flat geometry produces
// zero-thickness boxes, and padding keeps boundary hits from being
// lost to rounding.
func (b AABB) Pad(delta float64) AABB {
	d := NewDirection(delta, delta, delta)
	return NewAABB(b.Bounds[0].Add(d.Negate()), b.Bounds[1].Add(d))
}

// Hit reports whether the ray passes through the box at any
// non-negative parameter. Bounds are inclusive. No hit distance is
// computed.
func (b AABB) Hit(r Ray) bool {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		inv := r.InvDir.Component(axis)
		origin := r.Origin.Component(axis)
		if math.IsInf(inv, 0) {
			// Parallel to the slab: containment decides, and skipping
			// the arithmetic avoids 0*Inf.
			if origin < b.Bounds[0].Component(axis) || origin > b.Bounds[1].Component(axis) {
				return false
			}
			continue
		}
		sign := r.Sign[axis]
		near := (b.Bounds[sign].Component(axis) - origin) * inv
		far := (b.Bounds[1-sign].Component(axis) - origin) * inv
		tmin = math.Max(tmin, near)
		tmax = math.Min(tmax, far)
		if tmin > tmax {
			return false
		}
	}
	return tmax >= 0
}

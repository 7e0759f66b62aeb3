package geometry

import (
	"math/rand"
	"sort"

	"github.com/df07/go-solid-raytracer/pkg/core"
)

// Cube is an axis-aligned solid box assembled from six rectangles.
// Minimum faces carry reversed normals so every face points outward.
type Cube struct {
	Min, Max core.Point
	faces    [6]*Rect
}

// NewCube creates a box from its minimum and maximum corners.
func NewCube(min, max core.Point) *Cube {
	c := &Cube{Min: min, Max: max}
	c.faces = [6]*Rect{
		NewRect(RectXY, min.X, max.X, min.Y, max.Y, max.Z, false),
		NewRect(RectXY, min.X, max.X, min.Y, max.Y, min.Z, true),
		NewRect(RectXZ, min.X, max.X, min.Z, max.Z, max.Y, false),
		NewRect(RectXZ, min.X, max.X, min.Z, max.Z, min.Y, true),
		NewRect(RectZY, min.Z, max.Z, min.Y, max.Y, max.X, false),
		NewRect(RectZY, min.Z, max.Z, min.Y, max.Y, min.X, true),
	}
	return c
}

// NewCubeCentered creates an axis-aligned cube with the given edge
// length around a center point.
func NewCubeCentered(center core.Point, size float64) *Cube {
	half := core.NewDirection(size/2, size/2, size/2)
	return NewCube(center.Add(half.Negate()), center.Add(half))
}

// Intersect returns the nearest face hit at a non-negative parameter.
func (c *Cube) Intersect(ray core.Ray, rng *rand.Rand) (core.Intersection, bool) {
	var nearest core.Intersection
	found := false
	for _, face := range c.faces {
		hit, ok := face.Intersect(ray, rng)
		if ok && (!found || hit.T < nearest.T) {
			nearest = hit
			found = true
		}
	}
	return nearest, found
}

// Intervals pairs the two surviving face hits into one span. Any other
// face hit count is an invariant violation: edge and corner grazes
// degrade to a miss.
func (c *Cube) Intervals(ray core.Ray) []core.Interval {
	hits := make([]core.Intersection, 0, 2)
	for _, face := range c.faces {
		if hit, ok := face.hit(ray); ok {
			hits = append(hits, hit)
		}
	}
	switch len(hits) {
	case 0:
		return nil
	case 2:
		sort.Slice(hits, func(i, j int) bool { return hits[i].T < hits[j].T })
		return []core.Interval{{Enter: hits[0], Exit: hits[1]}}
	default:
		violation("cube: face hits did not pair")
		return nil
	}
}

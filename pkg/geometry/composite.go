package geometry

import (
	"math/rand"

	"github.com/df07/go-solid-raytracer/pkg/core"
)

// Composite groups several shapes so they behave as one. A ray sees
// the nearest hit across all children.
type Composite struct {
	Children []Shape
}

// NewComposite creates a composite from its child shapes.
func NewComposite(children ...Shape) *Composite {
	return &Composite{Children: children}
}

// Intersect returns the nearest child hit.
func (c *Composite) Intersect(ray core.Ray, rng *rand.Rand) (core.Intersection, bool) {
	var nearest core.Intersection
	found := false
	for _, child := range c.Children {
		hit, ok := child.Intersect(ray, rng)
		if ok && (!found || hit.T < nearest.T) {
			nearest = hit
			found = true
		}
	}
	return nearest, found
}

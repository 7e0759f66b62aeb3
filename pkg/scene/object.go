package scene

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-solid-raytracer/pkg/core"
	"github.com/df07/go-solid-raytracer/pkg/geometry"
	"github.com/df07/go-solid-raytracer/pkg/material"
)

// Object places a shape in the world with a material and a transform.
// Rays are moved into object space for the shape test and hits mapped
// back out, so shapes never see the transform.
type Object struct {
	Name          string
	Shape         geometry.Shape
	Material      material.Material
	ObjectToWorld core.Matrix44
	WorldToObject core.Matrix44
}

// NewObject creates an object. The transform must be invertible.
func NewObject(name string, shape geometry.Shape, mat material.Material, transform core.Matrix44) (*Object, error) {
	inverse, ok := transform.Inverse()
	if !ok {
		return nil, fmt.Errorf("scene: object %q has a singular transform", name)
	}
	return &Object{
		Name:          name,
		Shape:         shape,
		Material:      mat,
		ObjectToWorld: transform,
		WorldToObject: inverse,
	}, nil
}

// Intersect runs the shape test in object space and maps the hit back
// into world space.
func (o *Object) Intersect(ray core.Ray, rng *rand.Rand) (core.Intersection, bool) {
	local := ray.Transform(o.WorldToObject)
	hit, ok := o.Shape.Intersect(local, rng)
	if !ok {
		return core.Intersection{}, false
	}
	return o.worldHit(ray, local, hit), true
}

// Intervals reports the shape's solid spans in world space. The second
// return value is false when the shape has no interior. Each interval
// is re-ordered and the list re-sorted: a mirroring transform maps the
// endpoints faithfully but is free to disturb their bookkeeping order.
func (o *Object) Intervals(ray core.Ray) ([]core.Interval, bool) {
	solid, ok := o.Shape.(geometry.Solid)
	if !ok {
		return nil, false
	}
	local := ray.Transform(o.WorldToObject)
	intervals := solid.Intervals(local)
	if len(intervals) == 0 {
		return nil, true
	}

	out := make([]core.Interval, len(intervals))
	for i, iv := range intervals {
		out[i] = core.Interval{
			Enter: o.worldHit(ray, local, iv.Enter),
			Exit:  o.worldHit(ray, local, iv.Exit),
		}.Normalized()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Enter.T < out[j].Enter.T })
	return out, true
}

// worldHit maps an object-space intersection onto the world ray. T is
// the signed projection of the hit point onto the ray direction, which
// keeps endpoints behind the origin behind the origin. Normals go
// through the inverse transpose and are renormalized.
func (o *Object) worldHit(ray, local core.Ray, hit core.Intersection) core.Intersection {
	p := o.ObjectToWorld.TransformPoint(local.At(hit.T))
	normal := o.WorldToObject.Transpose().TransformDirection(hit.Normal).Normalize()
	return core.Intersection{
		T:      p.Sub(ray.Origin).Dot(ray.Direction),
		Normal: normal,
		UV:     hit.UV,
	}
}

func (o *Object) primitiveCount() int {
	switch shape := o.Shape.(type) {
	case *geometry.Mesh:
		return shape.TriangleCount()
	case *geometry.Composite:
		return len(shape.Children)
	default:
		return 1
	}
}

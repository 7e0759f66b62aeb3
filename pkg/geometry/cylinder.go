package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-solid-raytracer/pkg/core"
)

// Cylinder is a capped solid cylinder around the Y axis, centered at
// the origin with caps at ±Height/2.
type Cylinder struct {
	Radius float64
	Height float64
}

// NewCylinder creates a capped cylinder.
func NewCylinder(radius, height float64) *Cylinder {
	return &Cylinder{Radius: radius, Height: height}
}

// Intersect returns the nearest boundary hit.
func (c *Cylinder) Intersect(ray core.Ray, rng *rand.Rand) (core.Intersection, bool) {
	return NearestFromIntervals(c.Intervals(ray))
}

// Intervals clips the infinite-cylinder quadratic span against the cap
// slab, yielding at most one interval whose endpoints may each lie on
// the side wall or a cap.
func (c *Cylinder) Intervals(ray core.Ray) []core.Interval {
	halfH := c.Height / 2

	// Side wall: quadratic in the xz components.
	sideEnter := math.Inf(-1)
	sideExit := math.Inf(1)
	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	if a < 1e-12 {
		// Travelling parallel to the axis: inside or outside for good.
		if ray.Origin.X*ray.Origin.X+ray.Origin.Z*ray.Origin.Z > c.Radius*c.Radius {
			return nil
		}
	} else {
		halfB := ray.Origin.X*ray.Direction.X + ray.Origin.Z*ray.Direction.Z
		cc := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - c.Radius*c.Radius
		discriminant := halfB*halfB - a*cc
		if discriminant < 0 {
			return nil
		}
		sqrtD := math.Sqrt(discriminant)
		sideEnter = (-halfB - sqrtD) / a
		sideExit = (-halfB + sqrtD) / a
	}

	// Cap slab along y.
	capEnter := math.Inf(-1)
	capExit := math.Inf(1)
	if math.Abs(ray.Direction.Y) < 1e-12 {
		if math.Abs(ray.Origin.Y) > halfH {
			return nil
		}
	} else {
		capEnter = (-halfH - ray.Origin.Y) / ray.Direction.Y
		capExit = (halfH - ray.Origin.Y) / ray.Direction.Y
		if capEnter > capExit {
			capEnter, capExit = capExit, capEnter
		}
	}

	enter := math.Max(sideEnter, capEnter)
	exit := math.Min(sideExit, capExit)
	if enter > exit {
		return nil
	}

	return []core.Interval{{
		Enter: c.at(ray, enter, capEnter >= sideEnter),
		Exit:  c.at(ray, exit, capExit <= sideExit),
	}}
}

// at builds the endpoint record; onCap selects which boundary the
// clipped parameter landed on.
func (c *Cylinder) at(ray core.Ray, t float64, onCap bool) core.Intersection {
	p := ray.At(t)
	if onCap {
		normal := core.NewDirection(0, 1, 0)
		if p.Y < 0 {
			normal = core.NewDirection(0, -1, 0)
		}
		uv := core.UV{
			U: (p.X/c.Radius + 1) / 2,
			V: (p.Z/c.Radius + 1) / 2,
		}
		return core.Intersection{T: t, Normal: normal, UV: uv}
	}

	normal := core.NewDirection(p.X, 0, p.Z).Scale(1 / c.Radius)
	uv := core.UV{
		U: 0.5 + math.Atan2(normal.Z, normal.X)/(2*math.Pi),
		V: (p.Y + c.Height/2) / c.Height,
	}
	return core.Intersection{T: t, Normal: normal, UV: uv}
}

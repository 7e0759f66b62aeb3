package material

import (
	"math/rand"

	"github.com/df07/go-solid-raytracer/pkg/core"
)

// Context carries the render-wide parameters materials need when
// spawning continuation rays.
type Context struct {
	Bias float64 // offset along the normal for scattered ray origins
}

// ScatterRecord describes the continuation ray produced by a scatter
// event and the attenuation applied to the radiance it returns.
type ScatterRecord struct {
	Attenuation core.Color
	Origin      core.Point
	Direction   core.Direction
}

// Material decides how light interacts with a surface.
type Material interface {
	// Scatter produces the continuation ray for an incoming hit. It
	// returns false when the ray is absorbed.
	Scatter(ctx Context, rayIn core.Ray, hit core.Intersection, rng *rand.Rand) (ScatterRecord, bool)

	// Emit returns the radiance the surface adds at the hit,
	// independent of scattering.
	Emit(ctx Context, hit core.Intersection) core.Color
}

// facingNormal returns the shading normal flipped, if needed, to
// oppose the incoming ray.
func facingNormal(rayIn core.Ray, normal core.Direction) core.Direction {
	if rayIn.Direction.Dot(normal) > 0 {
		return normal.Negate()
	}
	return normal
}

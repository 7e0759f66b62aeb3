package integrator

import (
	"math/rand"

	"github.com/df07/go-solid-raytracer/pkg/core"
	"github.com/df07/go-solid-raytracer/pkg/material"
	"github.com/df07/go-solid-raytracer/pkg/scene"
)

// PathTracer estimates radiance by recursively following scattered
// rays until a miss, an absorbing material, or the depth bound.
type PathTracer struct {
	scene    *scene.Scene
	ctx      material.Context
	maxDepth int
}

// NewPathTracer creates a path tracer over a scene. MaxDepth bounds
// the number of bounces per camera ray; bias offsets continuation ray
// origins off the originating surface.
func NewPathTracer(s *scene.Scene, maxDepth int, bias float64) *PathTracer {
	return &PathTracer{
		scene:    s,
		ctx:      material.Context{Bias: bias},
		maxDepth: maxDepth,
	}
}

// Cast returns the radiance arriving along the ray. Rays that miss
// every object pick up the scene background; hits contribute their
// emission plus the attenuated radiance of the scattered continuation.
func (pt *PathTracer) Cast(ray core.Ray, rng *rand.Rand) core.Color {
	hit, obj, ok := pt.scene.Intersect(ray, rng)
	if !ok {
		return pt.scene.Background
	}

	emitted := obj.Material.Emit(pt.ctx, hit)
	if ray.Depth >= pt.maxDepth {
		return emitted
	}

	scatter, ok := obj.Material.Scatter(pt.ctx, ray, hit, rng)
	if !ok {
		return emitted
	}

	continuation := core.NewRay(core.PrimaryRay, scatter.Origin, scatter.Direction, ray.Depth+1)
	return emitted.Add(scatter.Attenuation.Mul(pt.Cast(continuation, rng)))
}

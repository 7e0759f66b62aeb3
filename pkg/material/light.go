package material

import (
	"math/rand"

	"github.com/df07/go-solid-raytracer/pkg/core"
)

// DiffuseLight emits scaled texture radiance and absorbs every
// incoming ray.
type DiffuseLight struct {
	Texture   Texture
	Intensity float64
}

// NewDiffuseLight creates an emissive material.
func NewDiffuseLight(texture Texture, intensity float64) *DiffuseLight {
	return &DiffuseLight{Texture: texture, Intensity: intensity}
}

// Scatter absorbs the ray; lights terminate paths.
func (l *DiffuseLight) Scatter(ctx Context, rayIn core.Ray, hit core.Intersection, rng *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// Emit returns the texture color scaled by the light intensity.
func (l *DiffuseLight) Emit(ctx Context, hit core.Intersection) core.Color {
	return l.Texture.Sample(hit.UV).Scale(l.Intensity)
}

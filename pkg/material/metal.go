package material

import (
	"math/rand"

	"github.com/df07/go-solid-raytracer/pkg/core"
)

// Metal is a specular surface with optional roughness.
type Metal struct {
	Texture Texture
	Fuzz    float64 // 0 = perfect mirror, 1 = very rough
}

// NewMetal creates a metallic material. Fuzz is clamped to [0, 1].
func NewMetal(texture Texture, fuzz float64) *Metal {
	if fuzz < 0 {
		fuzz = 0
	}
	if fuzz > 1 {
		fuzz = 1
	}
	return &Metal{Texture: texture, Fuzz: fuzz}
}

// Scatter reflects the ray about the facing normal, perturbed by fuzz
// times a uniform sphere direction. Rays perturbed below the surface
// are absorbed.
func (m *Metal) Scatter(ctx Context, rayIn core.Ray, hit core.Intersection, rng *rand.Rand) (ScatterRecord, bool) {
	normal := facingNormal(rayIn, hit.Normal)
	reflected := rayIn.Direction.Reflect(normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.UniformSphere(rng).Scale(m.Fuzz))
	}
	reflected = reflected.Normalize()
	if reflected.Dot(normal) <= 0 {
		return ScatterRecord{}, false
	}

	point := rayIn.At(hit.T)
	return ScatterRecord{
		Attenuation: m.Texture.Sample(hit.UV),
		Origin:      point.Add(normal.Scale(ctx.Bias)),
		Direction:   reflected,
	}, true
}

// Emit returns no radiance.
func (m *Metal) Emit(ctx Context, hit core.Intersection) core.Color {
	return core.Black
}

package material

import (
	"math/rand"

	"github.com/df07/go-solid-raytracer/pkg/core"
)

// Isotropic scatters uniformly in every direction, modelling a
// particle inside a participating medium. The shading normal is a
// placeholder on medium hits and is ignored, so no bias offset is
// applied to the origin.
type Isotropic struct {
	Texture Texture
}

// NewIsotropic creates an isotropic phase-function material.
func NewIsotropic(texture Texture) *Isotropic {
	return &Isotropic{Texture: texture}
}

// Scatter continues the path in a uniform random direction from the
// scattering point.
func (i *Isotropic) Scatter(ctx Context, rayIn core.Ray, hit core.Intersection, rng *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{
		Attenuation: i.Texture.Sample(hit.UV),
		Origin:      rayIn.At(hit.T),
		Direction:   core.UniformSphere(rng),
	}, true
}

// Emit returns no radiance.
func (i *Isotropic) Emit(ctx Context, hit core.Intersection) core.Color {
	return core.Black
}

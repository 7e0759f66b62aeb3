package material

import (
	"math/rand"

	"github.com/df07/go-solid-raytracer/pkg/core"
)

// Lambertian is a diffuse surface. Scattered directions follow a
// cosine-weighted distribution around the facing normal.
type Lambertian struct {
	Texture Texture
}

// NewLambertian creates a diffuse material with the given texture.
func NewLambertian(texture Texture) *Lambertian {
	return &Lambertian{Texture: texture}
}

// Scatter picks a uniform direction on the unit sphere and offsets it
// along the normal inside a local orthonormal basis, which yields the
// cosine distribution after normalization.
func (l *Lambertian) Scatter(ctx Context, rayIn core.Ray, hit core.Intersection, rng *rand.Rand) (ScatterRecord, bool) {
	normal := facingNormal(rayIn, hit.Normal)
	tangent, bitangent := core.OrthonormalBasis(normal)

	w := core.UniformSphere(rng)
	scattered := tangent.Scale(w.X).
		Add(bitangent.Scale(w.Y)).
		Add(normal.Scale(w.Z + 1))
	if scattered.IsNearZero() {
		scattered = normal
	}

	point := rayIn.At(hit.T)
	return ScatterRecord{
		Attenuation: l.Texture.Sample(hit.UV),
		Origin:      point.Add(normal.Scale(ctx.Bias)),
		Direction:   scattered.Normalize(),
	}, true
}

// Emit returns no radiance; diffuse surfaces only reflect.
func (l *Lambertian) Emit(ctx Context, hit core.Intersection) core.Color {
	return core.Black
}

package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-solid-raytracer/pkg/core"
)

// Dielectric is a transparent material such as glass or water. Rays
// reflect with the Fresnel probability and refract otherwise. The
// attenuation is always white.
type Dielectric struct {
	IOR  float64 // index of refraction relative to air
	Fuzz float64 // frosted glass when > 0
}

// NewDielectric creates a clear dielectric material.
func NewDielectric(ior float64) *Dielectric {
	return &Dielectric{IOR: ior}
}

// NewFrostedDielectric creates a dielectric with roughened scattering.
func NewFrostedDielectric(ior, fuzz float64) *Dielectric {
	if fuzz < 0 {
		fuzz = 0
	}
	if fuzz > 1 {
		fuzz = 1
	}
	return &Dielectric{IOR: ior, Fuzz: fuzz}
}

// Scatter chooses between reflection and refraction by sampling the
// Fresnel reflectance. The scattered origin is biased to the side of
// the surface the new ray travels through.
func (d *Dielectric) Scatter(ctx Context, rayIn core.Ray, hit core.Intersection, rng *rand.Rand) (ScatterRecord, bool) {
	cosi := clamp(rayIn.Direction.Dot(hit.Normal), -1, 1)
	outside := cosi < 0
	point := rayIn.At(hit.T)
	offset := hit.Normal.Scale(ctx.Bias)

	var direction core.Direction
	var origin core.Point
	refracted, canRefract := refract(rayIn.Direction, hit.Normal, cosi, d.IOR)
	if rng.Float64() < fresnel(cosi, d.IOR) || !canRefract {
		direction = rayIn.Direction.Reflect(hit.Normal)
		if outside {
			origin = point.Add(offset)
		} else {
			origin = point.Add(offset.Negate())
		}
	} else {
		direction = refracted
		if outside {
			origin = point.Add(offset.Negate())
		} else {
			origin = point.Add(offset)
		}
	}

	if d.Fuzz > 0 {
		direction = direction.Add(core.UniformSphere(rng).Scale(d.Fuzz))
	}

	return ScatterRecord{
		Attenuation: core.White,
		Origin:      origin,
		Direction:   direction.Normalize(),
	}, true
}

// Emit returns no radiance.
func (d *Dielectric) Emit(ctx Context, hit core.Intersection) core.Color {
	return core.Black
}

// fresnel returns the fraction of light reflected at the boundary for
// an incidence cosine against the outward normal.
func fresnel(cosi, ior float64) float64 {
	etai, etat := 1.0, ior
	if cosi > 0 {
		etai, etat = etat, etai
	}
	sint := etai / etat * math.Sqrt(math.Max(0, 1-cosi*cosi))
	if sint >= 1 {
		return 1 // total internal reflection
	}
	cost := math.Sqrt(math.Max(0, 1-sint*sint))
	cosa := math.Abs(cosi)
	rs := (etat*cosa - etai*cost) / (etat*cosa + etai*cost)
	rp := (etai*cosa - etat*cost) / (etai*cosa + etat*cost)
	return (rs*rs + rp*rp) / 2
}

// refract bends the incident direction through the boundary by Snell's
// law. It returns false under total internal reflection.
func refract(incident, normal core.Direction, cosi, ior float64) (core.Direction, bool) {
	etai, etat := 1.0, ior
	n := normal
	if cosi < 0 {
		cosi = -cosi
	} else {
		etai, etat = etat, etai
		n = normal.Negate()
	}
	eta := etai / etat
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return core.Direction{}, false
	}
	return incident.Scale(eta).Add(n.Scale(eta*cosi - math.Sqrt(k))), true
}

func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-solid-raytracer/pkg/core"
	"github.com/df07/go-solid-raytracer/pkg/tolassert"
)

func TestMetalPerfectReflection(t *testing.T) {
	mat := NewMetal(NewSolidTexture(core.NewColor(0.9, 0.9, 0.9)), 0)
	ctx := Context{Bias: 1e-4}
	rng := rand.New(rand.NewSource(1))

	// 45 degree incidence on a floor at y=0
	rayIn := core.NewRay(core.PrimaryRay, core.NewPoint(-1, 1, 0), core.NewDirection(1, -1, 0), 0)
	hit := core.Intersection{T: math.Sqrt2, Normal: core.NewDirection(0, 1, 0)}

	rec, ok := mat.Scatter(ctx, rayIn, hit, rng)
	require.True(t, ok)
	tolassert.EqualDirection(t, core.NewDirection(1, 1, 0).Normalize(), rec.Direction, 1e-9)
	assert.Equal(t, core.NewColor(0.9, 0.9, 0.9), rec.Attenuation)

	lift := rec.Origin.Sub(rayIn.At(hit.T))
	tolassert.EqualTol(t, ctx.Bias, lift.Dot(hit.Normal), 1e-12)
}

func TestMetalFuzzBoundsDeviation(t *testing.T) {
	const fuzz = 0.3
	mat := NewMetal(NewSolidTexture(core.White), fuzz)
	rng := rand.New(rand.NewSource(2))

	rayIn := core.NewRay(core.PrimaryRay, core.NewPoint(0, 1, 0), core.NewDirection(0, -1, 0), 0)
	hit := core.Intersection{T: 1, Normal: core.NewDirection(0, 1, 0)}
	perfect := core.NewDirection(0, 1, 0)

	// A fuzz perturbation of length f tilts the reflection by at most
	// asin(f) from the mirror direction.
	minCos := math.Sqrt(1 - fuzz*fuzz)
	for i := 0; i < 200; i++ {
		rec, ok := mat.Scatter(Context{}, rayIn, hit, rng)
		require.True(t, ok)
		assert.GreaterOrEqual(t, rec.Direction.Dot(perfect), minCos-1e-9)
	}
}

func TestMetalGrazingAbsorption(t *testing.T) {
	mat := NewMetal(NewSolidTexture(core.White), 1.0)
	rng := rand.New(rand.NewSource(3))

	// At grazing incidence a strong perturbation often dips below the
	// surface and the sample is absorbed.
	rayIn := core.NewRay(core.PrimaryRay, core.NewPoint(-10, 0.01, 0), core.NewDirection(1, -0.001, 0), 0)
	hit := core.Intersection{T: 10, Normal: core.NewDirection(0, 1, 0)}

	absorbed := 0
	for i := 0; i < 200; i++ {
		if _, ok := mat.Scatter(Context{}, rayIn, hit, rng); !ok {
			absorbed++
		}
	}
	assert.Greater(t, absorbed, 0, "expected some grazing samples to be absorbed")
}

func TestMetalFuzzClamped(t *testing.T) {
	assert.Equal(t, 1.0, NewMetal(NewSolidTexture(core.White), 2.5).Fuzz)
	assert.Equal(t, 0.0, NewMetal(NewSolidTexture(core.White), -1).Fuzz)
}

func TestMetalEmit(t *testing.T) {
	mat := NewMetal(NewSolidTexture(core.White), 0)
	assert.Equal(t, core.Black, mat.Emit(Context{}, core.Intersection{}))
}

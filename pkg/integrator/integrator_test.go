package integrator

import (
	"math/rand"
	"testing"

	"github.com/df07/go-solid-raytracer/pkg/core"
	"github.com/df07/go-solid-raytracer/pkg/geometry"
	"github.com/df07/go-solid-raytracer/pkg/material"
	"github.com/df07/go-solid-raytracer/pkg/scene"
	"github.com/df07/go-solid-raytracer/pkg/tolassert"
)

const tol = 1e-9

// glowMirror emits a constant radiance and reflects rays straight
// back with a fixed attenuation, so the recursion sums a geometric
// series that is easy to predict per depth bound.
type glowMirror struct {
	emit        core.Color
	attenuation core.Color
}

func (m glowMirror) Scatter(ctx material.Context, rayIn core.Ray, hit core.Intersection, rng *rand.Rand) (material.ScatterRecord, bool) {
	normal := hit.Normal
	if rayIn.Direction.Dot(normal) > 0 {
		normal = normal.Negate()
	}
	return material.ScatterRecord{
		Attenuation: m.attenuation,
		Origin:      rayIn.At(hit.T).Add(normal.Scale(ctx.Bias)),
		Direction:   rayIn.Direction.Negate(),
	}, true
}

func (m glowMirror) Emit(ctx material.Context, hit core.Intersection) core.Color {
	return m.emit
}

func testObject(t *testing.T, name string, shape geometry.Shape, mat material.Material) *scene.Object {
	t.Helper()
	obj, err := scene.NewObject(name, shape, mat, core.Identity())
	if err != nil {
		t.Fatalf("NewObject(%s) error = %v", name, err)
	}
	return obj
}

func TestCastMissReturnsBackground(t *testing.T) {
	s := &scene.Scene{Background: core.NewColor(0.1, 0.2, 0.3)}
	pt := NewPathTracer(s, 50, 1e-4)

	ray := core.NewRay(core.PrimaryRay, core.NewPoint(0, 0, 5), core.NewDirection(0, 0, -1), 0)
	got := pt.Cast(ray, rand.New(rand.NewSource(1)))
	tolassert.EqualColor(t, core.NewColor(0.1, 0.2, 0.3), got, tol)
}

func TestCastLightSphere(t *testing.T) {
	// A light never scatters, so one ray through its center returns
	// intensity times the texture with no background contribution.
	light := material.NewDiffuseLight(material.NewSolidTexture(core.NewColor(1, 0.5, 0.25)), 10)
	s := &scene.Scene{
		Background: core.Black,
		Objects: []*scene.Object{
			testObject(t, "light", geometry.NewSphere(core.NewPoint(0, 0, 0), 1), light),
		},
	}
	pt := NewPathTracer(s, 50, 1e-4)

	ray := core.NewRay(core.PrimaryRay, core.NewPoint(0, 0, 5), core.NewDirection(0, 0, -1), 0)
	got := pt.Cast(ray, rand.New(rand.NewSource(1)))
	tolassert.EqualColor(t, core.NewColor(10, 5, 2.5), got, tol)
}

func TestCastDepthBound(t *testing.T) {
	// Two facing mirror planes bounce the ray forever; the depth bound
	// cuts the series after three bounces. Each hit adds its emission
	// and attenuates the rest, so with emission 1 and attenuation a the
	// result is 1 + a + a^2 + a^3 per channel.
	mirror := glowMirror{
		emit:        core.NewColor(1, 1, 1),
		attenuation: core.NewColor(0.5, 0.25, 0),
	}
	s := &scene.Scene{
		Background: core.Black,
		Objects: []*scene.Object{
			testObject(t, "bottom", geometry.NewPlane(core.NewPoint(0, 0, 0), core.NewDirection(0, 0, 1)), mirror),
			testObject(t, "top", geometry.NewPlane(core.NewPoint(0, 0, 2), core.NewDirection(0, 0, -1)), mirror),
		},
	}
	pt := NewPathTracer(s, 3, 1e-4)

	ray := core.NewRay(core.PrimaryRay, core.NewPoint(0, 0, 1), core.NewDirection(0, 0, 1), 0)
	got := pt.Cast(ray, rand.New(rand.NewSource(1)))
	tolassert.EqualColor(t, core.NewColor(1.875, 1.328125, 1), got, 1e-6)
}

func TestCastAttenuatedBackground(t *testing.T) {
	// One mirror hit, then the reflected ray escapes to the background.
	mirror := glowMirror{
		emit:        core.Black,
		attenuation: core.NewColor(0.5, 0.5, 0.5),
	}
	s := &scene.Scene{
		Background: core.NewColor(0.2, 0.4, 0.6),
		Objects: []*scene.Object{
			testObject(t, "floor", geometry.NewPlane(core.NewPoint(0, 0, 0), core.NewDirection(0, 0, 1)), mirror),
		},
	}
	pt := NewPathTracer(s, 50, 1e-4)

	ray := core.NewRay(core.PrimaryRay, core.NewPoint(0, 0, 5), core.NewDirection(0, 0, -1), 0)
	got := pt.Cast(ray, rand.New(rand.NewSource(1)))
	tolassert.EqualColor(t, core.NewColor(0.1, 0.2, 0.3), got, tol)
}

func TestCastEmissionOnlyAtMaxDepth(t *testing.T) {
	mirror := glowMirror{
		emit:        core.NewColor(2, 2, 2),
		attenuation: core.NewColor(1, 1, 1),
	}
	s := &scene.Scene{
		Background: core.NewColor(5, 5, 5),
		Objects: []*scene.Object{
			testObject(t, "floor", geometry.NewPlane(core.NewPoint(0, 0, 0), core.NewDirection(0, 0, 1)), mirror),
		},
	}
	pt := NewPathTracer(s, 50, 1e-4)

	// A ray already at the bound keeps its hit's emission and never
	// scatters toward the bright background.
	ray := core.NewRay(core.PrimaryRay, core.NewPoint(0, 0, 5), core.NewDirection(0, 0, -1), 50)
	got := pt.Cast(ray, rand.New(rand.NewSource(1)))
	tolassert.EqualColor(t, core.NewColor(2, 2, 2), got, tol)
}

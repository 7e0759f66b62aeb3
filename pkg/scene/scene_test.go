package scene

import (
	"testing"

	"github.com/df07/go-solid-raytracer/pkg/core"
	"github.com/df07/go-solid-raytracer/pkg/geometry"
	"github.com/df07/go-solid-raytracer/pkg/tolassert"
)

func TestSceneIntersectNearest(t *testing.T) {
	near := mustObject("near", geometry.NewSphere(core.NewPoint(0, 0, -5), 1),
		testMaterial(), core.Identity())
	far := mustObject("far", geometry.NewSphere(core.NewPoint(0, 0, -10), 1),
		testMaterial(), core.Identity())
	s := &Scene{Objects: []*Object{far, near}}

	ray := core.NewRay(core.PrimaryRay, core.NewPoint(0, 0, 0), core.NewDirection(0, 0, -1), 0)
	hit, obj, ok := s.Intersect(ray, nil)
	if !ok {
		t.Fatal("expected a hit")
	}
	if obj.Name != "near" {
		t.Errorf("hit object %q, want near", obj.Name)
	}
	tolassert.Equal(t, 4, hit.T)
}

func TestSceneIntersectMiss(t *testing.T) {
	behind := mustObject("behind", geometry.NewSphere(core.NewPoint(0, 0, 5), 1),
		testMaterial(), core.Identity())
	s := &Scene{Objects: []*Object{behind}}

	ray := core.NewRay(core.PrimaryRay, core.NewPoint(0, 0, 0), core.NewDirection(0, 0, -1), 0)
	if _, _, ok := s.Intersect(ray, nil); ok {
		t.Fatal("expected a miss for geometry behind the ray")
	}
}

func TestScenePrimitiveCount(t *testing.T) {
	mesh := geometry.NewMesh(
		[]core.Point{
			core.NewPoint(0, 0, 0), core.NewPoint(1, 0, 0), core.NewPoint(0, 1, 0),
			core.NewPoint(1, 1, 0),
		},
		nil,
		[][3]int{{0, 1, 2}, {1, 3, 2}},
		false,
	)
	composite := geometry.NewComposite(
		geometry.NewSphere(core.NewPoint(0, 0, 0), 1),
		geometry.NewSphere(core.NewPoint(2, 0, 0), 1),
		geometry.NewSphere(core.NewPoint(4, 0, 0), 1),
	)
	s := &Scene{Objects: []*Object{
		mustObject("mesh", mesh, testMaterial(), core.Identity()),
		mustObject("cluster", composite, testMaterial(), core.Identity()),
		mustObject("ball", geometry.NewSphere(core.NewPoint(0, 0, 0), 1), testMaterial(), core.Identity()),
	}}

	if got := s.PrimitiveCount(); got != 6 {
		t.Errorf("PrimitiveCount() = %d, want 6", got)
	}
}

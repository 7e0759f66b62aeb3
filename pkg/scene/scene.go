package scene

import (
	"math/rand"

	"github.com/df07/go-solid-raytracer/pkg/core"
)

// CameraConfig describes the pinhole camera of a scene.
type CameraConfig struct {
	Position core.Point
	LookAt   core.Point
	Up       core.Direction
	VFov     float64 // vertical field of view in degrees
}

// Scene contains all the elements needed for rendering. It is built
// once and shared read-only across render workers.
type Scene struct {
	Background core.Color
	Camera     CameraConfig
	Objects    []*Object
}

// Intersect returns the nearest object hit ahead of the ray origin.
func (s *Scene) Intersect(ray core.Ray, rng *rand.Rand) (core.Intersection, *Object, bool) {
	var nearest core.Intersection
	var nearestObject *Object
	found := false
	for _, obj := range s.Objects {
		hit, ok := obj.Intersect(ray, rng)
		if !ok {
			continue
		}
		if !found || hit.T < nearest.T {
			nearest = hit
			nearestObject = obj
			found = true
		}
	}
	return nearest, nearestObject, found
}

// PrimitiveCount returns the total number of primitives across all
// objects, counting each mesh triangle individually.
func (s *Scene) PrimitiveCount() int {
	count := 0
	for _, obj := range s.Objects {
		count += obj.primitiveCount()
	}
	return count
}

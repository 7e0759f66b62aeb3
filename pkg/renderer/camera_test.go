package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-solid-raytracer/pkg/core"
	"github.com/df07/go-solid-raytracer/pkg/scene"
	"github.com/df07/go-solid-raytracer/pkg/tolassert"
)

func testCameraConfig() scene.CameraConfig {
	return scene.CameraConfig{
		Position: core.NewPoint(0, 0, 3),
		LookAt:   core.NewPoint(0, 0, 0),
		Up:       core.NewDirection(0, 1, 0),
		VFov:     60,
	}
}

func TestJitteredRayBasics(t *testing.T) {
	cam := NewCamera(testCameraConfig(), 64, 48)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		ray := cam.JitteredRay(rng.Intn(64), rng.Intn(48), rng)
		if ray.Kind != core.PrimaryRay {
			t.Fatalf("ray kind = %v, want primary", ray.Kind)
		}
		if ray.Depth != 0 {
			t.Fatalf("ray depth = %d, want 0", ray.Depth)
		}
		tolassert.EqualPoint(t, core.NewPoint(0, 0, 3), ray.Origin, 1e-12)
		tolassert.Equal(t, 1, ray.Direction.Length())
		if ray.Direction.Z >= 0 {
			t.Fatalf("ray through the image plane should head -z, got %v", ray.Direction)
		}
	}
}

func TestJitteredRayMatchesScreenMapping(t *testing.T) {
	const width, height = 64, 48
	cam := NewCamera(testCameraConfig(), width, height)

	// Replay the jitter sequence to compute the expected direction by
	// hand. The camera frame here is axis aligned, so the mapping is
	// (screenX, screenY, -1) from the camera position.
	seed := rand.New(rand.NewSource(7))
	u, v := seed.Float64(), seed.Float64()

	const x, y = 20, 31
	aspect := float64(width) / float64(height)
	tanHalf := math.Tan(30 * math.Pi / 180)
	screenX := (2*(float64(x)+u)/width - 1) * aspect * tanHalf
	screenY := (1 - 2*(float64(y)+v)/height) * tanHalf
	want := core.NewDirection(screenX, screenY, -1).Normalize()

	ray := cam.JitteredRay(x, y, rand.New(rand.NewSource(7)))
	tolassert.EqualDirection(t, want, ray.Direction, 1e-12)
}

func TestJitteredRayPixelQuadrants(t *testing.T) {
	cam := NewCamera(testCameraConfig(), 2, 2)
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 20; i++ {
		topLeft := cam.JitteredRay(0, 0, rng)
		if topLeft.Direction.X > 0 || topLeft.Direction.Y < 0 {
			t.Fatalf("top-left pixel ray = %v, want -x +y", topLeft.Direction)
		}
		bottomRight := cam.JitteredRay(1, 1, rng)
		if bottomRight.Direction.X < 0 || bottomRight.Direction.Y > 0 {
			t.Fatalf("bottom-right pixel ray = %v, want +x -y", bottomRight.Direction)
		}
	}
}

func TestCenterRay(t *testing.T) {
	// The center pixel of an odd-sized image maps to the middle of the
	// screen, so its center ray runs straight down the view axis.
	cam := NewCamera(testCameraConfig(), 3, 3)

	ray := cam.CenterRay(1, 1)
	tolassert.EqualPoint(t, core.NewPoint(0, 0, 3), ray.Origin, 1e-12)
	tolassert.EqualDirection(t, core.NewDirection(0, 0, -1), ray.Direction, 1e-12)
}

func TestCameraLookAtFrame(t *testing.T) {
	// A camera looking down +x must emit rays dominated by +x.
	cam := NewCamera(scene.CameraConfig{
		Position: core.NewPoint(0, 0, 0),
		LookAt:   core.NewPoint(1, 0, 0),
		Up:       core.NewDirection(0, 1, 0),
		VFov:     90,
	}, 10, 10)

	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		ray := cam.JitteredRay(rng.Intn(10), rng.Intn(10), rng)
		if ray.Direction.X < 0.5 {
			t.Fatalf("ray %v does not look down +x", ray.Direction)
		}
	}
}

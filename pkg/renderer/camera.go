package renderer

import (
	"math"
	"math/rand"

	"github.com/df07/go-solid-raytracer/pkg/core"
	"github.com/df07/go-solid-raytracer/pkg/scene"
)

// Camera generates primary rays through a pinhole. The look-at frame
// is stored as a camera-to-world matrix whose rows are right, up,
// backward and position, so camera-space points map to world space by
// row-vector multiplication.
type Camera struct {
	cameraToWorld core.Matrix44
	origin        core.Point
	width         int
	height        int
	aspect        float64
	tanHalfFov    float64
}

// NewCamera builds a camera from a scene camera config and the output
// resolution. VFov is the vertical field of view in degrees.
func NewCamera(cfg scene.CameraConfig, width, height int) *Camera {
	w := cfg.Position.Sub(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u)

	m := core.Identity()
	m[0][0], m[0][1], m[0][2] = u.X, u.Y, u.Z
	m[1][0], m[1][1], m[1][2] = v.X, v.Y, v.Z
	m[2][0], m[2][1], m[2][2] = w.X, w.Y, w.Z
	m[3][0], m[3][1], m[3][2] = cfg.Position.X, cfg.Position.Y, cfg.Position.Z

	return &Camera{
		cameraToWorld: m,
		origin:        cfg.Position,
		width:         width,
		height:        height,
		aspect:        float64(width) / float64(height),
		tanHalfFov:    math.Tan(cfg.VFov * math.Pi / 360),
	}
}

// JitteredRay returns a depth-zero primary ray through pixel (x, y),
// uniformly jittered inside the pixel footprint. Pixel (0, 0) is the
// top-left corner of the image.
func (c *Camera) JitteredRay(x, y int, rng *rand.Rand) core.Ray {
	return c.rayThrough(float64(x)+rng.Float64(), float64(y)+rng.Float64())
}

// CenterRay returns the unjittered ray through the center of pixel
// (x, y), for picking and debugging.
func (c *Camera) CenterRay(x, y int) core.Ray {
	return c.rayThrough(float64(x)+0.5, float64(y)+0.5)
}

func (c *Camera) rayThrough(px, py float64) core.Ray {
	ndcX := px / float64(c.width)
	ndcY := py / float64(c.height)

	screenX := (2*ndcX - 1) * c.aspect * c.tanHalfFov
	screenY := (1 - 2*ndcY) * c.tanHalfFov

	target := c.cameraToWorld.TransformPoint(core.NewPoint(screenX, screenY, -1))
	return core.NewRay(core.PrimaryRay, c.origin, target.Sub(c.origin), 0)
}

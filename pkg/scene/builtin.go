package scene

import (
	"math"
	"sort"

	"github.com/df07/go-solid-raytracer/pkg/core"
	"github.com/df07/go-solid-raytracer/pkg/geometry"
	"github.com/df07/go-solid-raytracer/pkg/material"
)

// BuiltinInfo describes one registered built-in scene.
type BuiltinInfo struct {
	Name        string
	Description string
}

var builtins = map[string]struct {
	description string
	construct   func() *Scene
}{
	"default": {"Spheres with mixed materials over a checkered ground", NewDefaultScene},
	"cornell": {"Cornell box with two rotated blocks", NewCornellScene},
	"csg":     {"Constructive solid geometry demo: lens, bitten sphere, torus", NewCSGScene},
	"volume":  {"Homogeneous fog sphere under an area light", NewVolumeScene},
}

// Builtin returns the named built-in scene.
func Builtin(name string) (*Scene, bool) {
	entry, ok := builtins[name]
	if !ok {
		return nil, false
	}
	return entry.construct(), true
}

// Builtins lists the registered built-in scenes sorted by name.
func Builtins() []BuiltinInfo {
	infos := make([]BuiltinInfo, 0, len(builtins))
	for name, entry := range builtins {
		infos = append(infos, BuiltinInfo{Name: name, Description: entry.description})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// mustObject builds an object for the built-in scenes, whose transforms
// are known to be invertible.
func mustObject(name string, shape geometry.Shape, mat material.Material, transform core.Matrix44) *Object {
	obj, err := NewObject(name, shape, mat, transform)
	if err != nil {
		panic(err)
	}
	return obj
}

func solid(r, g, b float64) material.Texture {
	return material.NewSolidTexture(core.NewColor(r, g, b))
}

// NewDefaultScene creates a default scene with spheres of every basic
// material over a checkered ground, lit by a large off-screen sphere
// light against a sky-blue background.
func NewDefaultScene() *Scene {
	ground := material.NewLambertian(material.NewCheckerTexture(
		core.NewColor(0.48, 0.48, 0.0),
		core.NewColor(0.9, 0.9, 0.9),
		2,
	))
	lambertianRed := material.NewLambertian(solid(0.65, 0.25, 0.2))
	metalSilver := material.NewMetal(solid(0.8, 0.8, 0.8), 0.0)
	metalGold := material.NewMetal(solid(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)
	light := material.NewDiffuseLight(solid(1.0, 0.93, 0.87), 15)

	return &Scene{
		Background: core.NewColor(0.5, 0.7, 1.0),
		Camera: CameraConfig{
			Position: core.NewPoint(0, 0.75, 2),
			LookAt:   core.NewPoint(0, 0.5, -1),
			Up:       core.NewDirection(0, 1, 0),
			VFov:     40,
		},
		Objects: []*Object{
			mustObject("ground",
				geometry.NewPlane(core.NewPoint(0, 0, 0), core.NewDirection(0, 1, 0)),
				ground, core.Identity()),
			mustObject("center sphere",
				geometry.NewSphere(core.NewPoint(0, 0.5, -1), 0.5),
				lambertianRed, core.Identity()),
			mustObject("left sphere",
				geometry.NewSphere(core.NewPoint(-1, 0.5, -1), 0.5),
				metalSilver, core.Identity()),
			mustObject("right sphere",
				geometry.NewSphere(core.NewPoint(1, 0.5, -1), 0.5),
				metalGold, core.Identity()),
			mustObject("glass sphere",
				geometry.NewSphere(core.NewPoint(0.5, 0.25, -0.5), 0.25),
				glass, core.Identity()),
			mustObject("sun",
				geometry.NewSphere(core.NewPoint(30, 30.5, 15), 10),
				light, core.Identity()),
		},
	}
}

// NewCornellScene creates the classic Cornell box: red and green side
// walls, white floor, ceiling and back, a ceiling light and two rotated
// blocks.
func NewCornellScene() *Scene {
	white := material.NewLambertian(solid(0.73, 0.73, 0.73))
	red := material.NewLambertian(solid(0.65, 0.05, 0.05))
	green := material.NewLambertian(solid(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(solid(1, 1, 1), 15)

	deg := math.Pi / 180
	tallBlock := core.RotateY(15 * deg).Mul(core.Translate(265, 0, 295))
	shortBlock := core.RotateY(-18 * deg).Mul(core.Translate(130, 0, 65))

	return &Scene{
		Background: core.Black,
		Camera: CameraConfig{
			Position: core.NewPoint(278, 278, -800),
			LookAt:   core.NewPoint(278, 278, 0),
			Up:       core.NewDirection(0, 1, 0),
			VFov:     40,
		},
		Objects: []*Object{
			mustObject("floor",
				geometry.NewRect(geometry.RectXZ, 0, 555, 0, 555, 0, false),
				white, core.Identity()),
			mustObject("ceiling",
				geometry.NewRect(geometry.RectXZ, 0, 555, 0, 555, 555, true),
				white, core.Identity()),
			mustObject("back wall",
				geometry.NewRect(geometry.RectXY, 0, 555, 0, 555, 555, true),
				white, core.Identity()),
			mustObject("left wall",
				geometry.NewRect(geometry.RectZY, 0, 555, 0, 555, 555, true),
				green, core.Identity()),
			mustObject("right wall",
				geometry.NewRect(geometry.RectZY, 0, 555, 0, 555, 0, false),
				red, core.Identity()),
			mustObject("light",
				geometry.NewRect(geometry.RectXZ, 213, 343, 227, 332, 554, true),
				light, core.Identity()),
			mustObject("tall block",
				geometry.NewCube(core.NewPoint(0, 0, 0), core.NewPoint(165, 330, 165)),
				white, tallBlock),
			mustObject("short block",
				geometry.NewCube(core.NewPoint(0, 0, 0), core.NewPoint(165, 165, 165)),
				white, shortBlock),
		},
	}
}

// NewCSGScene demonstrates the set operators: a lens ground from two
// spheres, a sphere with a bite taken out and a torus laid flat.
func NewCSGScene() *Scene {
	ground := material.NewLambertian(material.NewCheckerTexture(
		core.NewColor(0.2, 0.3, 0.1),
		core.NewColor(0.9, 0.9, 0.9),
		1,
	))
	glass := material.NewDielectric(1.5)
	lambertianBlue := material.NewLambertian(solid(0.1, 0.2, 0.5))
	metalCopper := material.NewMetal(solid(0.7, 0.45, 0.2), 0.1)
	light := material.NewDiffuseLight(solid(1, 1, 1), 10)

	lens := geometry.NewCSGIntersection(
		geometry.NewSphere(core.NewPoint(-0.4, 0, 0), 1),
		geometry.NewSphere(core.NewPoint(0.4, 0, 0), 1),
	)
	bitten := geometry.NewCSGDifference(
		geometry.NewSphere(core.NewPoint(0, 0, 0), 0.7),
		geometry.NewSphere(core.NewPoint(0.5, 0.5, 0.4), 0.5),
	)
	flatTorus := core.RotateX(90 * math.Pi / 180).Mul(core.Translate(2.2, 0.7, 0))

	return &Scene{
		Background: core.NewColor(0.6, 0.7, 0.9),
		Camera: CameraConfig{
			Position: core.NewPoint(0, 1.5, 5),
			LookAt:   core.NewPoint(0, 0.5, 0),
			Up:       core.NewDirection(0, 1, 0),
			VFov:     40,
		},
		Objects: []*Object{
			mustObject("ground",
				geometry.NewPlane(core.NewPoint(0, -0.7, 0), core.NewDirection(0, 1, 0)),
				ground, core.Identity()),
			mustObject("lens",
				lens, glass, core.Translate(-2.2, 0, 0)),
			mustObject("bitten sphere",
				bitten, lambertianBlue, core.Identity()),
			mustObject("torus",
				geometry.NewTorus(0.5, 0.2), metalCopper, flatTorus),
			mustObject("light",
				geometry.NewSphere(core.NewPoint(0, 6, 3), 2),
				light, core.Identity()),
		},
	}
}

// NewVolumeScene places a homogeneous fog sphere between the camera
// and an area light, over a dark ground.
func NewVolumeScene() *Scene {
	ground := material.NewLambertian(solid(0.2, 0.2, 0.2))
	fog := material.NewIsotropic(solid(0.8, 0.8, 0.8))
	light := material.NewDiffuseLight(solid(1, 1, 1), 7)

	medium := geometry.NewHomogeneousMedium(
		geometry.NewSphere(core.NewPoint(0, 1, 0), 1),
		1.5,
	)

	return &Scene{
		Background: core.NewColor(0.05, 0.05, 0.08),
		Camera: CameraConfig{
			Position: core.NewPoint(0, 1.5, 5),
			LookAt:   core.NewPoint(0, 1, 0),
			Up:       core.NewDirection(0, 1, 0),
			VFov:     40,
		},
		Objects: []*Object{
			mustObject("ground",
				geometry.NewPlane(core.NewPoint(0, 0, 0), core.NewDirection(0, 1, 0)),
				ground, core.Identity()),
			mustObject("fog",
				medium, fog, core.Identity()),
			mustObject("light",
				geometry.NewRect(geometry.RectXZ, -1.5, 1.5, -1.5, 1.5, 4, true),
				light, core.Identity()),
		},
	}
}

package scene

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-solid-raytracer/pkg/core"
	"github.com/df07/go-solid-raytracer/pkg/geometry"
	"github.com/df07/go-solid-raytracer/pkg/loaders"
	"github.com/df07/go-solid-raytracer/pkg/log"
	"github.com/df07/go-solid-raytracer/pkg/material"
)

var logger = log.New("scene")

// Description is the on-disk scene format. The same structure decodes
// from TOML, YAML or JSON; Load picks the codec by file extension.
type Description struct {
	Background [3]float64   `toml:"background" yaml:"background" json:"background"`
	Camera     CameraSpec   `toml:"camera" yaml:"camera" json:"camera"`
	Objects    []ObjectSpec `toml:"objects" yaml:"objects" json:"objects"`
}

// CameraSpec configures the camera. Up defaults to +y and vfov to 45
// degrees when omitted.
type CameraSpec struct {
	Position [3]float64 `toml:"position" yaml:"position" json:"position"`
	LookAt   [3]float64 `toml:"look_at" yaml:"look_at" json:"look_at"`
	Up       [3]float64 `toml:"up" yaml:"up" json:"up"`
	VFov     float64    `toml:"vfov" yaml:"vfov" json:"vfov"`
}

// ObjectSpec pairs a shape with a material and an optional transform
// chain. Transforms are listed outermost first: the last entry is
// applied to the shape first.
type ObjectSpec struct {
	Name       string          `toml:"name" yaml:"name" json:"name"`
	Shape      ShapeSpec       `toml:"shape" yaml:"shape" json:"shape"`
	Material   MaterialSpec    `toml:"material" yaml:"material" json:"material"`
	Transforms []TransformSpec `toml:"transforms" yaml:"transforms" json:"transforms"`
}

// ShapeSpec is a tagged union over every supported shape. Only the
// fields for the named type are read; CSG operands and medium
// boundaries nest recursively.
type ShapeSpec struct {
	Type string `toml:"type" yaml:"type" json:"type"`

	// sphere, cylinder, torus
	Center [3]float64 `toml:"center" yaml:"center" json:"center"`
	Radius float64    `toml:"radius" yaml:"radius" json:"radius"`
	Height float64    `toml:"height" yaml:"height" json:"height"`
	Major  float64    `toml:"major" yaml:"major" json:"major"`
	Minor  float64    `toml:"minor" yaml:"minor" json:"minor"`

	// plane
	Point  [3]float64 `toml:"point" yaml:"point" json:"point"`
	Normal [3]float64 `toml:"normal" yaml:"normal" json:"normal"`

	// rect
	Plane   string  `toml:"plane" yaml:"plane" json:"plane"`
	U0      float64 `toml:"u0" yaml:"u0" json:"u0"`
	U1      float64 `toml:"u1" yaml:"u1" json:"u1"`
	V0      float64 `toml:"v0" yaml:"v0" json:"v0"`
	V1      float64 `toml:"v1" yaml:"v1" json:"v1"`
	Offset  float64 `toml:"offset" yaml:"offset" json:"offset"`
	Reverse bool    `toml:"reverse" yaml:"reverse" json:"reverse"`

	// cube: either min/max corners or center/size
	Min  [3]float64 `toml:"min" yaml:"min" json:"min"`
	Max  [3]float64 `toml:"max" yaml:"max" json:"max"`
	Size float64    `toml:"size" yaml:"size" json:"size"`

	// mesh
	File   string `toml:"file" yaml:"file" json:"file"`
	Smooth bool   `toml:"smooth" yaml:"smooth" json:"smooth"`

	// composite, csg, medium
	Children []ShapeSpec `toml:"children" yaml:"children" json:"children"`
	A        *ShapeSpec  `toml:"a" yaml:"a" json:"a"`
	B        *ShapeSpec  `toml:"b" yaml:"b" json:"b"`
	Boundary *ShapeSpec  `toml:"boundary" yaml:"boundary" json:"boundary"`
	Density  float64     `toml:"density" yaml:"density" json:"density"`
}

// MaterialSpec selects a material variant and its texture.
type MaterialSpec struct {
	Type      string      `toml:"type" yaml:"type" json:"type"`
	Texture   TextureSpec `toml:"texture" yaml:"texture" json:"texture"`
	Fuzz      float64     `toml:"fuzz" yaml:"fuzz" json:"fuzz"`
	IOR       float64     `toml:"ior" yaml:"ior" json:"ior"`
	Intensity float64     `toml:"intensity" yaml:"intensity" json:"intensity"`
}

// TextureSpec selects a texture source. An empty type means a solid
// color.
type TextureSpec struct {
	Type   string     `toml:"type" yaml:"type" json:"type"`
	Color  [3]float64 `toml:"color" yaml:"color" json:"color"`
	Color2 [3]float64 `toml:"color2" yaml:"color2" json:"color2"`
	Scale  float64    `toml:"scale" yaml:"scale" json:"scale"`
	File   string     `toml:"file" yaml:"file" json:"file"`
}

// TransformSpec is one step of a transform chain. Angles are given in
// degrees.
type TransformSpec struct {
	Type  string     `toml:"type" yaml:"type" json:"type"`
	By    [3]float64 `toml:"by" yaml:"by" json:"by"`
	Angle float64    `toml:"angle" yaml:"angle" json:"angle"`
}

// Load reads a scene description file and builds the scene. The codec
// is chosen by extension: .toml, .yaml/.yml or .json. File references
// inside the description resolve relative to the description file.
func Load(filename string) (*Scene, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	var desc Description
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &desc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &desc)
	case ".json":
		err = json.Unmarshal(data, &desc)
	default:
		return nil, fmt.Errorf("scene: unsupported description format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", filename, err)
	}

	s, err := desc.Build(filepath.Dir(filename))
	if err != nil {
		return nil, err
	}
	logger.Infof("loaded %s: %d objects, %d primitives", filename, len(s.Objects), s.PrimitiveCount())
	return s, nil
}

// Build constructs the scene from a decoded description. Relative file
// references (meshes, texture images) resolve against dir.
func (d *Description) Build(dir string) (*Scene, error) {
	camera := CameraConfig{
		Position: point(d.Camera.Position),
		LookAt:   point(d.Camera.LookAt),
		Up:       direction(d.Camera.Up),
		VFov:     d.Camera.VFov,
	}
	if camera.Up.IsNearZero() {
		camera.Up = core.NewDirection(0, 1, 0)
	}
	if camera.VFov == 0 {
		camera.VFov = 45
	}

	s := &Scene{
		Background: core.NewColor(d.Background[0], d.Background[1], d.Background[2]),
		Camera:     camera,
	}
	for i, spec := range d.Objects {
		name := spec.Name
		if name == "" {
			name = fmt.Sprintf("object %d", i)
		}
		obj, err := spec.build(name, dir)
		if err != nil {
			return nil, err
		}
		s.Objects = append(s.Objects, obj)
	}
	return s, nil
}

func (spec *ObjectSpec) build(name, dir string) (*Object, error) {
	shape, err := spec.Shape.build(dir)
	if err != nil {
		return nil, fmt.Errorf("scene: object %s: %w", name, err)
	}
	mat, err := spec.Material.build(dir)
	if err != nil {
		return nil, fmt.Errorf("scene: object %s: %w", name, err)
	}
	transform, err := composeTransforms(spec.Transforms)
	if err != nil {
		return nil, fmt.Errorf("scene: object %s: %w", name, err)
	}
	return NewObject(name, shape, mat, transform)
}

func (spec *ShapeSpec) build(dir string) (geometry.Shape, error) {
	switch spec.Type {
	case "sphere":
		if spec.Radius <= 0 {
			return nil, fmt.Errorf("sphere radius must be positive, got %v", spec.Radius)
		}
		return geometry.NewSphere(point(spec.Center), spec.Radius), nil

	case "plane":
		n := direction(spec.Normal)
		if n.IsNearZero() {
			return nil, fmt.Errorf("plane normal must be non-zero")
		}
		return geometry.NewPlane(point(spec.Point), n), nil

	case "rect":
		plane, err := rectPlane(spec.Plane)
		if err != nil {
			return nil, err
		}
		return geometry.NewRect(plane, spec.U0, spec.U1, spec.V0, spec.V1, spec.Offset, spec.Reverse), nil

	case "cube":
		if spec.Size > 0 {
			return geometry.NewCubeCentered(point(spec.Center), spec.Size), nil
		}
		return geometry.NewCube(point(spec.Min), point(spec.Max)), nil

	case "cylinder":
		if spec.Radius <= 0 || spec.Height <= 0 {
			return nil, fmt.Errorf("cylinder needs positive radius and height")
		}
		return geometry.NewCylinder(spec.Radius, spec.Height), nil

	case "torus":
		if spec.Major <= 0 || spec.Minor <= 0 {
			return nil, fmt.Errorf("torus needs positive major and minor radii")
		}
		return geometry.NewTorus(spec.Major, spec.Minor), nil

	case "mesh":
		if spec.File == "" {
			return nil, fmt.Errorf("mesh needs a file")
		}
		obj, err := loaders.LoadOBJ(resolve(dir, spec.File))
		if err != nil {
			return nil, err
		}
		return geometry.NewMesh(obj.Vertices, obj.Normals, obj.Faces, spec.Smooth), nil

	case "composite":
		if len(spec.Children) == 0 {
			return nil, fmt.Errorf("composite needs children")
		}
		children := make([]geometry.Shape, len(spec.Children))
		for i := range spec.Children {
			child, err := spec.Children[i].build(dir)
			if err != nil {
				return nil, err
			}
			children[i] = child
		}
		return geometry.NewComposite(children...), nil

	case "union", "intersection", "difference":
		a, err := spec.solidOperand(spec.A, "a", dir)
		if err != nil {
			return nil, err
		}
		b, err := spec.solidOperand(spec.B, "b", dir)
		if err != nil {
			return nil, err
		}
		switch spec.Type {
		case "union":
			return geometry.NewCSGUnion(a, b), nil
		case "intersection":
			return geometry.NewCSGIntersection(a, b), nil
		default:
			return geometry.NewCSGDifference(a, b), nil
		}

	case "medium":
		if spec.Boundary == nil {
			return nil, fmt.Errorf("medium needs a boundary")
		}
		if spec.Density <= 0 {
			return nil, fmt.Errorf("medium density must be positive, got %v", spec.Density)
		}
		boundary, err := spec.Boundary.build(dir)
		if err != nil {
			return nil, err
		}
		solid, ok := boundary.(geometry.Solid)
		if !ok {
			return nil, fmt.Errorf("medium boundary %q is not a solid", spec.Boundary.Type)
		}
		return geometry.NewHomogeneousMedium(solid, spec.Density), nil

	case "":
		return nil, fmt.Errorf("shape needs a type")
	default:
		return nil, fmt.Errorf("unknown shape type %q", spec.Type)
	}
}

func (spec *ShapeSpec) solidOperand(operand *ShapeSpec, label, dir string) (geometry.Solid, error) {
	if operand == nil {
		return nil, fmt.Errorf("%s needs operand %s", spec.Type, label)
	}
	shape, err := operand.build(dir)
	if err != nil {
		return nil, err
	}
	solid, ok := shape.(geometry.Solid)
	if !ok {
		return nil, fmt.Errorf("%s operand %s: %q is not a solid", spec.Type, label, operand.Type)
	}
	return solid, nil
}

func (spec *MaterialSpec) build(dir string) (material.Material, error) {
	tex, err := spec.Texture.build(dir)
	if err != nil {
		return nil, err
	}
	switch spec.Type {
	case "lambertian", "":
		return material.NewLambertian(tex), nil
	case "metal":
		return material.NewMetal(tex, spec.Fuzz), nil
	case "dielectric":
		ior := spec.IOR
		if ior == 0 {
			ior = 1.5
		}
		if spec.Fuzz > 0 {
			return material.NewFrostedDielectric(ior, spec.Fuzz), nil
		}
		return material.NewDielectric(ior), nil
	case "light":
		intensity := spec.Intensity
		if intensity == 0 {
			intensity = 1
		}
		return material.NewDiffuseLight(tex, intensity), nil
	case "isotropic":
		return material.NewIsotropic(tex), nil
	default:
		return nil, fmt.Errorf("unknown material type %q", spec.Type)
	}
}

func (spec *TextureSpec) build(dir string) (material.Texture, error) {
	scale := spec.Scale
	if scale == 0 {
		scale = 1
	}
	switch spec.Type {
	case "solid", "":
		return material.NewSolidTexture(color(spec.Color)), nil
	case "checker":
		return material.NewCheckerTexture(color(spec.Color), color(spec.Color2), scale), nil
	case "image":
		if spec.File == "" {
			return nil, fmt.Errorf("image texture needs a file")
		}
		img, err := loaders.LoadImage(resolve(dir, spec.File))
		if err != nil {
			return nil, err
		}
		return material.NewImageTexture(img.Width, img.Height, img.Pixels, scale), nil
	default:
		return nil, fmt.Errorf("unknown texture type %q", spec.Type)
	}
}

// composeTransforms multiplies the chain so the last listed transform
// applies to points first.
func composeTransforms(specs []TransformSpec) (core.Matrix44, error) {
	m := core.Identity()
	for i := range specs {
		step, err := specs[i].matrix()
		if err != nil {
			return core.Matrix44{}, err
		}
		m = step.Mul(m)
	}
	return m, nil
}

func (spec *TransformSpec) matrix() (core.Matrix44, error) {
	switch spec.Type {
	case "translate":
		return core.Translate(spec.By[0], spec.By[1], spec.By[2]), nil
	case "scale":
		return core.Scale(spec.By[0], spec.By[1], spec.By[2]), nil
	case "rotate_x":
		return core.RotateX(spec.Angle * math.Pi / 180), nil
	case "rotate_y":
		return core.RotateY(spec.Angle * math.Pi / 180), nil
	case "rotate_z":
		return core.RotateZ(spec.Angle * math.Pi / 180), nil
	default:
		return core.Matrix44{}, fmt.Errorf("unknown transform type %q", spec.Type)
	}
}

func rectPlane(name string) (geometry.RectPlane, error) {
	switch strings.ToLower(name) {
	case "xy":
		return geometry.RectXY, nil
	case "xz":
		return geometry.RectXZ, nil
	case "zy":
		return geometry.RectZY, nil
	default:
		return 0, fmt.Errorf("unknown rect plane %q", name)
	}
}

// resolve keeps absolute file references as-is and joins relative ones
// onto the description's directory.
func resolve(dir, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}

func point(v [3]float64) core.Point {
	return core.NewPoint(v[0], v[1], v[2])
}

func direction(v [3]float64) core.Direction {
	return core.NewDirection(v[0], v[1], v[2])
}

func color(v [3]float64) core.Color {
	return core.NewColor(v[0], v[1], v[2])
}

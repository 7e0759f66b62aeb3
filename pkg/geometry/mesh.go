package geometry

import (
	"math/rand"

	"github.com/df07/go-solid-raytracer/pkg/core"
)

// triangleEpsilon rejects rays parallel to a triangle and culls
// back-facing hits in the same determinant test.
const triangleEpsilon = 1e-8

// Mesh is an indexed triangle surface. Faces index into the vertex
// list; when Smooth is set and per-vertex normals are present, hit
// normals are interpolated barycentrically, otherwise the flat face
// normal is used. Triangles are front-face only: rays arriving from
// behind the winding order pass through.
type Mesh struct {
	Vertices []core.Point
	Normals  []core.Direction
	Faces    [][3]int
	Smooth   bool

	bounds core.AABB
}

// NewMesh creates a triangle mesh. Normals may be nil for flat
// shading. Face indices must be within the vertex list.
func NewMesh(vertices []core.Point, normals []core.Direction, faces [][3]int, smooth bool) *Mesh {
	m := &Mesh{
		Vertices: vertices,
		Normals:  normals,
		Faces:    faces,
		Smooth:   smooth,
	}
	// Flat meshes have a zero-thickness box along one axis.
	m.bounds = core.AABBFromPoints(vertices).Pad(1e-6)
	return m
}

// TriangleCount returns the number of faces in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// Bounds returns the padded bounding box around all vertices.
func (m *Mesh) Bounds() core.AABB {
	return m.bounds
}

// Intersect returns the nearest front-facing triangle hit, testing
// every face after a bounding box rejection.
func (m *Mesh) Intersect(ray core.Ray, rng *rand.Rand) (core.Intersection, bool) {
	if !m.bounds.Hit(ray) {
		return core.Intersection{}, false
	}

	var nearest core.Intersection
	found := false
	for _, face := range m.Faces {
		hit, ok := m.hitTriangle(ray, face)
		if ok && (!found || hit.T < nearest.T) {
			nearest = hit
			found = true
		}
	}
	return nearest, found
}

// hitTriangle runs the Moller-Trumbore test against one face.
func (m *Mesh) hitTriangle(ray core.Ray, face [3]int) (core.Intersection, bool) {
	v0 := m.Vertices[face[0]]
	edge1 := m.Vertices[face[1]].Sub(v0)
	edge2 := m.Vertices[face[2]].Sub(v0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)
	if det < triangleEpsilon {
		return core.Intersection{}, false
	}
	inv := 1.0 / det

	s := ray.Origin.Sub(v0)
	u := s.Dot(h) * inv
	if u < 0 || u > 1 {
		return core.Intersection{}, false
	}

	q := s.Cross(edge1)
	v := ray.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return core.Intersection{}, false
	}

	t := edge2.Dot(q) * inv
	if t < 0 {
		return core.Intersection{}, false
	}

	return core.Intersection{
		T:      t,
		Normal: m.normalAt(face, edge1, edge2, u, v),
		UV:     core.UV{U: u, V: v},
	}, true
}

// normalAt interpolates vertex normals across the face when smooth
// shading is on, falling back to the geometric normal.
func (m *Mesh) normalAt(face [3]int, edge1, edge2 core.Direction, u, v float64) core.Direction {
	if m.Smooth && len(m.Normals) == len(m.Vertices) {
		n := m.Normals[face[0]].Scale(1 - u - v).
			Add(m.Normals[face[1]].Scale(u)).
			Add(m.Normals[face[2]].Scale(v))
		if !n.IsNearZero() {
			return n.Normalize()
		}
	}
	return edge1.Cross(edge2).Normalize()
}

package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-solid-raytracer/pkg/core"
)

// unitTriangle is a single right triangle in the z=0 plane wound so the
// geometric normal faces +z.
func unitTriangle(normals []core.Direction, smooth bool) *Mesh {
	vertices := []core.Point{
		core.NewPoint(0, 0, 0),
		core.NewPoint(1, 0, 0),
		core.NewPoint(0, 1, 0),
	}
	return NewMesh(vertices, normals, [][3]int{{0, 1, 2}}, smooth)
}

func TestMeshIntersect(t *testing.T) {
	mesh := unitTriangle(nil, false)

	tests := []struct {
		name      string
		origin    core.Point
		direction core.Direction
		wantHit   bool
		wantT     float64
	}{
		{
			name:      "front face hit",
			origin:    core.NewPoint(0.25, 0.25, 5),
			direction: core.NewDirection(0, 0, -1),
			wantHit:   true,
			wantT:     5,
		},
		{
			name:      "back face culled",
			origin:    core.NewPoint(0.25, 0.25, -5),
			direction: core.NewDirection(0, 0, 1),
			wantHit:   false,
		},
		{
			name:      "outside the face",
			origin:    core.NewPoint(0.9, 0.9, 5),
			direction: core.NewDirection(0, 0, -1),
			wantHit:   false,
		},
		{
			name:      "triangle behind the origin",
			origin:    core.NewPoint(0.25, 0.25, -5),
			direction: core.NewDirection(0, 0, -1),
			wantHit:   false,
		},
		{
			name:      "outside the bounding box",
			origin:    core.NewPoint(5, 5, 5),
			direction: core.NewDirection(0, 0, -1),
			wantHit:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := newTestRay(tt.origin, tt.direction)
			hit, ok := mesh.Intersect(ray, nil)
			if ok != tt.wantHit {
				t.Fatalf("Intersect() ok = %v, want %v", ok, tt.wantHit)
			}
			if !tt.wantHit {
				return
			}
			if !approx(hit.T, tt.wantT) {
				t.Errorf("T = %v, want %v", hit.T, tt.wantT)
			}
			if !approx(hit.Normal.Z, 1) {
				t.Errorf("Normal = %v, want (0, 0, 1)", hit.Normal)
			}
			if !approx(hit.UV.U, 0.25) || !approx(hit.UV.V, 0.25) {
				t.Errorf("UV = %v, want barycentric (0.25, 0.25)", hit.UV)
			}
		})
	}
}

func TestMeshSmoothNormals(t *testing.T) {
	normals := []core.Direction{
		core.NewDirection(0, 0, 1),
		core.NewDirection(1, 0, 0),
		core.NewDirection(0, 1, 0),
	}
	mesh := unitTriangle(normals, true)

	// Barycentric weights at (0.25, 0.25) are (0.5, 0.25, 0.25).
	ray := newTestRay(core.NewPoint(0.25, 0.25, 5), core.NewDirection(0, 0, -1))
	hit, ok := mesh.Intersect(ray, nil)
	if !ok {
		t.Fatal("expected a hit")
	}
	want := core.NewDirection(1, 1, 2).Scale(1 / math.Sqrt(6))
	if !approx(hit.Normal.X, want.X) || !approx(hit.Normal.Y, want.Y) || !approx(hit.Normal.Z, want.Z) {
		t.Errorf("Normal = %v, want %v", hit.Normal, want)
	}

	// At a vertex the interpolation collapses to that vertex's normal.
	ray = newTestRay(core.NewPoint(0, 0, 5), core.NewDirection(0, 0, -1))
	hit, ok = mesh.Intersect(ray, nil)
	if !ok {
		t.Fatal("expected a hit at the corner")
	}
	if !approx(hit.Normal.Z, 1) {
		t.Errorf("corner normal = %v, want (0, 0, 1)", hit.Normal)
	}
}

func TestMeshSmoothWithoutNormals(t *testing.T) {
	mesh := unitTriangle(nil, true)

	ray := newTestRay(core.NewPoint(0.25, 0.25, 5), core.NewDirection(0, 0, -1))
	hit, ok := mesh.Intersect(ray, nil)
	if !ok {
		t.Fatal("expected a hit")
	}
	if !approx(hit.Normal.Z, 1) {
		t.Errorf("Normal = %v, want flat (0, 0, 1)", hit.Normal)
	}
}

func TestMeshNearestFace(t *testing.T) {
	vertices := []core.Point{
		core.NewPoint(0, 0, 0), core.NewPoint(1, 0, 0), core.NewPoint(0, 1, 0),
		core.NewPoint(0, 0, -2), core.NewPoint(1, 0, -2), core.NewPoint(0, 1, -2),
	}
	mesh := NewMesh(vertices, nil, [][3]int{{0, 1, 2}, {3, 4, 5}}, false)

	if got := mesh.TriangleCount(); got != 2 {
		t.Fatalf("TriangleCount() = %d, want 2", got)
	}

	ray := newTestRay(core.NewPoint(0.25, 0.25, 5), core.NewDirection(0, 0, -1))
	hit, ok := mesh.Intersect(ray, nil)
	if !ok {
		t.Fatal("expected a hit")
	}
	if !approx(hit.T, 5) {
		t.Errorf("T = %v, want the nearer face at 5", hit.T)
	}
}

func TestMeshBounds(t *testing.T) {
	mesh := unitTriangle(nil, false)
	b := mesh.Bounds()
	if b.Min().X > 0 || b.Min().Y > 0 || b.Max().X < 1 || b.Max().Y < 1 {
		t.Errorf("bounds %v do not cover the triangle", b)
	}
	// Flat geometry still gets a box with volume.
	if b.Max().Z <= b.Min().Z {
		t.Errorf("bounds %v are degenerate along z", b)
	}
}

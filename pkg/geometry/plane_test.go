package geometry

import (
	"testing"

	"github.com/df07/go-solid-raytracer/pkg/core"
)

func TestPlaneIntersect(t *testing.T) {
	floor := NewPlane(core.NewPoint(0, 0, 0), core.NewDirection(0, 1, 0))

	tests := []struct {
		name    string
		ray     core.Ray
		wantT   float64
		wantHit bool
	}{
		{
			"straight down",
			newTestRay(core.NewPoint(0, 4, 0), core.NewDirection(0, -1, 0)),
			4, true,
		},
		{
			"diagonal",
			newTestRay(core.NewPoint(0, 1, 0), core.NewDirection(1, -1, 0).Normalize()),
			1.4142135624, true,
		},
		{
			"parallel misses",
			newTestRay(core.NewPoint(0, 1, 0), core.NewDirection(1, 0, 0)),
			0, false,
		},
		{
			"plane behind origin",
			newTestRay(core.NewPoint(0, 1, 0), core.NewDirection(0, 1, 0)),
			0, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := floor.Intersect(tt.ray, nil)
			if ok != tt.wantHit {
				t.Fatalf("Intersect() hit = %v, want %v", ok, tt.wantHit)
			}
			if !ok {
				return
			}
			if !approx(hit.T, tt.wantT) {
				t.Errorf("Intersect() t = %v, want %v", hit.T, tt.wantT)
			}
			if !approx(hit.Normal.Dot(core.NewDirection(0, 1, 0)), 1) {
				t.Errorf("normal = %v, want (0, 1, 0)", hit.Normal)
			}
		})
	}
}

func TestPlaneUVSpansInPlaneAxes(t *testing.T) {
	floor := NewPlane(core.NewPoint(0, 0, 0), core.NewDirection(0, 1, 0))

	// Two hits displaced within the plane must differ in uv by the
	// in-plane distance between them.
	a, ok := floor.Intersect(newTestRay(core.NewPoint(0, 1, 0), core.NewDirection(0, -1, 0)), nil)
	if !ok {
		t.Fatal("expected a hit at the plane origin")
	}
	b, ok := floor.Intersect(newTestRay(core.NewPoint(3, 1, 4), core.NewDirection(0, -1, 0)), nil)
	if !ok {
		t.Fatal("expected a hit at the displaced point")
	}

	du := b.UV.U - a.UV.U
	dv := b.UV.V - a.UV.V
	if !approx(du*du+dv*dv, 25) {
		t.Errorf("uv displacement %v, want length 5", du*du+dv*dv)
	}
}

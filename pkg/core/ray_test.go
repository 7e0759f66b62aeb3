package core

import (
	"math"
	"testing"
)

func TestNewRayNormalizes(t *testing.T) {
	r := NewRay(PrimaryRay, NewPoint(0, 0, 0), NewDirection(3, 0, 4), 0)
	if math.Abs(r.Direction.Length()-1.0) > tolerance {
		t.Errorf("direction length = %v, want 1", r.Direction.Length())
	}
	if !dirEqual(r.Direction, NewDirection(0.6, 0, 0.8)) {
		t.Errorf("direction = %v, want (0.6, 0, 0.8)", r.Direction)
	}
}

func TestRayAt(t *testing.T) {
	r := NewRay(PrimaryRay, NewPoint(1, 2, 3), NewDirection(0, 1, 0), 0)
	tests := []struct {
		name     string
		t        float64
		expected Point
	}{
		{"origin", 0, NewPoint(1, 2, 3)},
		{"forward", 2.5, NewPoint(1, 4.5, 3)},
		{"backward", -1, NewPoint(1, 1, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.At(tt.t); !pointEqual(got, tt.expected) {
				t.Errorf("At(%v) = %v, want %v", tt.t, got, tt.expected)
			}
		})
	}
}

func TestRayInvDirAndSign(t *testing.T) {
	r := NewRay(PrimaryRay, NewPoint(0, 0, 0), NewDirection(2, -2, 1).Normalize(), 0)
	if math.Abs(r.InvDir.X-1/r.Direction.X) > tolerance {
		t.Errorf("InvDir.X = %v, want %v", r.InvDir.X, 1/r.Direction.X)
	}
	if r.Sign != [3]int{0, 1, 0} {
		t.Errorf("Sign = %v, want [0 1 0]", r.Sign)
	}
}

func TestRayTransformKeepsParameter(t *testing.T) {
	// Transforming a ray must map points at equal parameter values,
	// which requires the direction to keep its scaled length.
	m := Scale(2, 2, 2).Mul(Translate(1, 0, 0))
	r := NewRay(PrimaryRay, NewPoint(1, 2, 3), NewDirection(0, 0, 1), 4)
	tr := r.Transform(m)

	if tr.Depth != 4 || tr.Kind != PrimaryRay {
		t.Errorf("Transform() lost ray metadata: %+v", tr)
	}
	for _, tv := range []float64{0, 0.5, 1, 3} {
		want := m.TransformPoint(r.At(tv))
		if got := tr.At(tv); !pointEqual(got, want) {
			t.Errorf("At(%v) after transform = %v, want %v", tv, got, want)
		}
	}
}

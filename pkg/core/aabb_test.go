package core

import "testing"

func TestAABBHit(t *testing.T) {
	box := NewAABB(NewPoint(-1, -1, -1), NewPoint(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		expected bool
	}{
		{
			"head on",
			NewRay(PrimaryRay, NewPoint(0, 0, -5), NewDirection(0, 0, 1), 0),
			true,
		},
		{
			"negative direction",
			NewRay(PrimaryRay, NewPoint(0, 0, 5), NewDirection(0, 0, -1), 0),
			true,
		},
		{
			"miss to the side",
			NewRay(PrimaryRay, NewPoint(3, 0, -5), NewDirection(0, 0, 1), 0),
			false,
		},
		{
			"origin inside",
			NewRay(PrimaryRay, NewPoint(0, 0, 0), NewDirection(1, 1, 1), 0),
			true,
		},
		{
			"box behind origin",
			NewRay(PrimaryRay, NewPoint(0, 0, 5), NewDirection(0, 0, 1), 0),
			false,
		},
		{
			"diagonal through corner region",
			NewRay(PrimaryRay, NewPoint(-5, -5, -5), NewDirection(1, 1, 1), 0),
			true,
		},
		{
			"grazing edge",
			NewRay(PrimaryRay, NewPoint(1, 0, -5), NewDirection(0, 0, 1), 0),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray); got != tt.expected {
				t.Errorf("Hit() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAABBFromPoints(t *testing.T) {
	points := []Point{
		NewPoint(1, 5, -2),
		NewPoint(-3, 2, 7),
		NewPoint(0, 9, 0),
	}
	box := AABBFromPoints(points)
	if !pointEqual(box.Min(), NewPoint(-3, 2, -2)) {
		t.Errorf("Min() = %v, want (-3, 2, -2)", box.Min())
	}
	if !pointEqual(box.Max(), NewPoint(1, 9, 7)) {
		t.Errorf("Max() = %v, want (1, 9, 7)", box.Max())
	}
}

func TestAABBPad(t *testing.T) {
	// A flat box must become hittable from any angle after padding.
	flat := NewAABB(NewPoint(-1, 0, -1), NewPoint(1, 0, 1)).Pad(1e-4)
	ray := NewRay(PrimaryRay, NewPoint(0, 5, 0), NewDirection(0, -1, 0), 0)
	if !flat.Hit(ray) {
		t.Error("padded flat box should be hit by a perpendicular ray")
	}
	if flat.Min().Y >= flat.Max().Y {
		t.Error("Pad() did not give the box thickness")
	}
}

package core

import "math"

// Point represents a location in 3D space.
type Point struct {
	X, Y, Z float64
}

// Direction represents a displacement or orientation in 3D space.
// Directions attached to rays and normals are kept at unit length.
type Direction struct {
	X, Y, Z float64
}

// NewPoint creates a new Point.
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// NewDirection creates a new Direction.
func NewDirection(x, y, z float64) Direction {
	return Direction{X: x, Y: y, Z: z}
}

// Add returns the point displaced by a direction.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y, Z: p.Z + d.Z}
}

// Sub returns the direction from another point to this one.
func (p Point) Sub(q Point) Direction {
	return Direction{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// DistanceTo returns the Euclidean distance to another point.
func (p Point) DistanceTo(q Point) float64 {
	return p.Sub(q).Length()
}

// Component returns the coordinate along axis 0, 1 or 2.
func (p Point) Component(axis int) float64 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// Add returns the sum of this direction and another.
func (d Direction) Add(o Direction) Direction {
	return Direction{X: d.X + o.X, Y: d.Y + o.Y, Z: d.Z + o.Z}
}

// Sub returns the difference of this direction and another.
func (d Direction) Sub(o Direction) Direction {
	return Direction{X: d.X - o.X, Y: d.Y - o.Y, Z: d.Z - o.Z}
}

// Scale returns the direction multiplied by a scalar.
func (d Direction) Scale(s float64) Direction {
	return Direction{X: d.X * s, Y: d.Y * s, Z: d.Z * s}
}

// Negate returns the direction pointing the opposite way.
func (d Direction) Negate() Direction {
	return Direction{X: -d.X, Y: -d.Y, Z: -d.Z}
}

// Dot returns the dot product with another direction.
func (d Direction) Dot(o Direction) float64 {
	return d.X*o.X + d.Y*o.Y + d.Z*o.Z
}

// Cross returns the cross product with another direction.
func (d Direction) Cross(o Direction) Direction {
	return Direction{
		X: d.Y*o.Z - d.Z*o.Y,
		Y: d.Z*o.X - d.X*o.Z,
		Z: d.X*o.Y - d.Y*o.X,
	}
}

// Length returns the magnitude of the direction.
func (d Direction) Length() float64 {
	return math.Sqrt(d.LengthSquared())
}

// LengthSquared returns the squared magnitude of the direction.
func (d Direction) LengthSquared() float64 {
	return d.X*d.X + d.Y*d.Y + d.Z*d.Z
}

// Normalize returns a unit-length direction. The zero direction is
// returned unchanged.
func (d Direction) Normalize() Direction {
	length := d.Length()
	if length == 0 {
		return d
	}
	return d.Scale(1.0 / length)
}

// IsNearZero reports whether every component is vanishingly small.
func (d Direction) IsNearZero() bool {
	const eps = 1e-8
	return math.Abs(d.X) < eps && math.Abs(d.Y) < eps && math.Abs(d.Z) < eps
}

// Reflect returns the direction mirrored about a unit normal.
func (d Direction) Reflect(n Direction) Direction {
	return d.Sub(n.Scale(2 * d.Dot(n)))
}

// Component returns the coordinate along axis 0, 1 or 2.
func (d Direction) Component(axis int) float64 {
	switch axis {
	case 0:
		return d.X
	case 1:
		return d.Y
	default:
		return d.Z
	}
}

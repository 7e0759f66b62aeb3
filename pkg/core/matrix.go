package core

import "math"

// Matrix44 is a row-major 4x4 transform matrix. Points and directions
// are treated as row vectors, so a point p is transformed as p * M and
// a chain A then B composes as A * B.
type Matrix44 [4][4]float64

// Identity returns the identity matrix.
func Identity() Matrix44 {
	return Matrix44{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate returns a translation matrix.
func Translate(x, y, z float64) Matrix44 {
	m := Identity()
	m[3][0] = x
	m[3][1] = y
	m[3][2] = z
	return m
}

// ScaleUniform returns a uniform scaling matrix.
func ScaleUniform(s float64) Matrix44 {
	return Scale(s, s, s)
}

// Scale returns a per-axis scaling matrix.
func Scale(x, y, z float64) Matrix44 {
	m := Identity()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// RotateX returns a rotation about the X axis by angle radians.
func RotateX(angle float64) Matrix44 {
	sin, cos := math.Sincos(angle)
	m := Identity()
	m[1][1] = cos
	m[1][2] = sin
	m[2][1] = -sin
	m[2][2] = cos
	return m
}

// RotateY returns a rotation about the Y axis by angle radians.
func RotateY(angle float64) Matrix44 {
	sin, cos := math.Sincos(angle)
	m := Identity()
	m[0][0] = cos
	m[0][2] = -sin
	m[2][0] = sin
	m[2][2] = cos
	return m
}

// RotateZ returns a rotation about the Z axis by angle radians.
func RotateZ(angle float64) Matrix44 {
	sin, cos := math.Sincos(angle)
	m := Identity()
	m[0][0] = cos
	m[0][1] = sin
	m[1][0] = -sin
	m[1][1] = cos
	return m
}

// Mul returns the matrix product m * o.
func (m Matrix44) Mul(o Matrix44) Matrix44 {
	var out Matrix44
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j] + m[i][3]*o[3][j]
		}
	}
	return out
}

// Transpose returns the transposed matrix.
func (m Matrix44) Transpose() Matrix44 {
	var out Matrix44
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// TransformPoint applies the full affine transform to a point,
// including the perspective divide when w is neither 1 nor 0.
func (m Matrix44) TransformPoint(p Point) Point {
	x := p.X*m[0][0] + p.Y*m[1][0] + p.Z*m[2][0] + m[3][0]
	y := p.X*m[0][1] + p.Y*m[1][1] + p.Z*m[2][1] + m[3][1]
	z := p.X*m[0][2] + p.Y*m[1][2] + p.Z*m[2][2] + m[3][2]
	w := p.X*m[0][3] + p.Y*m[1][3] + p.Z*m[2][3] + m[3][3]
	if w != 1 && w != 0 {
		inv := 1.0 / w
		return Point{X: x * inv, Y: y * inv, Z: z * inv}
	}
	return Point{X: x, Y: y, Z: z}
}

// TransformDirection applies the linear part of the transform,
// ignoring translation. The result is not renormalized.
func (m Matrix44) TransformDirection(d Direction) Direction {
	return Direction{
		X: d.X*m[0][0] + d.Y*m[1][0] + d.Z*m[2][0],
		Y: d.X*m[0][1] + d.Y*m[1][1] + d.Z*m[2][1],
		Z: d.X*m[0][2] + d.Y*m[1][2] + d.Z*m[2][2],
	}
}

// Inverse returns the inverted matrix using Gauss-Jordan elimination
// with partial pivoting. The second return value is false when the
// matrix is singular.
func (m Matrix44) Inverse() (Matrix44, bool) {
	a := m
	inv := Identity()
	for col := 0; col < 4; col++ {
		pivot := col
		for row := col + 1; row < 4; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return Matrix44{}, false
		}
		a[col], a[pivot] = a[pivot], a[col]
		inv[col], inv[pivot] = inv[pivot], inv[col]

		scale := 1.0 / a[col][col]
		for j := 0; j < 4; j++ {
			a[col][j] *= scale
			inv[col][j] *= scale
		}
		for row := 0; row < 4; row++ {
			if row == col {
				continue
			}
			factor := a[row][col]
			if factor == 0 {
				continue
			}
			for j := 0; j < 4; j++ {
				a[row][j] -= factor * a[col][j]
				inv[row][j] -= factor * inv[col][j]
			}
		}
	}
	return inv, true
}

package material

import (
	"math"

	"github.com/df07/go-solid-raytracer/pkg/core"
)

// Texture provides a spatially varying color sampled by UV coordinate.
type Texture interface {
	Sample(uv core.UV) core.Color
}

// SolidTexture returns a single color everywhere.
type SolidTexture struct {
	Color core.Color
}

// NewSolidTexture creates a uniform color texture.
func NewSolidTexture(color core.Color) *SolidTexture {
	return &SolidTexture{Color: color}
}

// Sample returns the solid color regardless of UV.
func (t *SolidTexture) Sample(uv core.UV) core.Color {
	return t.Color
}

// CheckerTexture alternates two colors on a UV grid.
type CheckerTexture struct {
	A, B  core.Color
	Scale float64 // number of checks per unit of UV space
}

// NewCheckerTexture creates a checker pattern texture.
func NewCheckerTexture(a, b core.Color, scale float64) *CheckerTexture {
	return &CheckerTexture{A: a, B: b, Scale: scale}
}

// Sample returns A on even cells and B on odd cells.
func (t *CheckerTexture) Sample(uv core.UV) core.Color {
	sum := int(math.Floor(uv.U*t.Scale)) + int(math.Floor(uv.V*t.Scale))
	// Floor keeps the pattern continuous across negative coordinates,
	// but Go's % can still return a negative remainder.
	if ((sum%2)+2)%2 == 0 {
		return t.A
	}
	return t.B
}

// ImageTexture samples a decoded image with nearest-neighbor
// filtering. Pixels are stored row-major with row 0 at the top of the
// image, so V is flipped on lookup.
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Color
	Scale  float64 // UV tiling factor
}

// NewImageTexture creates an image texture from linear RGB pixels.
func NewImageTexture(width, height int, pixels []core.Color, scale float64) *ImageTexture {
	if scale <= 0 {
		scale = 1
	}
	return &ImageTexture{Width: width, Height: height, Pixels: pixels, Scale: scale}
}

// Sample returns the pixel nearest to the wrapped UV coordinate.
func (t *ImageTexture) Sample(uv core.UV) core.Color {
	u := wrap(uv.U * t.Scale)
	v := wrap(uv.V * t.Scale)

	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height))
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}

// wrap maps a coordinate into [0, 1) preserving the fractional offset.
func wrap(x float64) float64 {
	return x - math.Floor(x)
}

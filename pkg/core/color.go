package core

import "math"

// Color represents a linear RGB radiance value. Components are
// unbounded until the final tonemap.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color.
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black is the zero radiance value.
var Black = Color{}

// White is full unit radiance in every channel.
var White = Color{R: 1, G: 1, B: 1}

// Add returns the componentwise sum of two colors.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Mul returns the componentwise product of two colors.
func (c Color) Mul(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B}
}

// Scale returns the color multiplied by a scalar.
func (c Color) Scale(s float64) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Gamma applies the square-root tonemap used for display output.
func (c Color) Gamma() Color {
	return Color{
		R: math.Sqrt(math.Max(0, c.R)),
		G: math.Sqrt(math.Max(0, c.G)),
		B: math.Sqrt(math.Max(0, c.B)),
	}
}

// Clamp limits every channel to the [min, max] range.
func (c Color) Clamp(min, max float64) Color {
	return Color{
		R: math.Min(math.Max(c.R, min), max),
		G: math.Min(math.Max(c.G, min), max),
		B: math.Min(math.Max(c.B, min), max),
	}
}

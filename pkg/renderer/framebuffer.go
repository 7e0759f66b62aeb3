package renderer

import (
	"image"
	"image/color"
	"sync"

	"github.com/df07/go-solid-raytracer/pkg/core"
)

// Framebuffer accumulates radiance per pixel across samples. A single
// mutex protects the whole grid; workers hold it only while merging
// one row, so accumulation stays commutative regardless of row order.
type Framebuffer struct {
	mu     sync.Mutex
	pixels [][]core.Color
	width  int
	height int
}

// NewFramebuffer creates a black framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	pixels := make([][]core.Color, height)
	for y := range pixels {
		pixels[y] = make([]core.Color, width)
	}
	return &Framebuffer{pixels: pixels, width: width, height: height}
}

// AddRow merges one row of per-sample radiance into the accumulator.
func (fb *Framebuffer) AddRow(y int, row []core.Color) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	dst := fb.pixels[y]
	for x, c := range row {
		dst[x] = dst[x].Add(c)
	}
}

// Snapshot tonemaps the accumulator into an 8-bit sRGB image: divide
// by the samples accumulated so far, gamma-correct with square root
// and clamp each channel.
func (fb *Framebuffer) Snapshot(samples int) *image.RGBA {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	scale := 1.0 / float64(samples)
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			c := fb.pixels[y][x].Scale(scale).Gamma().Clamp(0, 1)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * c.R),
				G: uint8(255 * c.G),
				B: uint8(255 * c.B),
				A: 255,
			})
		}
	}
	return img
}

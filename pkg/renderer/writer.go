package renderer

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// ImageWriter receives tonemapped snapshots while a render runs.
// Samples is the number of samples accumulated in the frame; final
// marks the last frame of the render.
type ImageWriter interface {
	WriteImage(img *image.RGBA, samples int, final bool) error
}

// PNGWriter writes every snapshot to the same file, so the output
// sharpens in place as samples accumulate.
type PNGWriter struct {
	Path string
}

// WriteImage encodes the frame as an 8-bit sRGB PNG.
func (w *PNGWriter) WriteImage(img *image.RGBA, samples int, final bool) error {
	f, err := os.Create(w.Path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	if final {
		logger.Noticef("wrote %s (%d samples)", w.Path, samples)
	}
	return nil
}

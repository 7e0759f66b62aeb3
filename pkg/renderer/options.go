package renderer

import (
	"errors"
	"runtime"
)

// Options configures a render.
type Options struct {
	Width      int     // output width in pixels
	Height     int     // output height in pixels
	Samples    int     // jittered rays per pixel
	MaxDepth   int     // bounce limit per camera ray
	Bias       float64 // scatter origin offset along the normal
	NumWorkers int     // parallel row workers per sample
}

// DefaultOptions returns options with sensible defaults for every
// field except the resolution and sample count.
func DefaultOptions() Options {
	return Options{
		MaxDepth:   50,
		Bias:       1e-4,
		NumWorkers: defaultWorkers(),
	}
}

func defaultWorkers() int {
	if n := runtime.NumCPU() - 1; n > 1 {
		return n
	}
	return 1
}

// Validate reports the first invalid field.
func (o Options) Validate() error {
	switch {
	case o.Width <= 0:
		return errors.New("renderer: width must be positive")
	case o.Height <= 0:
		return errors.New("renderer: height must be positive")
	case o.Samples <= 0:
		return errors.New("renderer: samples must be positive")
	case o.MaxDepth <= 0:
		return errors.New("renderer: max depth must be positive")
	case o.Bias <= 0:
		return errors.New("renderer: bias must be positive")
	case o.NumWorkers <= 0:
		return errors.New("renderer: workers must be positive")
	}
	return nil
}

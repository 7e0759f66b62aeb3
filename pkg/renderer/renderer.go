package renderer

import (
	"context"
	"errors"
	"image"
	"math/rand"
	"sync"
	"time"

	"github.com/df07/go-solid-raytracer/pkg/core"
	"github.com/df07/go-solid-raytracer/pkg/integrator"
	"github.com/df07/go-solid-raytracer/pkg/log"
	"github.com/df07/go-solid-raytracer/pkg/scene"
)

var logger = log.New("renderer")

// ErrMissingScene is returned when a renderer is created without a scene.
var ErrMissingScene = errors.New("renderer: scene is required")

const (
	progressInterval = 250 * time.Millisecond
	snapshotInterval = 5 * time.Second
)

// Renderer drives the sample loop: per sample it spawns row workers
// over a shared queue, merges whole rows into the framebuffer and
// hands periodic snapshots to the image writer.
type Renderer struct {
	scene         *scene.Scene
	camera        *Camera
	tracer        *integrator.PathTracer
	opts          Options
	fb            *Framebuffer
	sink          ProgressSink
	writer        ImageWriter
	snapshotEvery time.Duration
}

// New creates a renderer for a scene. Options are validated eagerly.
func New(s *scene.Scene, opts Options) (*Renderer, error) {
	if s == nil {
		return nil, ErrMissingScene
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{
		scene:         s,
		camera:        NewCamera(s.Camera, opts.Width, opts.Height),
		tracer:        integrator.NewPathTracer(s, opts.MaxDepth, opts.Bias),
		opts:          opts,
		fb:            NewFramebuffer(opts.Width, opts.Height),
		sink:          nopSink{},
		snapshotEvery: snapshotInterval,
	}, nil
}

// SetProgressSink routes progress events to sink.
func (r *Renderer) SetProgressSink(sink ProgressSink) {
	if sink == nil {
		sink = nopSink{}
	}
	r.sink = sink
}

// SetImageWriter routes tonemapped snapshots to w. Without a writer
// the render still runs and returns the final image.
func (r *Renderer) SetImageWriter(w ImageWriter) {
	r.writer = w
}

// SetSnapshotInterval overrides how often intermediate frames reach
// the image writer. Zero emits a frame after every sample.
func (r *Renderer) SetSnapshotInterval(d time.Duration) {
	r.snapshotEvery = d
}

// Render runs every sample and returns the final tonemapped image.
// Intermediate snapshot write failures are logged and rendering
// continues; only the final write fails the render. The context is
// checked between samples so callers can cancel long renders.
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	start := time.Now()
	stats := RenderStats{
		Width:   r.opts.Width,
		Height:  r.opts.Height,
		Samples: r.opts.Samples,
		Workers: r.opts.NumWorkers,
	}
	logger.Infof("rendering %dx%d, %d samples, depth %d, %d workers",
		r.opts.Width, r.opts.Height, r.opts.Samples, r.opts.MaxDepth, r.opts.NumWorkers)

	lastSnapshot := start
	for sample := 0; sample < r.opts.Samples; sample++ {
		select {
		case <-ctx.Done():
			return nil, stats, ctx.Err()
		default:
		}

		sampleStart := time.Now()
		r.renderSample(sample)
		elapsed := time.Since(sampleStart)

		stats.SampleTimes = append(stats.SampleTimes, elapsed)
		stats.RowsMerged += r.opts.Height
		stats.PrimaryRays += int64(r.opts.Width) * int64(r.opts.Height)
		r.sink.SampleDone(sample+1, r.opts.Samples, elapsed)

		final := sample == r.opts.Samples-1
		if r.writer != nil && !final &&
			(r.snapshotEvery == 0 || time.Since(lastSnapshot) >= r.snapshotEvery) {
			lastSnapshot = time.Now()
			if err := r.writer.WriteImage(r.fb.Snapshot(sample+1), sample+1, false); err != nil {
				logger.Warningf("snapshot after sample %d failed: %v", sample+1, err)
			}
		}
	}

	stats.Elapsed = time.Since(start)
	img := r.fb.Snapshot(r.opts.Samples)
	if r.writer != nil {
		if err := r.writer.WriteImage(img, r.opts.Samples, true); err != nil {
			return nil, stats, err
		}
	}
	logger.Noticef("render finished in %v", stats.Elapsed)
	return img, stats, nil
}

// renderSample runs one full pass over the image. A fresh set of
// workers drains the shared row queue, each rendering whole rows,
// merging them under the framebuffer mutex and sending one completion
// token per row. The main goroutine consumes exactly height tokens
// and throttles progress ticks.
func (r *Renderer) renderSample(sample int) {
	var queueMu sync.Mutex
	nextRow := 0
	completed := make(chan struct{}, r.opts.Height)

	for w := 0; w < r.opts.NumWorkers; w++ {
		go func() {
			for {
				queueMu.Lock()
				y := nextRow
				nextRow++
				queueMu.Unlock()
				if y >= r.opts.Height {
					return
				}

				rng := rand.New(rand.NewSource(rowSeed(sample, y)))
				row := make([]core.Color, r.opts.Width)
				for x := 0; x < r.opts.Width; x++ {
					ray := r.camera.JitteredRay(x, y, rng)
					row[x] = r.tracer.Cast(ray, rng)
				}
				r.fb.AddRow(y, row)
				completed <- struct{}{}
			}
		}()
	}

	lastTick := time.Now()
	for done := 1; done <= r.opts.Height; done++ {
		<-completed
		if time.Since(lastTick) >= progressInterval {
			lastTick = time.Now()
			r.sink.Progress(sample+1, r.opts.Samples, done, r.opts.Height)
		}
	}
}

// rowSeed derives the RNG seed for one row of one sample, so
// identical settings reproduce identical images.
func rowSeed(sample, y int) int64 {
	return int64((uint64(sample)<<32 | uint64(y)) * 0x9e3779b97f4a7c15)
}

package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-solid-raytracer/pkg/renderer"
	"github.com/df07/go-solid-raytracer/pkg/scene"
)

// RenderScene renders a scene to a PNG file. The single argument is a
// built-in scene name or a description file path.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene argument (a built-in name or a description file)")
	}

	sc, err := loadScene(ctx.Args().First())
	if err != nil {
		return err
	}

	opts := renderer.DefaultOptions()
	opts.Width = ctx.Int("width")
	opts.Height = ctx.Int("height")
	opts.Samples = ctx.Int("spp")
	opts.MaxDepth = ctx.Int("depth")
	opts.Bias = ctx.Float64("bias")
	if workers := ctx.Int("workers"); workers > 0 {
		opts.NumWorkers = workers
	}

	r, err := renderer.New(sc, opts)
	if err != nil {
		return err
	}
	r.SetProgressSink(renderer.LogSink{})
	r.SetImageWriter(&renderer.PNGWriter{Path: ctx.String("out")})

	_, stats, err := r.Render(context.Background())
	if err != nil {
		return err
	}

	displayRenderStats(stats)
	return nil
}

// loadScene resolves a scene argument: built-in names take precedence,
// anything else is treated as a description file.
func loadScene(arg string) (*scene.Scene, error) {
	if sc, ok := scene.Builtin(arg); ok {
		logger.Infof("using built-in scene %q", arg)
		return sc, nil
	}
	logger.Infof("loading scene description %s", arg)
	return scene.Load(arg)
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Samples", "Workers", "Primary rays", "Rays/sec", "Avg sample"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.Samples),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%d", stats.PrimaryRays),
		fmt.Sprintf("%.0f", stats.RaysPerSecond()),
		fmt.Sprintf("%s", stats.AverageSampleTime()),
	})
	table.SetFooter([]string{"", "", "", "", "TOTAL", fmt.Sprintf("%s", stats.Elapsed)})

	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}

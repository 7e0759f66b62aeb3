package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-solid-raytracer/cmd"
	"github.com/df07/go-solid-raytracer/pkg/log"
)

var logger = log.New("solidray")

func main() {
	app := cli.NewApp()
	app.Name = "solidray"
	app.Usage = "render scenes by path tracing solid geometry"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to a PNG file",
			Description: `
Render a built-in scene or a scene description file. Descriptions may
be TOML, YAML or JSON; run the scenes command for the built-in names.`,
			ArgsUsage: "scene",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 800,
					Usage: "frame width in pixels",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 600,
					Usage: "frame height in pixels",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 64,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: 50,
					Usage: "maximum ray bounces",
				},
				cli.Float64Flag{
					Name:  "bias",
					Value: 1e-4,
					Usage: "scatter origin offset to avoid self-intersection",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "row workers per sample (default: CPUs - 1)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "serve",
			Usage: "serve the web viewer",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port",
					Value: 8080,
					Usage: "port to listen on",
				},
			},
			Action: cmd.Serve,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

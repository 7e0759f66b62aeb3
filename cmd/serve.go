package cmd

import (
	"github.com/urfave/cli"

	"github.com/df07/go-solid-raytracer/web/server"
)

// Serve starts the web viewer, which streams render progress to the
// browser over server-sent events.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	srv := server.New(ctx.Int("port"))
	return srv.Start()
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/cmd"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "pathtracer"
	app.Usage = "render scenes using Monte Carlo path tracing"
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

	kinds := make([]string, len(integrator.Kinds))
	for i, kind := range integrator.Kinds {
		kinds[i] = string(kind)
	}

	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Build a scene from the catalogue, trace it with one task per scanline and
write the gamma-corrected frame as a PNG.

Zero-valued size and sampling flags keep the scene's recommended settings.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "cornell-boxes",
					Usage: "scene to render: " + strings.Join(scene.Names(), ", "),
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum path bounces",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "concurrent scanlines (0 = CPU count)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "base random seed",
				},
				cli.StringFlag{
					Name:  "integrator",
					Value: string(integrator.KindPath),
					Usage: "light transport: " + strings.Join(kinds, ", "),
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
				cli.StringFlag{
					Name:  "texture",
					Usage: "image used by textured scenes (checker when unset)",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list available scenes",
			Action: cmd.ListScenes,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

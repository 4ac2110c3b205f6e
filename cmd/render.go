package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Output gamma applied when encoding the linear framebuffer
const outputGamma = 2.0

// RenderOptions holds the render command's flags. Zero numeric values keep the
// scene's recommended setting.
type RenderOptions struct {
	Scene      string
	Width      int
	Height     int
	SPP        int
	Depth      int
	Workers    int
	Seed       int64
	Integrator integrator.Kind
	Out        string
	Texture    string
}

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := RenderOptions{
		Scene:      ctx.String("scene"),
		Width:      ctx.Int("width"),
		Height:     ctx.Int("height"),
		SPP:        ctx.Int("spp"),
		Depth:      ctx.Int("depth"),
		Workers:    ctx.Int("workers"),
		Seed:       ctx.Int64("seed"),
		Integrator: integrator.Kind(ctx.String("integrator")),
		Out:        ctx.String("out"),
		Texture:    ctx.String("texture"),
	}

	stats, err := Render(opts)
	if err != nil {
		return err
	}

	displayFrameStats(stats)
	return nil
}

// Render builds the scene, renders it and writes the PNG named by opts.Out.
func Render(opts RenderOptions) (renderer.RenderStats, error) {
	s, err := scene.New(opts.Scene, scene.Options{Seed: opts.Seed, TexturePath: opts.Texture})
	if err != nil {
		return renderer.RenderStats{}, err
	}

	config := applyOverrides(s.Config, opts)
	integ, err := integrator.New(opts.Integrator, config.MaxBounces, s.Lights)
	if err != nil {
		return renderer.RenderStats{}, err
	}

	r, err := renderer.NewRenderer(s.World(), s.NewCamera(config.AspectRatio()), integ, config)
	if err != nil {
		return renderer.RenderStats{}, fmt.Errorf("invalid render settings: %w", err)
	}

	logger.Noticef("rendering scene %s (%dx%d, %d spp, %s integrator)",
		s.Name, config.Width, config.Height, config.SamplesPerPixel, integratorName(opts.Integrator))
	img, stats := r.Render()

	if dir := filepath.Dir(opts.Out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return stats, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := loaders.WritePNG(opts.Out, img.RGBA(outputGamma)); err != nil {
		return stats, err
	}
	logger.Noticef("frame saved as %s", opts.Out)

	return stats, nil
}

// applyOverrides replaces the recommended settings with any flags that were set
func applyOverrides(config renderer.Config, opts RenderOptions) renderer.Config {
	if opts.Width > 0 {
		config.Width = opts.Width
	}
	if opts.Height > 0 {
		config.Height = opts.Height
	}
	if opts.SPP > 0 {
		config.SamplesPerPixel = opts.SPP
	}
	if opts.Depth > 0 {
		config.MaxBounces = opts.Depth
	}
	if opts.Workers > 0 {
		config.NumWorkers = opts.Workers
	}
	config.Seed = opts.Seed
	return config
}

func integratorName(kind integrator.Kind) string {
	if kind == "" {
		return string(integrator.KindPath)
	}
	return string(kind)
}

func displayFrameStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Pixels", "Samples", "Workers", "Avg bounces", "Cutoff paths", "Std error", "Samples/s"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%.2f", stats.AverageBounces()),
		fmt.Sprintf("%d", stats.CutoffPaths),
		fmt.Sprintf("%.4f", stats.MeanStdError),
		fmt.Sprintf("%.0f", stats.SamplesPerSecond()),
	})
	table.SetFooter([]string{"", "", "", "", "", "TOTAL", stats.Duration.String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}

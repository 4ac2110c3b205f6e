package renderer

import (
	"math"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
)

// Renderer renders a world through a camera with one task per scanline
type Renderer struct {
	world      geometry.Object
	camera     *Camera
	integrator integrator.Integrator
	config     Config
	logger     log.Logger
}

// NewRenderer creates a renderer after validating the configuration
func NewRenderer(world geometry.Object, camera *Camera, integ integrator.Integrator, config Config) (*Renderer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.MaxBounces <= 0 {
		config.MaxBounces = integrator.DefaultMaxBounces
	}
	return &Renderer{
		world:      world,
		camera:     camera,
		integrator: integ,
		config:     config,
		logger:     log.New("renderer"),
	}, nil
}

// Config returns the renderer's effective configuration
func (r *Renderer) Config() Config {
	return r.config
}

// Render traces every pixel and returns the linear image with its statistics.
// Each scanline draws from its own generator seeded with Seed+y, so the image
// depends only on the configuration and not on scheduling.
func (r *Renderer) Render() (*Image, RenderStats) {
	start := time.Now()
	width, height := r.config.Width, r.config.Height
	workers := r.config.workers()

	img := NewImage(width, height)
	rows := make([]rowStats, height)

	r.logger.Infof("rendering %dx%d at %d spp on %d workers", width, height, r.config.SamplesPerPixel, workers)

	var g errgroup.Group
	g.SetLimit(workers)
	for row := 0; row < height; row++ {
		row := row // per-iteration copy; go.mod targets go1.21 loop semantics
		g.Go(func() error {
			rows[row] = r.renderRow(img, row)
			return nil
		})
	}
	_ = g.Wait()

	stats := RenderStats{
		TotalPixels:     width * height,
		SamplesPerPixel: r.config.SamplesPerPixel,
		Workers:         workers,
	}
	for _, row := range rows {
		stats.merge(row)
	}
	stats.MeanStdError /= float64(stats.TotalPixels)
	stats.Duration = time.Since(start)

	r.logger.Infof("rendered %d samples in %s (%.0f samples/s)", stats.TotalSamples, stats.Duration, stats.SamplesPerSecond())
	if stats.CutoffPaths > 0 {
		r.logger.Debugf("%d paths reached the %d bounce limit", stats.CutoffPaths, r.config.MaxBounces)
	}
	return img, stats
}

// renderRow renders image row `row`, where row 0 is the top of the frame
func (r *Renderer) renderRow(img *Image, row int) rowStats {
	width, height := r.config.Width, r.config.Height
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(r.config.Seed + int64(row))))
	y := height - 1 - row

	var stats rowStats
	for x := 0; x < width; x++ {
		var pixel PixelStats
		for s := 0; s < r.config.SamplesPerPixel; s++ {
			u := (float64(x) + sampler.Get1D()) / float64(width)
			v := (float64(y) + sampler.Get1D()) / float64(height)
			ray := r.camera.GetRay(u, v, sampler)
			pixel.AddPath(r.integrator.Trace(ray, r.world, sampler), r.config.MaxBounces, &stats)
		}
		color := pixel.GetColor()
		if math.IsNaN(color.X) || math.IsNaN(color.Y) || math.IsNaN(color.Z) {
			r.logger.Warningf("NaN radiance at pixel (%d, %d)", x, row)
		}
		img.Set(x, row, color)
		stats.stdErrorSum += pixel.StandardError()
	}
	return stats
}

package renderer

import (
	"math"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	SamplesPerPixel int           // Samples taken per pixel
	Workers         int           // Scanlines rendered concurrently
	TotalBounces    int           // Sum of bounces over all paths
	CutoffPaths     int           // Paths that reached the bounce limit
	MeanStdError    float64       // Mean per-pixel standard error of luminance
	Duration        time.Duration // Wall-clock render time
}

// AverageBounces returns the mean path length in bounces
func (rs RenderStats) AverageBounces() float64 {
	if rs.TotalSamples == 0 {
		return 0
	}
	return float64(rs.TotalBounces) / float64(rs.TotalSamples)
}

// SamplesPerSecond returns the sample throughput
func (rs RenderStats) SamplesPerSecond() float64 {
	if rs.Duration <= 0 {
		return 0
	}
	return float64(rs.TotalSamples) / rs.Duration.Seconds()
}

// merge folds one scanline's counters into rs
func (rs *RenderStats) merge(row rowStats) {
	rs.TotalSamples += row.samples
	rs.TotalBounces += row.bounces
	rs.CutoffPaths += row.cutoff
	rs.MeanStdError += row.stdErrorSum
}

// rowStats holds the counters gathered by one scanline task
type rowStats struct {
	samples     int
	bounces     int
	cutoff      int
	stdErrorSum float64
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Vec3 // RGB accumulator for final result
	LuminanceAccum   float64   // Luminance accumulator for convergence
	LuminanceSqAccum float64   // Luminance squared for variance
	SampleCount      int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// AddPath adds a traced path and updates the row counters
func (ps *PixelStats) AddPath(result integrator.PathResult, maxBounces int, row *rowStats) {
	ps.AddSample(result.Radiance)
	row.samples++
	row.bounces += result.Bounces
	if result.Bounces >= maxBounces {
		row.cutoff++
	}
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// Variance returns the sample variance of the pixel's luminance
func (ps *PixelStats) Variance() float64 {
	if ps.SampleCount < 2 {
		return 0
	}
	n := float64(ps.SampleCount)
	mean := ps.LuminanceAccum / n
	variance := (ps.LuminanceSqAccum - n*mean*mean) / (n - 1)
	return math.Max(variance, 0)
}

// StandardError returns the standard error of the pixel's mean luminance
func (ps *PixelStats) StandardError() float64 {
	if ps.SampleCount < 2 {
		return 0
	}
	return math.Sqrt(ps.Variance() / float64(ps.SampleCount))
}

package renderer

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/df07/go-pathtracer/pkg/integrator"
)

var (
	// ErrInvalidDimensions is returned for a non-positive image width or height
	ErrInvalidDimensions = errors.New("renderer: image dimensions must be positive")

	// ErrInvalidSamples is returned for a non-positive sample count
	ErrInvalidSamples = errors.New("renderer: samples per pixel must be positive")
)

// Config contains rendering configuration
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxBounces      int   // Path length cutoff
	NumWorkers      int   // Concurrent scanlines, 0 = CPU count
	Seed            int64 // Base seed; scanline y uses Seed+y
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           500,
		Height:          500,
		SamplesPerPixel: 100,
		MaxBounces:      integrator.DefaultMaxBounces,
		NumWorkers:      0,
		Seed:            0,
	}
}

// Validate checks the configuration for values that cannot be rendered
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, c.SamplesPerPixel)
	}
	return nil
}

// AspectRatio returns width / height
func (c Config) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// workers returns the effective worker count
func (c Config) workers() int {
	if c.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return c.NumWorkers
}

package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(u, v float64, p core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two textures in a 3D checkerboard of period 2π/10
type Checker struct {
	Even Texture
	Odd  Texture
}

// NewChecker creates a new 3D checker texture
func NewChecker(even, odd Texture) *Checker {
	return &Checker{Even: even, Odd: odd}
}

// Evaluate picks a texture from the sign of sin(10x)·sin(10y)·sin(10z)
func (c *Checker) Evaluate(u, v float64, p core.Vec3) core.Vec3 {
	s := math.Sin(10*p.X) * math.Sin(10*p.Y) * math.Sin(10*p.Z)
	if s < 0 {
		return c.Odd.Evaluate(0, 0, p)
	}
	return c.Even.Evaluate(0, 0, p)
}

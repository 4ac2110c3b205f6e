package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// PathTracingIntegrator implements unidirectional path tracing with a hard bounce cutoff
type PathTracingIntegrator struct {
	MaxBounces int
}

// NewPathTracingIntegrator creates a new path tracing integrator.
// A non-positive maxBounces selects DefaultMaxBounces.
func NewPathTracingIntegrator(maxBounces int) *PathTracingIntegrator {
	if maxBounces <= 0 {
		maxBounces = DefaultMaxBounces
	}
	return &PathTracingIntegrator{MaxBounces: maxBounces}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Object, sampler core.Sampler) core.Vec3 {
	return pt.Trace(ray, world, sampler).Radiance
}

// Trace follows one path and reports its radiance and length
func (pt *PathTracingIntegrator) Trace(ray core.Ray, world geometry.Object, sampler core.Sampler) PathResult {
	return tracePath(ray, world, sampler, pt.MaxBounces, nil)
}

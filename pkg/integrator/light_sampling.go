package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// LightSamplingIntegrator is the path tracer with importance sampling toward lights.
// Diffuse bounces draw half their directions toward the lights and weight the
// attenuation by ScatteringPDF over the mixture density. Specular bounces are unchanged.
type LightSamplingIntegrator struct {
	MaxBounces int
	Lights     pdf.Targets
}

// NewLightSamplingIntegrator creates a light sampling integrator. With no lights it
// behaves exactly like the plain path tracer.
func NewLightSamplingIntegrator(maxBounces int, lights []pdf.Target) *LightSamplingIntegrator {
	if maxBounces <= 0 {
		maxBounces = DefaultMaxBounces
	}
	return &LightSamplingIntegrator{MaxBounces: maxBounces, Lights: lights}
}

// RayColor computes the color for a single ray
func (ls *LightSamplingIntegrator) RayColor(ray core.Ray, world geometry.Object, sampler core.Sampler) core.Vec3 {
	return ls.Trace(ray, world, sampler).Radiance
}

// Trace follows one path and reports its radiance and length
func (ls *LightSamplingIntegrator) Trace(ray core.Ray, world geometry.Object, sampler core.Sampler) PathResult {
	if len(ls.Lights) == 0 {
		return tracePath(ray, world, sampler, ls.MaxBounces, nil)
	}
	return tracePath(ray, world, sampler, ls.MaxBounces, ls.Lights)
}

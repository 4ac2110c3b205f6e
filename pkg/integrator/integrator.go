package integrator

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// DefaultMaxBounces is the hard path-length cutoff
const DefaultMaxBounces = 50

// selfIntersectionEpsilon keeps a scattered ray from re-hitting the surface it left
const selfIntersectionEpsilon = 0.001

// ErrUnknownIntegrator is returned by New for an unrecognized Kind
var ErrUnknownIntegrator = errors.New("integrator: unknown integrator kind")

// Kind names an integrator selectable from the command line
type Kind string

const (
	KindPath  Kind = "path"
	KindLight Kind = "light"
)

// Kinds lists the selectable integrators
var Kinds = []Kind{KindPath, KindLight}

// New creates the integrator named by kind. lights is ignored by the plain path tracer.
func New(kind Kind, maxBounces int, lights []pdf.Target) (Integrator, error) {
	switch kind {
	case KindPath, "":
		return NewPathTracingIntegrator(maxBounces), nil
	case KindLight:
		return NewLightSamplingIntegrator(maxBounces, lights), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownIntegrator, kind)
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns one Monte Carlo radiance sample along ray
	RayColor(ray core.Ray, world geometry.Object, sampler core.Sampler) core.Vec3

	// Trace is RayColor with path diagnostics
	Trace(ray core.Ray, world geometry.Object, sampler core.Sampler) PathResult
}

// PathResult is one radiance sample and the number of bounces it took
type PathResult struct {
	Radiance core.Vec3
	Bounces  int
}

// tracePath runs the radiance loop. When lights is non-nil, diffuse scatters draw
// their direction from an equal mix of the lights and the cosine lobe.
func tracePath(ray core.Ray, world geometry.Object, sampler core.Sampler, maxBounces int, lights pdf.Target) PathResult {
	accumulated := core.Vec3{}
	attenuation := core.NewVec3(1, 1, 1)
	bounces := 0

	for {
		hit, isHit := world.Hit(ray, selfIntersectionEpsilon, math.Inf(1), sampler)
		if !isHit {
			// Escaping rays contribute nothing, including what was gathered on the way
			return PathResult{Radiance: core.Vec3{}, Bounces: bounces}
		}

		emitted := hit.Material.Emitted(hit.U, hit.V, hit.Point, hit)
		accumulated = accumulated.Add(attenuation.MultiplyVec(emitted))

		scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
		if !didScatter {
			return PathResult{Radiance: accumulated, Bounces: bounces}
		}

		if lights != nil && !scatter.IsSpecular() {
			mixture := pdf.NewMixture(pdf.NewHittable(hit.Point, lights), pdf.NewCosine(hit.Normal))
			scattered := core.NewRayAt(hit.Point, mixture.Generate(sampler), ray.Time)
			density := mixture.Value(scattered.Direction)
			if !(density > 0) {
				return PathResult{Radiance: accumulated, Bounces: bounces}
			}
			weight := hit.Material.ScatteringPDF(ray, hit, scattered) / density
			attenuation = attenuation.MultiplyVec(scatter.Attenuation.Multiply(weight))
			ray = scattered
		} else {
			attenuation = attenuation.MultiplyVec(scatter.Attenuation)
			ray = scatter.Scattered
		}

		if bounces == maxBounces {
			return PathResult{Radiance: accumulated, Bounces: bounces}
		}
		bounces++
	}
}

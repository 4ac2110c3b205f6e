// Package pdf provides sampling strategies that both draw directions and evaluate
// their probability density, for importance sampling in the integrators.
package pdf

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PDF draws random directions and reports the solid-angle density of a direction.
// The set of implementations is closed: Cosine, Hittable and Mixture.
type PDF interface {
	Value(direction core.Vec3) float64
	Generate(sampler core.Sampler) core.Vec3
	isPDF()
}

// Target is an object that can be sampled as a light: it reports the solid-angle
// density of reaching it from origin along direction, and picks a direction toward it.
type Target interface {
	PDFValue(origin, direction core.Vec3) float64
	Random(origin core.Vec3, sample core.Vec2) core.Vec3
}

// Cosine is the cosine-weighted hemisphere density around Basis.W
type Cosine struct {
	Basis core.ONB
}

// NewCosine creates a cosine density oriented along normal
func NewCosine(normal core.Vec3) Cosine {
	return Cosine{Basis: core.BuildFromW(normal)}
}

// Value returns cosθ/π, or 0 below the hemisphere
func (c Cosine) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(c.Basis.W)
	if cosine > 0 {
		return cosine / math.Pi
	}
	return 0
}

// Generate draws a direction with Malley's method in the basis
func (c Cosine) Generate(sampler core.Sampler) core.Vec3 {
	return c.Basis.Local(core.RandomCosineDirection(sampler.Get2D()))
}

func (Cosine) isPDF() {}

// Hittable samples directions from Origin toward a Target
type Hittable struct {
	Origin core.Vec3
	Target Target
}

// NewHittable creates a density toward target as seen from origin
func NewHittable(origin core.Vec3, target Target) Hittable {
	return Hittable{Origin: origin, Target: target}
}

// Value delegates to the target's solid-angle density
func (h Hittable) Value(direction core.Vec3) float64 {
	return h.Target.PDFValue(h.Origin, direction)
}

// Generate returns the direction from Origin to a random point on the target
func (h Hittable) Generate(sampler core.Sampler) core.Vec3 {
	return h.Target.Random(h.Origin, sampler.Get2D())
}

func (Hittable) isPDF() {}

// Mixture is an equal-weight blend of two densities
type Mixture struct {
	P, Q PDF
}

// NewMixture creates an equal-weight blend of p and q
func NewMixture(p, q PDF) Mixture {
	return Mixture{P: p, Q: q}
}

// Value returns the average of both component densities
func (m Mixture) Value(direction core.Vec3) float64 {
	return 0.5*m.P.Value(direction) + 0.5*m.Q.Value(direction)
}

// Generate flips a fair coin to pick which component draws the direction
func (m Mixture) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < 0.5 {
		return m.P.Generate(sampler)
	}
	return m.Q.Generate(sampler)
}

func (Mixture) isPDF() {}

// Targets combines several light targets, choosing one uniformly per sample
type Targets []Target

// PDFValue averages the densities of every target
func (ts Targets) PDFValue(origin, direction core.Vec3) float64 {
	if len(ts) == 0 {
		return 0
	}
	sum := 0.0
	for _, t := range ts {
		sum += t.PDFValue(origin, direction)
	}
	return sum / float64(len(ts))
}

// Random picks one target uniformly, reusing the sample to keep it stratified
func (ts Targets) Random(origin core.Vec3, sample core.Vec2) core.Vec3 {
	n := len(ts)
	scaled := sample.X * float64(n)
	idx := int(scaled)
	if idx >= n {
		idx = n - 1
	}
	return ts[idx].Random(origin, core.NewVec2(scaled-float64(idx), sample.Y))
}

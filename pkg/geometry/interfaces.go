package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Object is anything a ray can hit. The set of implementations is closed:
// Sphere, Rect, the decorators in this package, ConstantMedium, Union, ObjectList and BVH.
// Objects are immutable once built and safe for concurrent use.
type Object interface {
	// Hit returns the nearest intersection with t in [tMin, tMax).
	// The sampler is only consumed by stochastic objects such as participating media.
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool)

	// BoundingBox returns a box containing the object over the whole exposure interval
	BoundingBox(exposure core.Interval) core.AABB

	isObject()
}

// Compile-time checks that the light-capable objects can be importance sampled
var (
	_ pdf.Target = (*Sphere)(nil)
	_ pdf.Target = (*Rect)(nil)
	_ pdf.Target = (*FlipNormals)(nil)
	_ pdf.Target = (*Translate)(nil)
)

// inRange reports whether t lies in [tMin, tMax); NaN never does
func inRange(t, tMin, tMax float64) bool {
	return t >= tMin && t < tMax
}

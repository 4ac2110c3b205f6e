package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// boundaryEpsilon separates the entry hit from the exit hit of a medium boundary
const boundaryEpsilon = 0.0001

// ConstantMedium is a volume of uniform density, such as smoke or fog, that
// scatters rays at a random depth inside its boundary
type ConstantMedium struct {
	Boundary Object
	Density  float64
	Phase    material.Material
}

// NewConstantMedium fills boundary with a medium of the given density
func NewConstantMedium(boundary Object, density float64, phase material.Material) *ConstantMedium {
	return &ConstantMedium{Boundary: boundary, Density: density, Phase: phase}
}

// Hit finds where the ray enters and leaves the boundary and draws a free-flight
// distance -ln(u)/density. The same ray may or may not scatter on repeated calls.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, -math.MaxFloat64, math.MaxFloat64, sampler)
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, entry.T+boundaryEpsilon, math.MaxFloat64, sampler)
	if !ok {
		return nil, false
	}

	t1 := max(entry.T, tMin)
	t2 := min(exit.T, tMax)
	if t1 >= t2 {
		return nil, false
	}

	rayLength := ray.Direction.Length()
	distanceInside := (t2 - t1) * rayLength
	hitDistance := -(1 / m.Density) * math.Log(sampler.Get1D())
	if !(hitDistance < distanceInside) {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		U:        0,
		V:        0,
		Normal:   core.NewVec3(1, 0, 0), // arbitrary
		Material: m.Phase,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox(exposure core.Interval) core.AABB {
	return m.Boundary.BoundingBox(exposure)
}

func (*ConstantMedium) isObject() {}

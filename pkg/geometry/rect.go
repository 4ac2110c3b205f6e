package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// rectThickness pads the degenerate axis of a rect's bounding box
const rectThickness = 0.0001

// Rect is an axis-aligned rectangle lying in the plane Axis = K.
// Range0 and Range1 span the two remaining axes in alphabetical order
// (X: Y,Z; Y: X,Z; Z: X,Y). Its normal always points along +Axis.
type Rect struct {
	Axis     core.Axis
	Range0   core.Interval
	Range1   core.Interval
	K        float64
	Material material.Material
}

// NewRect creates a new axis-aligned rectangle
func NewRect(axis core.Axis, range0, range1 core.Interval, k float64, material material.Material) *Rect {
	return &Rect{
		Axis:     axis,
		Range0:   range0,
		Range1:   range1,
		K:        k,
		Material: material,
	}
}

// Hit tests if a ray intersects the rectangle
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	t := (r.K - ray.Origin.Index(r.Axis)) / ray.Direction.Index(r.Axis)
	if !inRange(t, tMin, tMax) {
		return nil, false
	}

	a0, a1 := r.Axis.Others()
	point := ray.At(t)
	x := point.Index(a0)
	y := point.Index(a1)
	if !r.Range0.Contains(x) || !r.Range1.Contains(y) {
		return nil, false
	}

	return &material.HitRecord{
		T:     t,
		Point: point,
		// Divides by the range's upper bound rather than its span
		U:        (x - r.Range0.Min) / r.Range0.Max,
		V:        (y - r.Range1.Min) / r.Range1.Max,
		Normal:   r.Axis.Unit(),
		Material: r.Material,
	}, true
}

// BoundingBox returns the rectangle's box, padded slightly along its normal
func (r *Rect) BoundingBox(exposure core.Interval) core.AABB {
	a0, a1 := r.Axis.Others()
	min := core.Vec3{}.
		With(r.Axis, r.K-rectThickness).
		With(a0, r.Range0.Min).
		With(a1, r.Range1.Min)
	max := core.Vec3{}.
		With(r.Axis, r.K+rectThickness).
		With(a0, r.Range0.Max).
		With(a1, r.Range1.Max)
	return core.NewAABB(min, max)
}

// Area returns the surface area of the rectangle
func (r *Rect) Area() float64 {
	return r.Range0.Size() * r.Range1.Size()
}

// PDFValue converts the uniform area density to solid angle: distance²/(cosθ·area)
func (r *Rect) PDFValue(origin, direction core.Vec3) float64 {
	hit, ok := r.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1), nil)
	if !ok {
		return 0
	}

	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(hit.Normal)) / direction.Length()
	return distanceSquared / (cosine * r.Area())
}

// Random returns the direction from origin to a uniform point on the rectangle
func (r *Rect) Random(origin core.Vec3, sample core.Vec2) core.Vec3 {
	a0, a1 := r.Axis.Others()
	point := core.Vec3{}.
		With(r.Axis, r.K).
		With(a0, r.Range0.Lerp(sample.X)).
		With(a1, r.Range1.Lerp(sample.Y))
	return point.Subtract(origin)
}

func (*Rect) isObject() {}

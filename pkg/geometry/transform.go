package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
	"github.com/go-gl/mathgl/mgl64"
)

// FlipNormals is the same geometry as Inner with its normals inverted
type FlipNormals struct {
	Inner Object
}

// NewFlipNormals wraps inner so that its normals point the other way
func NewFlipNormals(inner Object) *FlipNormals {
	return &FlipNormals{Inner: inner}
}

// Hit delegates and negates the normal
func (f *FlipNormals) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	hit, ok := f.Inner.Hit(ray, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}
	flipped := *hit
	flipped.Normal = hit.Normal.Negate()
	return &flipped, true
}

// BoundingBox returns the inner object's box
func (f *FlipNormals) BoundingBox(exposure core.Interval) core.AABB {
	return f.Inner.BoundingBox(exposure)
}

// PDFValue forwards to the inner object when it can be sampled, and is 0 otherwise
func (f *FlipNormals) PDFValue(origin, direction core.Vec3) float64 {
	if target, ok := f.Inner.(pdf.Target); ok {
		return target.PDFValue(origin, direction)
	}
	return 0
}

// Random forwards to the inner object when it can be sampled
func (f *FlipNormals) Random(origin core.Vec3, sample core.Vec2) core.Vec3 {
	if target, ok := f.Inner.(pdf.Target); ok {
		return target.Random(origin, sample)
	}
	return core.NewVec3(0, 1, 0)
}

func (*FlipNormals) isObject() {}

// Translate is the same geometry as Inner moved by Offset
type Translate struct {
	Offset core.Vec3
	Inner  Object
}

// NewTranslate moves inner by offset
func NewTranslate(offset core.Vec3, inner Object) *Translate {
	return &Translate{Offset: offset, Inner: inner}
}

// Hit moves the ray into the inner object's space and the hit point back out
func (tr *Translate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	moved := ray
	moved.Origin = ray.Origin.Subtract(tr.Offset)

	hit, ok := tr.Inner.Hit(moved, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}
	translated := *hit
	translated.Point = hit.Point.Add(tr.Offset)
	return &translated, true
}

// BoundingBox returns the inner box moved by the offset
func (tr *Translate) BoundingBox(exposure core.Interval) core.AABB {
	return tr.Inner.BoundingBox(exposure).Translate(tr.Offset)
}

// PDFValue forwards to the inner object from the translated origin
func (tr *Translate) PDFValue(origin, direction core.Vec3) float64 {
	if target, ok := tr.Inner.(pdf.Target); ok {
		return target.PDFValue(origin.Subtract(tr.Offset), direction)
	}
	return 0
}

// Random forwards to the inner object from the translated origin
func (tr *Translate) Random(origin core.Vec3, sample core.Vec2) core.Vec3 {
	if target, ok := tr.Inner.(pdf.Target); ok {
		return target.Random(origin.Subtract(tr.Offset), sample)
	}
	return core.NewVec3(0, 1, 0)
}

func (*Translate) isObject() {}

// Scale is the same geometry as Inner scaled per axis by Factor
type Scale struct {
	Factor core.Vec3
	Inner  Object
}

// NewScale scales inner by factor along each axis
func NewScale(factor core.Vec3, inner Object) *Scale {
	return &Scale{Factor: factor, Inner: inner}
}

// Hit shrinks the ray into the inner object's space. The normal is divided by the
// factor (the inverse transpose of a diagonal scale) and renormalized.
func (s *Scale) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	scaled := ray
	scaled.Origin = ray.Origin.DivideVec(s.Factor)
	scaled.Direction = ray.Direction.DivideVec(s.Factor)

	hit, ok := s.Inner.Hit(scaled, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}
	result := *hit
	result.Point = hit.Point.MultiplyVec(s.Factor)
	result.Normal = hit.Normal.DivideVec(s.Factor).Normalize()
	return &result, true
}

// BoundingBox returns the inner box with its corners scaled
func (s *Scale) BoundingBox(exposure core.Interval) core.AABB {
	box := s.Inner.BoundingBox(exposure)
	return core.NewAABBFromPoints(box.Min.MultiplyVec(s.Factor), box.Max.MultiplyVec(s.Factor))
}

func (*Scale) isObject() {}

// RotateY is the same geometry as Inner rotated about the Y axis
type RotateY struct {
	Inner   Object
	Degrees float64
	forward mgl64.Mat3 // object to world
	inverse mgl64.Mat3 // world to object
}

// NewRotateY rotates inner by degrees about the Y axis
func NewRotateY(degrees float64, inner Object) *RotateY {
	radians := mgl64.DegToRad(degrees)
	return &RotateY{
		Inner:   inner,
		Degrees: degrees,
		forward: mgl64.Rotate3DY(radians),
		inverse: mgl64.Rotate3DY(-radians),
	}
}

// Hit rotates the ray by -angle, delegates, and rotates the hit back by +angle
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	rotated := ray
	rotated.Origin = rotate(r.inverse, ray.Origin)
	rotated.Direction = rotate(r.inverse, ray.Direction)

	hit, ok := r.Inner.Hit(rotated, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}
	result := *hit
	result.Point = rotate(r.forward, hit.Point)
	result.Normal = rotate(r.forward, hit.Normal)
	return &result, true
}

// BoundingBox bounds all 8 rotated corners of the inner box
func (r *RotateY) BoundingBox(exposure core.Interval) core.AABB {
	corners := r.Inner.BoundingBox(exposure).Corners()
	for i, c := range corners {
		corners[i] = rotate(r.forward, c)
	}
	return core.NewAABBFromPoints(corners[:]...)
}

func (*RotateY) isObject() {}

func rotate(m mgl64.Mat3, v core.Vec3) core.Vec3 {
	out := m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return core.NewVec3(out[0], out[1], out[2])
}

// LinearMove moves Inner by Motion per unit time, producing motion blur
type LinearMove struct {
	Motion core.Vec3
	Inner  Object
}

// NewLinearMove imposes a constant velocity on inner
func NewLinearMove(motion core.Vec3, inner Object) *LinearMove {
	return &LinearMove{Motion: motion, Inner: inner}
}

// Hit shifts the ray origin back by the distance travelled at the ray's time,
// and the hit point forward again so that it is reported in world space
func (m *LinearMove) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	offset := m.Motion.Multiply(ray.Time)
	moved := ray
	moved.Origin = ray.Origin.Subtract(offset)

	hit, ok := m.Inner.Hit(moved, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}
	result := *hit
	result.Point = hit.Point.Add(offset)
	return &result, true
}

// BoundingBox merges the inner box at the start and end of the exposure
func (m *LinearMove) BoundingBox(exposure core.Interval) core.AABB {
	box := m.Inner.BoundingBox(exposure)
	start := box.Translate(m.Motion.Multiply(exposure.Min))
	end := box.Translate(m.Motion.Multiply(exposure.Max))
	return start.Union(end)
}

func (*LinearMove) isObject() {}

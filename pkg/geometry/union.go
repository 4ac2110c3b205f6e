package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Union combines two objects and reports the nearer hit of the pair
type Union struct {
	A, B Object
}

// NewUnion combines a and b into one object
func NewUnion(a, b Object) *Union {
	return &Union{A: a, B: b}
}

// Hit tests A, narrows the range to A's hit, then tests B in the narrowed range
func (u *Union) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	hitA, okA := u.A.Hit(ray, tMin, tMax, sampler)
	if okA {
		tMax = hitA.T
	}

	if hitB, okB := u.B.Hit(ray, tMin, tMax, sampler); okB {
		return hitB, true
	}
	return hitA, okA
}

// BoundingBox merges the boxes of both objects
func (u *Union) BoundingBox(exposure core.Interval) core.AABB {
	return u.A.BoundingBox(exposure).Union(u.B.BoundingBox(exposure))
}

func (*Union) isObject() {}

// ObjectList is an unaccelerated collection tested by linear scan
type ObjectList []Object

// Hit returns the nearest hit over all objects
func (l ObjectList) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, object := range l {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar, sampler); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

// BoundingBox merges the boxes of all objects; an empty list has an inverted box
func (l ObjectList) BoundingBox(exposure core.Interval) core.AABB {
	box := core.EmptyAABB()
	for _, object := range l {
		box = box.Union(object.BoundingBox(exposure))
	}
	return box
}

func (ObjectList) isObject() {}

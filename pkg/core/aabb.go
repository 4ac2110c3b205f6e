package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min = min.MinVec(point)
		max = max.MaxVec(point)
	}

	return AABB{Min: min, Max: max}
}

// Hit tests if a ray intersects with this AABB within [tMin, tMax) using the slab method.
// Axis-parallel rays are handled by infinity/NaN propagation of the inverse direction.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	invD := Vec3{1 / ray.Direction.X, 1 / ray.Direction.Y, 1 / ray.Direction.Z}
	t0 := aabb.Min.Subtract(ray.Origin).MultiplyVec(invD)
	t1 := aabb.Max.Subtract(ray.Origin).MultiplyVec(invD)

	// Entry and exit swap roles on axes where the ray travels backwards
	near := Vec3{slabNear(invD.X, t0.X, t1.X), slabNear(invD.Y, t0.Y, t1.Y), slabNear(invD.Z, t0.Z, t1.Z)}
	far := Vec3{slabFar(invD.X, t0.X, t1.X), slabFar(invD.Y, t0.Y, t1.Y), slabFar(invD.Z, t0.Z, t1.Z)}

	start := maxNum(tMin, near.MaxComponent())
	end := minNum(tMax, far.MinComponent())
	return end > start
}

func slabNear(inv, t0, t1 float64) float64 {
	if inv < 0 {
		return t1
	}
	return t0
}

func slabFar(inv, t0, t1 float64) float64 {
	if inv < 0 {
		return t0
	}
	return t1
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: aabb.Min.MinVec(other.Min),
		Max: aabb.Max.MaxVec(other.Max),
	}
}

// Merge returns the smallest box containing both a and b
func Merge(a, b AABB) AABB {
	return a.Union(b)
}

// Corners returns the 8 combinations of min/max per axis
func (aabb AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	i := 0
	for _, x := range [2]float64{aabb.Min.X, aabb.Max.X} {
		for _, y := range [2]float64{aabb.Min.Y, aabb.Max.Y} {
			for _, z := range [2]float64{aabb.Min.Z, aabb.Max.Z} {
				corners[i] = Vec3{x, y, z}
				i++
			}
		}
	}
	return corners
}

// Translate returns the box moved by offset
func (aabb AABB) Translate(offset Vec3) AABB {
	return AABB{Min: aabb.Min.Add(offset), Max: aabb.Max.Add(offset)}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// SurfaceArea returns the surface area of the AABB
func (aabb AABB) SurfaceArea() float64 {
	size := aabb.Size()
	return 2.0 * (size.X*size.Y + size.Y*size.Z + size.Z*size.X)
}

// LongestAxis returns the axis with the longest extent
func (aabb AABB) LongestAxis() Axis {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return AxisX
	}
	if size.Y > size.Z {
		return AxisY
	}
	return AxisZ
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// EmptyAABB returns an inverted box that acts as the identity for Union
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{Min: Splat(inf), Max: Splat(-inf)}
}

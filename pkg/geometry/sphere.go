package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	// Tangent rays count as misses
	discriminant := halfB*halfB - a*c
	if !(discriminant > 0) {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !inRange(root, tMin, tMax) {
		root = (-halfB + sqrtD) / a
		if !inRange(root, tMin, tMax) {
			return nil, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	u, v := sphereUV(normal)

	return &material.HitRecord{
		T:        root,
		Point:    point,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: s.Material,
	}, true
}

// sphereUV maps a unit normal to longitude/latitude texture coordinates in [0, 1]
func sphereUV(n core.Vec3) (float64, float64) {
	phi := math.Atan2(n.Z, n.X)
	theta := math.Asin(max(-1, min(1, n.Y)))
	return 1 - (phi+math.Pi)/(2*math.Pi), (theta + math.Pi/2) / math.Pi
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(exposure core.Interval) core.AABB {
	radius := core.Splat(math.Abs(s.Radius))
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}

// PDFValue returns the solid-angle density of directions sampled toward the sphere
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	if _, hit := s.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1), nil); !hit {
		return 0
	}

	distanceSquared := s.Center.Subtract(origin).LengthSquared()
	radiusSquared := s.Radius * s.Radius
	if distanceSquared <= radiusSquared {
		// Inside the sphere every direction is equally likely
		return 1 / (4 * math.Pi)
	}

	cosThetaMax := math.Sqrt(1 - radiusSquared/distanceSquared)
	return 1 / (2 * math.Pi * (1 - cosThetaMax))
}

// Random samples a direction from origin uniformly within the cone subtended by the sphere
func (s *Sphere) Random(origin core.Vec3, sample core.Vec2) core.Vec3 {
	toCenter := s.Center.Subtract(origin)
	distanceSquared := toCenter.LengthSquared()
	radiusSquared := s.Radius * s.Radius
	if distanceSquared <= radiusSquared {
		return core.SampleCone(-1, sample)
	}

	cosThetaMax := math.Sqrt(1 - radiusSquared/distanceSquared)
	basis := core.BuildFromW(toCenter)
	return basis.Local(core.SampleCone(cosThetaMax, sample))
}

func (*Sphere) isObject() {}

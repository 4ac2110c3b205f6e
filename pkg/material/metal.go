package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	noEmission
	specular
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // Radius of the reflection perturbation; 0 is a perfect mirror
}

// NewMetal creates a new metal material. The fuzz radius is used as given.
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// Scatter reflects the ray about the normal and perturbs it by the fuzz.
// A perturbed ray that ends up below the surface is absorbed.
func (m *Metal) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := reflectVector(rayIn.Direction.Normalize(), hit.Normal)
	reflected = reflected.Add(core.SamplePointInUnitSphere(sampler.Get3D()).Multiply(m.Fuzzness))

	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   core.NewRayAt(hit.Point, reflected, rayIn.Time),
		Attenuation: m.Albedo,
		PDF:         0,
	}, true
}

func (*Metal) isMaterial() {}

// reflectVector calculates the reflection of a vector v off a surface with normal n
func reflectVector(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

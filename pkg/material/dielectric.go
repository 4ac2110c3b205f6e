package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	noEmission
	specular
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter refracts through the surface, or reflects on total internal reflection
// and with the probability given by Schlick's approximation.
func (d *Dielectric) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := rayIn.Direction
	dn := direction.Dot(hit.Normal)

	// The normal always points out of the object, so its sign tells entering from exiting
	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	if dn > 0 {
		outwardNormal = hit.Normal.Negate()
		niOverNt = d.RefractiveIndex
		cosine = d.RefractiveIndex * dn / direction.Length()
	} else {
		outwardNormal = hit.Normal
		niOverNt = 1.0 / d.RefractiveIndex
		cosine = -dn / direction.Length()
	}

	scattered, refracted := refractVector(direction, outwardNormal, niOverNt)
	if !refracted || sampler.Get1D() < Reflectance(cosine, d.RefractiveIndex) {
		scattered = reflectVector(direction, hit.Normal)
	}

	return ScatterResult{
		Scattered:   core.NewRayAt(hit.Point, scattered, rayIn.Time),
		Attenuation: core.NewVec3(1.0, 1.0, 1.0),
		PDF:         0,
	}, true
}

func (*Dielectric) isMaterial() {}

// refractVector bends v through a surface with normal n using Snell's law.
// It returns false on total internal reflection.
func refractVector(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1.0 - niOverNt*niOverNt*(1-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	return uv.Subtract(n.Multiply(dt)).Multiply(niOverNt).Subtract(n.Multiply(math.Sqrt(discriminant))), true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractiveIndex float64) float64 {
	// R0 is the reflectance at normal incidence
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material decides how light scatters off and is emitted by a surface.
// The set of implementations is closed: Lambertian, Metal, Dielectric, DiffuseLight and Isotropic.
type Material interface {
	// Scatter returns the outgoing ray and attenuation, or false if the ray is absorbed
	Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// Emitted returns the light emitted at the hit point
	Emitted(u, v float64, p core.Vec3, hit *HitRecord) core.Vec3

	// ScatteringPDF returns the density with which Scatter would have produced scattered
	ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64

	isMaterial()
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
	PDF         float64   // Probability density function (0 for specular materials)
}

// IsSpecular returns true if this is specular scattering (no PDF)
func (s ScatterResult) IsSpecular() bool {
	return s.PDF <= 0
}

// HitRecord contains information about a ray-object intersection.
// Decorating objects copy a record and override fields rather than mutating it.
type HitRecord struct {
	T        float64   // Parameter t along the ray
	Point    core.Vec3 // Point of intersection
	U, V     float64   // Surface texture coordinates
	Normal   core.Vec3 // Surface normal at intersection
	Material Material  // Material of the hit object
}

// noEmission is embedded by materials that never emit light
type noEmission struct{}

func (noEmission) Emitted(u, v float64, p core.Vec3, hit *HitRecord) core.Vec3 {
	return core.Vec3{}
}

// specular is embedded by materials that have no sampling density
type specular struct{}

func (specular) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 0
}

package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	noEmission
	Albedo Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter draws a cosine-weighted direction around the normal
func (l *Lambertian) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	basis := core.BuildFromW(hit.Normal)
	direction := basis.Local(core.RandomCosineDirection(sampler.Get2D()))

	return ScatterResult{
		Scattered:   core.NewRayAt(hit.Point, direction, rayIn.Time),
		Attenuation: l.Albedo.Evaluate(hit.U, hit.V, hit.Point),
		PDF:         basis.W.Dot(direction) / math.Pi,
	}, true
}

// ScatteringPDF returns cos(θ)/π for the scattered direction, 0 below the surface
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	cosine := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosine < 0 {
		return 0
	}
	return cosine / math.Pi
}

func (*Lambertian) isMaterial() {}

package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Isotropic scatters uniformly in every direction; used inside participating media
type Isotropic struct {
	noEmission
	specular
	Albedo Texture
}

// NewIsotropic creates a new isotropic phase material with solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates a new isotropic phase material with texture
func NewTexturedIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter picks a random direction from a point in the unit sphere
func (i *Isotropic) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRayAt(hit.Point, core.SamplePointInUnitSphere(sampler.Get3D()), rayIn.Time),
		Attenuation: i.Albedo.Evaluate(hit.U, hit.V, hit.Point),
		PDF:         0,
	}, true
}

func (*Isotropic) isMaterial() {}

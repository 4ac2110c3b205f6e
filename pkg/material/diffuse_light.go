package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight represents a light-emitting material
type DiffuseLight struct {
	specular
	Emission   Texture // Emitted light color
	Brightness float64 // Scale applied to the emission
}

// NewDiffuseLight creates a new emissive material with a solid color
func NewDiffuseLight(emission core.Vec3, brightness float64) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission), Brightness: brightness}
}

// NewTexturedDiffuseLight creates a new emissive material driven by a texture
func NewTexturedDiffuseLight(emission Texture, brightness float64) *DiffuseLight {
	return &DiffuseLight{Emission: emission, Brightness: brightness}
}

// Scatter never scatters: lights absorb all incoming rays
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns brightness × emission on the front side, where p·n > 0, and black elsewhere
func (e *DiffuseLight) Emitted(u, v float64, p core.Vec3, hit *HitRecord) core.Vec3 {
	if hit.Point.Dot(hit.Normal) > 0 {
		return e.Emission.Evaluate(u, v, p).Multiply(e.Brightness)
	}
	return core.Vec3{}
}

func (*DiffuseLight) isMaterial() {}

package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewTexturedScene creates a glowing textured sphere, a huge noise-textured sky
// sphere and a square key light. The camera orbits at 675 units.
func NewTexturedScene(perlin *material.Perlin, surface material.Texture) *Scene {
	const orbit = 675.0
	theta := 90 * math.Pi / 180
	phi := 1 * math.Pi / 180

	camera := renderer.CameraConfig{
		Center: core.NewVec3(
			orbit*math.Sin(theta)*math.Cos(phi),
			orbit*math.Sin(theta)*math.Sin(phi),
			orbit*math.Cos(theta),
		),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   1.0,
		VFov:          40.0,
		FocusDistance: 10.0,
		Exposure:      core.NewInterval(0, 1),
	}
	s := newScene("textured", camera, samplingConfig(500, 500, 100))

	glow := material.NewTexturedDiffuseLight(surface, 1)
	s.Add(geometry.NewRotateY(23, geometry.NewSphere(core.NewVec3(0, 0, 0), 60, glow)))

	sky := material.NewTexturedDiffuseLight(material.NewNoiseTexture(material.NoiseMatte, 0.000091, perlin), 2)
	s.Add(geometry.NewRotateY(190, geometry.NewFlipNormals(geometry.NewSphere(core.NewVec3(0, 0, 0), 100000, sky))))

	key := material.NewDiffuseLight(core.NewVec3(0.5, 0.5, 0.5), 20)
	s.AddLight(geometry.NewRect(core.AxisX, core.NewInterval(-123, 423), core.NewInterval(-112, 412), 950, key))

	return s
}

func buildTextured(opts Options) (*Scene, error) {
	surface, err := loadTexture(opts)
	if err != nil {
		return nil, err
	}
	return NewTexturedScene(material.NewPerlin(newRandom(opts)), surface), nil
}

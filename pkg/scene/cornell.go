package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

// addCornellBox adds the five walls and ceiling light of the Cornell box
func addCornellBox(s *Scene) {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(1, 1, 1), 15)

	full := core.NewInterval(0, boxSize)

	s.AddLight(geometry.NewRect(core.AxisY, core.NewInterval(213, 343), core.NewInterval(227, 332), 554, light))
	s.Add(
		// Floor
		geometry.NewRect(core.AxisY, full, full, 0, white),
		// Back wall
		geometry.NewFlipNormals(geometry.NewRect(core.AxisZ, full, full, boxSize, white)),
		// Ceiling
		geometry.NewFlipNormals(geometry.NewRect(core.AxisY, full, full, boxSize, white)),
		// Right wall as seen from the camera
		geometry.NewRect(core.AxisX, full, full, 0, red),
		// Left wall
		geometry.NewFlipNormals(geometry.NewRect(core.AxisX, full, full, boxSize, green)),
	)
}

// NewCornellScene creates the empty Cornell box
func NewCornellScene() *Scene {
	s := newScene("cornell", standardCamera(), samplingConfig(500, 500, 100))
	addCornellBox(s)
	return s
}

// NewCornellBoxesScene creates the Cornell box with a short and a tall rotated block
func NewCornellBoxesScene() *Scene {
	s := NewCornellScene()
	s.Name = "cornell-boxes"
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	short := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	tall := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	s.Add(
		geometry.NewTranslate(core.NewVec3(130, 0, 65), geometry.NewRotateY(-18, short)),
		geometry.NewTranslate(core.NewVec3(265, 0, 295), geometry.NewRotateY(15, tall)),
	)
	return s
}

// NewMotionScene creates the Cornell box with a sphere rising 100 units over the exposure
func NewMotionScene() *Scene {
	s := NewCornellScene()
	s.Name = "motion"
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	sphere := geometry.NewSphere(core.NewVec3(278, 278, 278), 65, white)
	s.Add(geometry.NewLinearMove(core.NewVec3(0, 100, 0), sphere))
	return s
}

// NewVolumeScene creates the Cornell box holding a thin sphere of blue fog
func NewVolumeScene() *Scene {
	s := NewCornellScene()
	s.Name = "volume"

	// The boundary's material is never seen
	boundary := geometry.NewSphere(core.NewVec3(278, 278, 278), 180, nil)
	fog := material.NewIsotropic(core.NewVec3(0.2, 0.2, 1.0))
	s.Add(geometry.NewConstantMedium(boundary, 0.01, fog))
	return s
}

func buildCornell(opts Options) (*Scene, error) {
	return NewCornellScene(), nil
}

func buildCornellBoxes(opts Options) (*Scene, error) {
	return NewCornellBoxesScene(), nil
}

func buildMotion(opts Options) (*Scene, error) {
	return NewMotionScene(), nil
}

func buildVolume(opts Options) (*Scene, error) {
	return NewVolumeScene(), nil
}

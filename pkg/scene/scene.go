package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/pdf"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

var logger = log.New("scene")

// Light is an object that can also be sampled as an importance target
type Light interface {
	geometry.Object
	pdf.Target
}

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	Objects      []geometry.Object     // Top-level objects in the scene
	Lights       []pdf.Target          // Emitters offered to the light sampling integrator
	CameraConfig renderer.CameraConfig // Camera placement; the aspect ratio is set at render time
	Config       renderer.Config       // Recommended render settings
	BVH          *geometry.BVH         // Acceleration structure for ray-object intersection
}

// newScene creates an empty scene with the shared 0..1 shutter interval
func newScene(name string, camera renderer.CameraConfig, config renderer.Config) *Scene {
	if camera.Exposure == (core.Interval{}) {
		camera.Exposure = core.NewInterval(0, 1)
	}
	return &Scene{
		Name:         name,
		Objects:      make([]geometry.Object, 0),
		Lights:       make([]pdf.Target, 0),
		CameraConfig: camera,
		Config:       config,
	}
}

// Add appends objects to the scene
func (s *Scene) Add(objects ...geometry.Object) {
	s.Objects = append(s.Objects, objects...)
}

// AddLight appends an emitter that is both rendered and importance sampled
func (s *Scene) AddLight(light Light) {
	s.Objects = append(s.Objects, light)
	s.Lights = append(s.Lights, light)
}

// Exposure returns the scene's shutter interval
func (s *Scene) Exposure() core.Interval {
	return s.CameraConfig.Exposure
}

// Preprocess builds the BVH over the scene's objects
func (s *Scene) Preprocess() {
	s.BVH = geometry.NewBVH(s.Objects, s.Exposure())
	stats := s.BVH.Stats()
	logger.Debugf("%s: BVH over %d objects, %d nodes, %d leaves, depth %d (avg %.1f)",
		s.Name, stats.TotalObjects, stats.TotalNodes, stats.LeafNodes, stats.MaxDepth, stats.AvgDepth)
}

// World returns the scene's root object, building the BVH on first use
func (s *Scene) World() geometry.Object {
	if s.BVH == nil {
		s.Preprocess()
	}
	return s.BVH
}

// NewCamera creates the scene camera for the given image aspect ratio
func (s *Scene) NewCamera(aspectRatio float64) *renderer.Camera {
	config := s.CameraConfig
	config.AspectRatio = aspectRatio
	return renderer.NewCamera(config)
}

// standardCamera is the view into the 555-unit Cornell box shared by most scenes
func standardCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:        core.NewVec3(278, 278, -800),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   1.0,
		VFov:          40.0,
		Aperture:      0.0,
		FocusDistance: 10.0,
		Exposure:      core.NewInterval(0, 1),
	}
}

// samplingConfig returns the default render config with the given size and sample count
func samplingConfig(width, height, spp int) renderer.Config {
	config := renderer.DefaultConfig()
	config.Width = width
	config.Height = height
	config.SamplesPerPixel = spp
	return config
}

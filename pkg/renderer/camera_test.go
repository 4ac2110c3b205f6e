package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func testCameraConfig() CameraConfig {
	return CameraConfig{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   1.0,
		VFov:          90.0,
		Aperture:      0.0,
		FocusDistance: 1.0,
		Exposure:      core.NewInterval(0, 1),
	}
}

func TestCameraGetCameraForward(t *testing.T) {
	camera := NewCamera(testCameraConfig())

	forward := camera.GetCameraForward()
	expected := core.NewVec3(0, 0, -1)

	if forward.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected forward direction %v, got %v", expected, forward)
	}
}

func TestCameraGetRay_ScreenCorners(t *testing.T) {
	// 90° vertical fov at focus distance 1 spans [-1, 1] on both axes
	camera := NewCamera(testCameraConfig())
	sampler := core.NewSeededSampler(1)

	tests := []struct {
		name      string
		s, t      float64
		direction core.Vec3
	}{
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"lower left", 0, 0, core.NewVec3(-1, -1, -1)},
		{"upper right", 1, 1, core.NewVec3(1, 1, -1)},
		{"upper left", 0, 1, core.NewVec3(-1, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t, sampler)
			if ray.Origin != (core.Vec3{}) {
				t.Errorf("Pinhole camera should not move the origin, got %v", ray.Origin)
			}
			if ray.Direction.Subtract(tt.direction).Length() > 1e-9 {
				t.Errorf("Expected direction %v, got %v", tt.direction, ray.Direction)
			}
		})
	}
}

func TestCameraGetRay_ExposureTime(t *testing.T) {
	config := testCameraConfig()
	config.Exposure = core.NewInterval(2, 3)
	camera := NewCamera(config)
	sampler := core.NewSeededSampler(7)

	sum := 0.0
	const n = 2000
	for i := 0; i < n; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)
		if ray.Time < 2 || ray.Time >= 3 {
			t.Fatalf("Ray time %v outside exposure [2, 3)", ray.Time)
		}
		sum += ray.Time
	}
	if mean := sum / n; math.Abs(mean-2.5) > 0.05 {
		t.Errorf("Expected mean time near 2.5, got %v", mean)
	}
}

func TestCameraGetRay_Aperture(t *testing.T) {
	config := testCameraConfig()
	config.Aperture = 0.5
	config.FocusDistance = 4
	camera := NewCamera(config)
	sampler := core.NewSeededSampler(3)

	focusPoint := core.NewVec3(0, 0, -4)
	moved := false
	for i := 0; i < 500; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)
		if ray.Origin.Length() > 0.25+1e-9 {
			t.Fatalf("Lens sample %v outside the lens radius", ray.Origin)
		}
		if ray.Origin.Z != 0 {
			t.Fatalf("Lens sample %v should lie in the lens plane", ray.Origin)
		}
		if ray.Origin.Length() > 1e-6 {
			moved = true
		}
		// Every ray through the screen center converges on the focus point
		if ray.At(1).Subtract(focusPoint).Length() > 1e-9 {
			t.Fatalf("Ray from %v misses the focus point, reaches %v", ray.Origin, ray.At(1))
		}
	}
	if !moved {
		t.Error("Expected lens sampling to move ray origins")
	}
}

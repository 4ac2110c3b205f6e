package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestNewBox_OutwardNormals(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(2, 4, 6), material.NewLambertian(core.NewVec3(1, 1, 1)))
	center := core.NewVec3(1, 2, 3)

	tests := []struct {
		name   string
		origin core.Vec3
		normal core.Vec3
		t      float64
	}{
		{"+X face", core.NewVec3(10, 2, 3), core.NewVec3(1, 0, 0), 8},
		{"-X face", core.NewVec3(-10, 2, 3), core.NewVec3(-1, 0, 0), 10},
		{"+Y face", core.NewVec3(1, 10, 3), core.NewVec3(0, 1, 0), 6},
		{"-Y face", core.NewVec3(1, -10, 3), core.NewVec3(0, -1, 0), 10},
		{"+Z face", core.NewVec3(1, 2, 10), core.NewVec3(0, 0, 1), 4},
		{"-Z face", core.NewVec3(1, 2, -10), core.NewVec3(0, 0, -1), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, center.Subtract(tt.origin).Normalize())
			hit, ok := box.Hit(ray, 0.001, math.Inf(1), nil)
			if !ok {
				t.Fatal("Expected hit")
			}
			if hit.Normal != tt.normal {
				t.Errorf("Expected normal %v, got %v", tt.normal, hit.Normal)
			}
			if math.Abs(hit.T-tt.t) > 1e-9 {
				t.Errorf("Expected t=%v, got %v", tt.t, hit.T)
			}
		})
	}
}

func TestNewBox_FromInside(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	hit, ok := box.Hit(ray, 0.001, math.Inf(1), nil)
	if !ok {
		t.Fatal("Expected to hit the ceiling from inside")
	}
	if math.Abs(hit.T-1) > 1e-9 {
		t.Errorf("Expected t=1, got %v", hit.T)
	}
	// The outward normal points away from the ray
	if hit.Normal.Dot(ray.Direction) <= 0 {
		t.Errorf("Expected outward normal, got %v", hit.Normal)
	}
}

func TestNewBox_BoundingBox(t *testing.T) {
	p0 := core.NewVec3(130, 0, 65)
	p1 := core.NewVec3(295, 165, 230)
	box := NewBox(p0, p1, nil).BoundingBox(testExposure)

	if box.Min.Subtract(p0).Length() > 2*rectThickness || box.Max.Subtract(p1).Length() > 2*rectThickness {
		t.Errorf("Box bounds %v should match corners %v and %v", box, p0, p1)
	}
}

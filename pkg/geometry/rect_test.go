package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestRect_Hit(t *testing.T) {
	// Floor-like rect in the plane y = 2 spanning x in [0, 4), z in [1, 3)
	rect := NewRect(core.AxisY, core.NewInterval(0, 4), core.NewInterval(1, 3), 2, nil)

	tests := []struct {
		name    string
		ray     core.Ray
		hit     bool
		t       float64
		u, v    float64
		tMax    float64
		comment string
	}{
		{
			name: "from above",
			ray:  core.NewRay(core.NewVec3(2, 5, 2), core.NewVec3(0, -1, 0)),
			hit:  true, t: 3, u: 0.5, v: 1.0 / 3, tMax: math.Inf(1),
		},
		{
			name: "from below",
			ray:  core.NewRay(core.NewVec3(1, 0, 1.5), core.NewVec3(0, 1, 0)),
			hit:  true, t: 2, u: 0.25, v: 0.5 / 3, tMax: math.Inf(1),
		},
		{
			name: "min edge included",
			ray:  core.NewRay(core.NewVec3(0, 5, 1), core.NewVec3(0, -1, 0)),
			hit:  true, t: 3, u: 0, v: 0, tMax: math.Inf(1),
		},
		{
			name: "max edge excluded",
			ray:  core.NewRay(core.NewVec3(4, 5, 2), core.NewVec3(0, -1, 0)),
			hit:  false, tMax: math.Inf(1),
		},
		{
			name: "outside second range",
			ray:  core.NewRay(core.NewVec3(2, 5, 3.5), core.NewVec3(0, -1, 0)),
			hit:  false, tMax: math.Inf(1),
		},
		{
			name: "beyond tMax",
			ray:  core.NewRay(core.NewVec3(2, 5, 2), core.NewVec3(0, -1, 0)),
			hit:  false, tMax: 3,
		},
		{
			name: "parallel to plane",
			ray:  core.NewRay(core.NewVec3(-1, 2, 2), core.NewVec3(1, 0, 0)),
			hit:  false, tMax: math.Inf(1),
		},
		{
			name: "parallel off plane",
			ray:  core.NewRay(core.NewVec3(-1, 3, 2), core.NewVec3(1, 0, 0)),
			hit:  false, tMax: math.Inf(1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := rect.Hit(tt.ray, 0.001, tt.tMax, nil)
			if ok != tt.hit {
				t.Fatalf("Expected hit=%v, got %v", tt.hit, ok)
			}
			if !ok {
				return
			}
			if math.Abs(hit.T-tt.t) > 1e-9 {
				t.Errorf("Expected t=%v, got %v", tt.t, hit.T)
			}
			if math.Abs(hit.U-tt.u) > 1e-9 || math.Abs(hit.V-tt.v) > 1e-9 {
				t.Errorf("Expected uv=(%v, %v), got (%v, %v)", tt.u, tt.v, hit.U, hit.V)
			}
			if hit.Normal != core.NewVec3(0, 1, 0) {
				t.Errorf("Expected +Y normal, got %v", hit.Normal)
			}
		})
	}
}

func TestRect_AxisPairs(t *testing.T) {
	tests := []struct {
		axis  core.Axis
		point core.Vec3 // a point inside the rect at k = 1
	}{
		{core.AxisX, core.NewVec3(1, 0.5, 2.5)},
		{core.AxisY, core.NewVec3(0.5, 1, 2.5)},
		{core.AxisZ, core.NewVec3(0.5, 2.5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.axis.String(), func(t *testing.T) {
			rect := NewRect(tt.axis, core.NewInterval(0, 1), core.NewInterval(2, 3), 1, nil)
			origin := tt.point.Add(tt.axis.Unit().Multiply(5))
			hit, ok := rect.Hit(core.NewRay(origin, tt.axis.Unit().Negate()), 0.001, math.Inf(1), nil)
			if !ok {
				t.Fatal("Expected hit")
			}
			if hit.Point.Subtract(tt.point).Length() > 1e-9 {
				t.Errorf("Expected point %v, got %v", tt.point, hit.Point)
			}
			if hit.Normal != tt.axis.Unit() {
				t.Errorf("Expected normal %v, got %v", tt.axis.Unit(), hit.Normal)
			}

			box := rect.BoundingBox(testExposure)
			if box.Size().Index(tt.axis) <= 0 {
				t.Errorf("Bounding box %v must have thickness along %v", box, tt.axis)
			}
		})
	}
}

func TestRect_PDF(t *testing.T) {
	// 2x2 light 5 units above the origin
	rect := NewRect(core.AxisY, core.NewInterval(-1, 1), core.NewInterval(-1, 1), 5, nil)
	origin := core.NewVec3(0, 0, 0)

	// Straight up: distance² / (cos · area) = 25 / 4
	if got := rect.PDFValue(origin, core.NewVec3(0, 1, 0)); math.Abs(got-25.0/4) > 1e-9 {
		t.Errorf("PDFValue straight up = %v, expected %v", got, 25.0/4)
	}
	// Independent of direction length
	if got := rect.PDFValue(origin, core.NewVec3(0, 7, 0)); math.Abs(got-25.0/4) > 1e-9 {
		t.Errorf("PDFValue with scaled direction = %v, expected %v", got, 25.0/4)
	}
	if got := rect.PDFValue(origin, core.NewVec3(1, 0, 0)); got != 0 {
		t.Errorf("PDFValue of a miss = %v, expected 0", got)
	}

	sampler := core.NewSeededSampler(8)
	for i := 0; i < 100; i++ {
		dir := rect.Random(origin, sampler.Get2D())
		p := origin.Add(dir)
		if p.Y != 5 || p.X < -1 || p.X >= 1 || p.Z < -1 || p.Z >= 1 {
			t.Fatalf("Random point %v is not on the rect", p)
		}
		if rect.PDFValue(origin, dir) <= 0 {
			t.Fatalf("Sampled direction %v has zero density", dir)
		}
	}
}

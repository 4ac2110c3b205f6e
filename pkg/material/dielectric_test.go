package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDielectricBasicBehavior(t *testing.T) {
	// Create a glass material (refractive index of 1.5)
	glass := NewDielectric(1.5)

	rayDirection := core.NewVec3(1, -1, 0).Normalize() // 45-degree angle
	ray := core.NewRayAt(core.NewVec3(0, 1, 0), rayDirection, 0.25)

	hit := &HitRecord{
		Point:    core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 1, 0), // Normal pointing up
		T:        1.0,
		Material: glass,
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	result, scattered := glass.Scatter(ray, hit, sampler)

	if !scattered {
		t.Error("Dielectric should always scatter")
	}

	// Check that attenuation is white (no color absorption)
	expectedAttenuation := core.NewVec3(1.0, 1.0, 1.0)
	if result.Attenuation != expectedAttenuation {
		t.Errorf("Expected attenuation %v, got %v", expectedAttenuation, result.Attenuation)
	}
	if result.PDF != 0 {
		t.Errorf("Expected PDF 0, got %f", result.PDF)
	}
	if result.Scattered.Time != ray.Time {
		t.Errorf("Scattered ray should keep time %v, got %v", ray.Time, result.Scattered.Time)
	}

	// Both reflection and refraction should occur over many samples
	hasReflection := false
	hasRefraction := false

	for seed := int64(0); seed < 1000 && (!hasReflection || !hasRefraction); seed++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		result, _ := glass.Scatter(ray, hit, sampler)

		// Reflection goes back up, refraction continues down into the glass
		if result.Scattered.Direction.Y > 0 {
			hasReflection = true
		} else {
			hasRefraction = true
		}
	}

	if !hasReflection {
		t.Error("Expected at least one reflection over 1000 samples")
	}
	if !hasRefraction {
		t.Error("Expected at least one refraction over 1000 samples")
	}
}

func TestDielectricRefractionBendsTowardNormal(t *testing.T) {
	direction := core.NewVec3(1, -1, 0).Normalize()
	refracted, ok := refractVector(direction, core.NewVec3(0, 1, 0), 1/1.5)
	if !ok {
		t.Fatal("Expected refraction entering glass")
	}

	sinIn := math.Abs(direction.X)
	sinOut := math.Abs(refracted.Normalize().X)
	if math.Abs(sinOut-sinIn/1.5) > 1e-9 {
		t.Errorf("Snell's law violated: sin out %v, expected %v", sinOut, sinIn/1.5)
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Ray inside the glass travelling outward at a grazing angle, normal points out
	direction := core.NewVec3(1, 0.2, 0).Normalize()
	ray := core.NewRay(core.NewVec3(0, -1, 0), direction)
	hit := &HitRecord{
		Point:    core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 1, 0),
		Material: glass,
	}

	for seed := int64(0); seed < 100; seed++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		result, _ := glass.Scatter(ray, hit, sampler)
		if result.Scattered.Direction.Y >= 0 {
			t.Fatalf("Seed %d: expected total internal reflection back into the glass, got %v", seed, result.Scattered.Direction)
		}
	}
}

func TestReflectanceFunction(t *testing.T) {
	tests := []struct {
		name string
		n    float64
	}{
		{"glass", 1.5},
		{"water", 1.33},
		{"diamond", 2.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r0 := (1 - tt.n) / (1 + tt.n)
			r0 = r0 * r0

			// Normal incidence equals r0
			if got := Reflectance(1.0, tt.n); math.Abs(got-r0) > 1e-12 {
				t.Errorf("Reflectance(1, %v) = %v, expected r0 = %v", tt.n, got, r0)
			}

			// Non-decreasing as the angle approaches grazing
			prev := Reflectance(1.0, tt.n)
			for i := 1; i <= 100; i++ {
				cos := 1.0 - float64(i)/100
				r := Reflectance(cos, tt.n)
				if r < prev {
					t.Fatalf("Reflectance decreased from %v to %v at cos=%v", prev, r, cos)
				}
				prev = r
			}

			if got := Reflectance(0, tt.n); math.Abs(got-1) > 1e-12 {
				t.Errorf("Reflectance at grazing = %v, expected 1", got)
			}
		})
	}
}

package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestLambertian_PDFCalculation(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.8, 0.8)
	lambertian := NewLambertian(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	normal := core.NewVec3(0, 0, 1)
	hit := &HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: normal,
	}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	for i := 0; i < 100; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}

		// Returned PDF and ScatteringPDF agree with cos/π
		cosTheta := scatter.Scattered.Direction.Normalize().Dot(normal)
		expectedPDF := cosTheta / math.Pi
		tolerance := 1e-10
		if math.Abs(scatter.PDF-expectedPDF) > tolerance {
			t.Errorf("PDF mismatch: got %f, expected %f", scatter.PDF, expectedPDF)
		}
		if got := lambertian.ScatteringPDF(ray, hit, scatter.Scattered); math.Abs(got-expectedPDF) > tolerance {
			t.Errorf("ScatteringPDF mismatch: got %f, expected %f", got, expectedPDF)
		}
		if scatter.Attenuation != albedo {
			t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
		}
	}
}

func TestLambertian_ScatteringPDFBelowSurface(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(1, 1, 1))
	hit := &HitRecord{Normal: core.NewVec3(0, 1, 0)}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	below := core.NewRay(core.Vec3{}, core.NewVec3(0.3, -1, 0))
	if got := lambertian.ScatteringPDF(ray, hit, below); got != 0 {
		t.Errorf("Expected 0 below the surface, got %v", got)
	}
}

func TestLambertian_CosineDistribution(t *testing.T) {
	// Histogram of cosθ should follow P(cosθ <= c) = c² for a cos/π density,
	// regardless of the normal's orientation
	lambertian := NewLambertian(core.NewVec3(1, 1, 1))
	normal := core.NewVec3(1, -2, 0.5).Normalize()
	hit := &HitRecord{Normal: normal}
	ray := core.NewRay(normal, normal.Negate())
	sampler := core.NewSeededSampler(2024)

	const n = 100000
	const bins = 5
	var counts [bins]int
	for i := 0; i < n; i++ {
		scatter, _ := lambertian.Scatter(ray, hit, sampler)
		cos := scatter.Scattered.Direction.Normalize().Dot(normal)
		if cos < -1e-9 {
			t.Fatalf("Direction %v below surface", scatter.Scattered.Direction)
		}
		idx := min(bins-1, max(0, int(cos*bins)))
		counts[idx]++
	}

	for i := 0; i < bins; i++ {
		lo, hi := float64(i)/bins, float64(i+1)/bins
		expected := hi*hi - lo*lo
		got := float64(counts[i]) / n
		if math.Abs(got-expected) > 0.01 {
			t.Errorf("cos bin [%.1f, %.1f): fraction %.4f, expected %.4f", lo, hi, got, expected)
		}
	}
}

func TestLambertian_TexturedAlbedo(t *testing.T) {
	even := NewSolidColor(core.NewVec3(1, 1, 1))
	odd := NewSolidColor(core.NewVec3(0, 0, 0))
	lambertian := NewTexturedLambertian(NewChecker(even, odd))

	hit := &HitRecord{Point: core.NewVec3(0.05, 0.05, 0.05), Normal: core.NewVec3(0, 1, 0)}
	scatter, _ := lambertian.Scatter(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)), hit, core.NewSeededSampler(1))
	if scatter.Attenuation != even.Color {
		t.Errorf("Expected even checker color, got %v", scatter.Attenuation)
	}
}

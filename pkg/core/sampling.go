package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler backed by its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomCosineDirection draws a cosine-weighted direction around +Z using Malley's method:
// a uniform point on the unit disk projected up onto the hemisphere.
func RandomCosineDirection(sample Vec2) Vec3 {
	r1, r2 := sample.X, sample.Y
	phi := 2 * math.Pi * r1
	sqrtR2 := math.Sqrt(r2)

	return Vec3{
		X: math.Cos(phi) * sqrtR2,
		Y: math.Sin(phi) * sqrtR2,
		Z: math.Sqrt(1 - r2),
	}
}

// SampleCone samples a direction uniformly within a cone around +Z.
// cosTotalWidth is the cosine of the cone's half angle.
func SampleCone(cosTotalWidth float64, sample Vec2) Vec3 {
	cosTheta := 1.0 - sample.X*(1.0-cosTotalWidth)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	phi := 2.0 * math.Pi * sample.Y

	return NewVec3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)
}

// SamplePointInUnitDisk generates a random point in a unit disk using concentric mapping
// This avoids rejection sampling by mapping a square uniformly to a disk
func SamplePointInUnitDisk(sample Vec2) Vec3 {
	// Map sample to [-1,1]² and handle degeneracy at the origin
	uOffset := NewVec2(2*sample.X-1, 2*sample.Y-1)
	if uOffset.X == 0 && uOffset.Y == 0 {
		return NewVec3(0, 0, 0)
	}

	var theta, r float64
	if math.Abs(uOffset.X) > math.Abs(uOffset.Y) {
		r = uOffset.X
		theta = math.Pi / 4 * (uOffset.Y / uOffset.X)
	} else {
		r = uOffset.Y
		theta = math.Pi/2 - math.Pi/4*(uOffset.X/uOffset.Y)
	}

	return NewVec3(r*math.Cos(theta), r*math.Sin(theta), 0)
}

// SamplePointInUnitSphere generates a random point inside a unit sphere using the inverse CDF
//
//	r = ∛(u₁), φ = 2π·u₂, cos(θ) = 2·u₃ − 1
func SamplePointInUnitSphere(sample Vec3) Vec3 {
	r := math.Cbrt(sample.X)
	phi := 2 * math.Pi * sample.Y
	cosTheta := 2*sample.Z - 1
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))

	return NewVec3(
		r*sinTheta*math.Cos(phi),
		r*sinTheta*math.Sin(phi),
		r*cosTheta,
	)
}

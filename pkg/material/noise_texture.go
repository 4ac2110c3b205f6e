package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

const perlinSize = 256

// Perlin is an immutable gradient-noise table. Build one per scene with NewPerlin
// and share it between textures by pointer.
type Perlin struct {
	vectors [perlinSize]core.Vec3
	permX   [perlinSize]uint8
	permY   [perlinSize]uint8
	permZ   [perlinSize]uint8
}

// NewPerlin builds a noise table from the given generator
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.vectors {
		p.vectors[i] = core.SamplePointInUnitSphere(core.NewVec3(random.Float64(), random.Float64(), random.Float64()))
	}
	generatePerm(&p.permX, random)
	generatePerm(&p.permY, random)
	generatePerm(&p.permZ, random)
	return p
}

// generatePerm fills perm with a random permutation of 0..255 (Fisher-Yates)
func generatePerm(perm *[perlinSize]uint8, random *rand.Rand) {
	for i := range perm {
		perm[i] = uint8(i)
	}
	for i := perlinSize - 1; i > 0; i-- {
		j := random.Intn(i)
		perm[i], perm[j] = perm[j], perm[i]
	}
}

// Noise returns smoothed gradient noise at p, roughly in [-1, 1]
func (pn *Perlin) Noise(p core.Vec3) float64 {
	fi, fj, fk := math.Floor(p.X), math.Floor(p.Y), math.Floor(p.Z)
	uvw := core.NewVec3(p.X-fi, p.Y-fj, p.Z-fk)
	i, j, k := int(fi), int(fj), int(fk)

	// Hermite smoothing of the interpolation weights
	smooth := core.NewVec3(
		uvw.X*uvw.X*(3-2*uvw.X),
		uvw.Y*uvw.Y*(3-2*uvw.Y),
		uvw.Z*uvw.Z*(3-2*uvw.Z),
	)

	accum := 0.0
	for corner := 0; corner < 8; corner++ {
		di, dj, dk := corner&1, (corner>>1)&1, (corner>>2)&1
		ix := pn.permX[(i+di)&255]
		iy := pn.permY[(j+dj)&255]
		iz := pn.permZ[(k+dk)&255]
		gradient := pn.vectors[ix^iy^iz]

		offset := uvw.Subtract(core.NewVec3(float64(di), float64(dj), float64(dk)))
		weight := lerpWeight(di, smooth.X) * lerpWeight(dj, smooth.Y) * lerpWeight(dk, smooth.Z)
		accum += weight * gradient.Dot(offset)
	}
	return accum
}

func lerpWeight(corner int, t float64) float64 {
	if corner == 1 {
		return t
	}
	return 1 - t
}

// Turbulence sums depth octaves of noise, octave i at frequency i with weight 1/i
func (pn *Perlin) Turbulence(p core.Vec3, depth int) float64 {
	accum := 0.0
	for i := 1; i <= depth; i++ {
		accum += pn.Noise(p.Multiply(float64(i))) / float64(i)
	}
	return math.Abs(accum)
}

// NoiseKind selects the pattern a NoiseTexture produces
type NoiseKind int

const (
	NoiseTurbulence NoiseKind = iota // plain turbulence
	NoiseMarble                      // veins along z
	NoiseMatte                       // soft bands along x
)

// turbulenceDepth is the octave count for all noise patterns
const turbulenceDepth = 7

// NoiseTexture is a grayscale procedural texture over a shared Perlin table
type NoiseTexture struct {
	Kind   NoiseKind
	Scale  float64
	Perlin *Perlin
}

// NewNoiseTexture creates a procedural noise texture
func NewNoiseTexture(kind NoiseKind, scale float64, perlin *Perlin) *NoiseTexture {
	return &NoiseTexture{Kind: kind, Scale: scale, Perlin: perlin}
}

// Evaluate returns the gray level of the pattern at p
func (n *NoiseTexture) Evaluate(u, v float64, p core.Vec3) core.Vec3 {
	var gray float64
	switch n.Kind {
	case NoiseMarble:
		gray = 0.5 * (1 + math.Sin(n.Scale*p.Z+10*n.Perlin.Turbulence(p, turbulenceDepth)))
	case NoiseMatte:
		gray = 0.5 * (1 + math.Sin(n.Scale*p.X+5*n.Perlin.Turbulence(p.Multiply(n.Scale), turbulenceDepth)))
	default:
		gray = n.Perlin.Turbulence(p.Multiply(n.Scale), turbulenceDepth)
	}
	return core.Splat(gray)
}

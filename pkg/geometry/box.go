package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewBox builds an axis-aligned rectangular prism with min corner p0 and max corner p1.
// The three max-side faces face outward along +axis; the min-side faces are flipped
// so that every face normal points out of the box.
func NewBox(p0, p1 core.Vec3, material material.Material) Object {
	x := core.NewInterval(p0.X, p1.X)
	y := core.NewInterval(p0.Y, p1.Y)
	z := core.NewInterval(p0.Z, p1.Z)

	maxSides := NewUnion(
		NewRect(core.AxisZ, x, y, p1.Z, material),
		NewUnion(
			NewRect(core.AxisY, x, z, p1.Y, material),
			NewRect(core.AxisX, y, z, p1.X, material),
		),
	)
	minSides := NewUnion(
		NewFlipNormals(NewRect(core.AxisZ, x, y, p0.Z, material)),
		NewUnion(
			NewFlipNormals(NewRect(core.AxisY, x, z, p0.Y, material)),
			NewFlipNormals(NewRect(core.AxisX, y, z, p0.X, material)),
		),
	)

	return NewUnion(maxSides, minSides)
}

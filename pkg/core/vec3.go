package core

import (
	"math"
)

// Vec3 represents a 3D vector, point or linear RGB color
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Splat returns a vector with all three components set to s
func Splat(s float64) Vec3 {
	return Vec3{s, s, s}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// DivideVec returns component-wise division of two vectors.
// Zero components yield IEEE-754 infinities.
func (v Vec3) DivideVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X / other.X,
		Y: v.Y / other.Y,
		Z: v.Z / other.Z,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Index returns the component along the given axis
func (v Vec3) Index(axis Axis) float64 {
	switch axis {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// With returns a copy of v with the component along axis replaced
func (v Vec3) With(axis Axis, value float64) Vec3 {
	switch axis {
	case AxisX:
		v.X = value
	case AxisY:
		v.Y = value
	default:
		v.Z = value
	}
	return v
}

// MinVec returns the component-wise minimum, ignoring NaN components
func (v Vec3) MinVec(other Vec3) Vec3 {
	return Vec3{minNum(v.X, other.X), minNum(v.Y, other.Y), minNum(v.Z, other.Z)}
}

// MaxVec returns the component-wise maximum, ignoring NaN components
func (v Vec3) MaxVec(other Vec3) Vec3 {
	return Vec3{maxNum(v.X, other.X), maxNum(v.Y, other.Y), maxNum(v.Z, other.Z)}
}

// MinComponent returns the smallest component, ignoring NaNs
func (v Vec3) MinComponent() float64 {
	return minNum(minNum(v.X, v.Y), v.Z)
}

// MaxComponent returns the largest component, ignoring NaNs
func (v Vec3) MaxComponent() float64 {
	return maxNum(maxNum(v.X, v.Y), v.Z)
}

// Clamp returns a vector with components clamped to [min, max]
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
	}
}

// GammaCorrect applies gamma correction to color values
func (v Vec3) GammaCorrect(gamma float64) Vec3 {
	invGamma := 1.0 / gamma
	return Vec3{
		X: math.Pow(v.X, invGamma),
		Y: math.Pow(v.Y, invGamma),
		Z: math.Pow(v.Z, invGamma),
	}
}

// Luminance returns the perceptual luminance of an RGB color
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (v Vec3) Luminance() float64 {
	return 0.299*v.X + 0.587*v.Y + 0.114*v.Z
}

// IsZero reports whether all components are exactly zero
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// minNum and maxNum follow IEEE-754 minNum/maxNum: a NaN operand is ignored.
// The builtin min/max propagate NaN, which breaks slab tests on axis-parallel rays.
func minNum(a, b float64) float64 {
	if a != a {
		return b
	}
	if b != b {
		return a
	}
	if b < a {
		return b
	}
	return a
}

func maxNum(a, b float64) float64 {
	if a != a {
		return b
	}
	if b != b {
		return a
	}
	if b > a {
		return b
	}
	return a
}

// Vec2 represents a 2D vector, used for sample pairs
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Axis names one of the three world axes
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Others returns the two remaining axes in alphabetical order
func (a Axis) Others() (Axis, Axis) {
	switch a {
	case AxisX:
		return AxisY, AxisZ
	case AxisY:
		return AxisX, AxisZ
	default:
		return AxisX, AxisY
	}
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	default:
		return "Z"
	}
}

// Unit returns the unit vector along the axis
func (a Axis) Unit() Vec3 {
	return Vec3{}.With(a, 1)
}

// Ray represents a ray with an origin, direction and a time sample within the exposure
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float64
}

// NewRay creates a new ray at time zero
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayAt creates a new ray at the given time
func NewRayAt(origin, direction Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Interval is a range of scalar values, used for exposure times and in-plane extents
type Interval struct {
	Min, Max float64
}

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Contains reports whether x lies in the half-open interval [Min, Max)
func (i Interval) Contains(x float64) bool {
	return x >= i.Min && x < i.Max
}

// Size returns the span of the interval
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Lerp maps s in [0,1) onto the interval
func (i Interval) Lerp(s float64) float64 {
	return i.Min + s*(i.Max-i.Min)
}

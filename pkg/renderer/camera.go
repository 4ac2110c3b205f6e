package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Center        core.Vec3     // Position of the camera (look from)
	LookAt        core.Vec3     // Point the camera is looking at
	Up            core.Vec3     // Up direction (usually 0,1,0)
	AspectRatio   float64       // Width / height
	VFov          float64       // Vertical field of view in degrees
	Aperture      float64       // Lens diameter; 0 disables depth of field
	FocusDistance float64       // Distance to the plane in perfect focus
	Exposure      core.Interval // Shutter interval sampled for motion blur
}

// Camera is a thin-lens camera that generates rays for rendering
type Camera struct {
	config          CameraConfig
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	focus := config.FocusDistance
	horizontal := u.Multiply(2 * halfWidth * focus)
	vertical := v.Multiply(2 * halfHeight * focus)
	lowerLeftCorner := config.Center.
		Subtract(u.Multiply(halfWidth * focus)).
		Subtract(v.Multiply(halfHeight * focus)).
		Subtract(w.Multiply(focus))

	return &Camera{
		config:          config,
		origin:          config.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1 and t
// grows upward. The origin is jittered across the lens and the time is drawn
// from the exposure interval.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	rd := core.SamplePointInUnitDisk(sampler.Get2D()).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	time := c.config.Exposure.Lerp(sampler.Get1D())

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRayAt(origin, direction, time)
}

// GetCameraForward returns the unit viewing direction
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}

// Exposure returns the shutter interval rays are timed within
func (c *Camera) Exposure() core.Interval {
	return c.config.Exposure
}

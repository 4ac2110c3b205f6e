package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], row 0 at the top
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering.
// UV is clamped to [0, 1]; v = 0 is the bottom row of the image.
func (t *ImageTexture) Evaluate(u, v float64, p core.Vec3) core.Vec3 {
	if t.Width == 0 || t.Height == 0 {
		return core.NewVec3(0, 1, 1) // cyan marks a missing image
	}

	u = max(0, min(1, u))
	v = 1 - max(0, min(1, v))

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	// Clamp to image bounds
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}

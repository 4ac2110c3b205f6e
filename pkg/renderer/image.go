package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Image is a linear-light framebuffer stored row-major with row 0 at the top
type Image struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewImage creates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the linear color at pixel (x, y)
func (img *Image) At(x, y int) core.Vec3 {
	return img.Pixels[y*img.Width+x]
}

// Set stores the linear color at pixel (x, y)
func (img *Image) Set(x, y int, c core.Vec3) {
	img.Pixels[y*img.Width+x] = c
}

// Mean returns the average color over all pixels
func (img *Image) Mean() core.Vec3 {
	if len(img.Pixels) == 0 {
		return core.Vec3{}
	}
	sum := core.Vec3{}
	for _, p := range img.Pixels {
		sum = sum.Add(p)
	}
	return sum.Multiply(1.0 / float64(len(img.Pixels)))
}

// RGBA converts to 8-bit color with gamma correction and clamping
func (img *Image) RGBA(gamma float64) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			out.SetRGBA(x, y, vec3ToColor(img.At(x, y), gamma))
		}
	}
	return out
}

// vec3ToColor converts a Vec3 color to RGBA with clamping and gamma correction
func vec3ToColor(colorVec core.Vec3, gamma float64) color.RGBA {
	// Clamp first so negative channels never reach Pow
	colorVec = colorVec.Clamp(0.0, 1.0).GammaCorrect(gamma)

	return color.RGBA{
		R: toByte(colorVec.X),
		G: toByte(colorVec.Y),
		B: toByte(colorVec.Z),
		A: 255,
	}
}

func toByte(c float64) uint8 {
	v := int(255.99 * c)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

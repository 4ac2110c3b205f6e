package loaders

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/material"
)

var logger = log.New("loaders")

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, row 0 at the top
}

// Texture wraps the image data as a nearest-neighbor texture
func (d *ImageData) Texture() *material.ImageTexture {
	return material.NewImageTexture(d.Width, d.Height, d.Pixels)
}

// LoadImage loads an image in any registered format and converts it to a Vec3 color array.
// Channels map linearly from 8-bit values to [0, 1] with no gamma decoding.
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects the format from the file header)
	img, format, err := image.Decode(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	data := FromImage(img)
	logger.Debugf("loaded %s image %s (%dx%d)", format, filename, data.Width, data.Height)
	return data, nil
}

// FromImage converts a decoded image to a Vec3 color array
func FromImage(img image.Image) *ImageData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// WritePNG encodes img as a PNG file at filename
func WritePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	w := bufio.NewWriter(file)
	if err := png.Encode(w, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to write PNG: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	bounds := img.Bounds()
	logger.Debugf("wrote %s (%dx%d)", filename, bounds.Dx(), bounds.Dy())
	return nil
}

package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Framebuffer is a row-major grid of float RGB values in the scene's light
// intensity domain (0..255 scale). Values are stored unclamped; clamping
// happens only when converting to an output image.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer allocates a framebuffer of the given resolution
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the pixel at (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.Pixels[y*fb.Width+x]
}

// Set writes the pixel at (x, y)
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	fb.Pixels[y*fb.Width+x] = c
}

// ToImage converts the framebuffer to an 8-bit RGBA image, clamping each
// channel to [0, 255]
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y).Clamp(0, 255)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(c.X),
				G: uint8(c.Y),
				B: uint8(c.Z),
				A: 255,
			})
		}
	}
	return img
}

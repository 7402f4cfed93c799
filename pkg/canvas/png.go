package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// ToImage converts the canvas to an RGBA image with clamped 8-bit channels.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			pixel := c.PixelAt(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(clampByte(pixel.R)),
				G: uint8(clampByte(pixel.G)),
				B: uint8(clampByte(pixel.B)),
				A: 255,
			})
		}
	}
	return img
}

// WritePNG serializes the canvas as a PNG image.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.ToImage()); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

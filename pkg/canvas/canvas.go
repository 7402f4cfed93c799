// Package canvas provides the 2D pixel buffer a render writes into, plus
// PPM and PNG serialization for handing the result to the outside world.
package canvas

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Canvas is a fixed-size grid of colors. Pixels are stored row-major, so
// concurrent writers owning disjoint rows never share cells.
type Canvas struct {
	width  int
	height int
	pixels []core.Color
}

// New creates a canvas of the given size with every pixel black.
func New(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// WritePixel sets the color at (x, y). Out-of-range coordinates are ignored.
func (c *Canvas) WritePixel(x, y int, color core.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = color
}

// PixelAt returns the color at (x, y). Out-of-range coordinates read black.
func (c *Canvas) PixelAt(x, y int) core.Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return core.Black
	}
	return c.pixels[y*c.width+x]
}

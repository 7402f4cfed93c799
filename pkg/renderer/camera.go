// Package renderer maps a camera's pixel grid onto world-space rays and
// drives the parallel render loop that fills a canvas.
package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera describes a virtual camera: a pixel grid, a field of view, and a
// transform placing it in the world. Half-view extents and the world-space
// pixel size are derived once at construction.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64

	transform  core.Matrix
	inverse    core.Matrix
	pixelSize  float64
	halfWidth  float64
	halfHeight float64
}

// NewCamera creates a camera with the identity transform, looking down the
// negative z axis from the origin.
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		transform:   core.Identity,
		inverse:     core.Identity,
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = (c.halfWidth * 2) / float64(hsize)

	return c
}

// Transform returns the camera's placement transform.
func (c *Camera) Transform() core.Matrix { return c.transform }

// PixelSize returns the world-space size of one pixel on the view plane.
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// SetTransform places the camera in the world, typically with a view
// transform. It returns core.ErrNonInvertibleTransform for singular input.
func (c *Camera) SetTransform(m core.Matrix) error {
	inverse, err := m.Inverse()
	if err != nil {
		return err
	}
	c.transform = m
	c.inverse = inverse
	return nil
}

// RayForPixel returns the world-space ray through the center of pixel
// (px, py). The view plane sits one unit in front of the camera; both the
// plane point and the camera origin pass through the inverse transform.
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// The camera looks toward -z, so +x is to the left.
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}

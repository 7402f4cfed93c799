package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cube is the axis-aligned cube spanning [-1, 1] on every axis.
type Cube struct {
	object
}

// NewCube creates a cube with the default material and transform.
func NewCube() *Cube {
	return &Cube{object: newObject()}
}

// LocalIntersect runs the slab method: intersect the ray against each pair
// of parallel faces and keep the running [tmin, tmax] interval. An empty
// interval means a miss; otherwise entry and exit are both reported.
func (c *Cube) LocalIntersect(ray core.Ray) Intersections {
	xtmin, xtmax := checkAxis(ray.Origin.X, ray.Direction.X, -1, 1)
	ytmin, ytmax := checkAxis(ray.Origin.Y, ray.Direction.Y, -1, 1)
	ztmin, ztmax := checkAxis(ray.Origin.Z, ray.Direction.Z, -1, 1)

	tmin := math.Max(xtmin, math.Max(ytmin, ztmin))
	tmax := math.Min(xtmax, math.Min(ytmax, ztmax))

	if tmin > tmax {
		return nil
	}
	return Intersections{{T: tmin, Shape: c}, {T: tmax, Shape: c}}
}

// LocalNormalAt picks the face by the component with the largest absolute
// value. Edge and corner points resolve to the x face first, then y.
func (c *Cube) LocalNormalAt(point core.Tuple) core.Tuple {
	maxc := math.Max(math.Abs(point.X), math.Max(math.Abs(point.Y), math.Abs(point.Z)))

	switch maxc {
	case math.Abs(point.X):
		return core.NewVector(point.X, 0, 0)
	case math.Abs(point.Y):
		return core.NewVector(0, point.Y, 0)
	default:
		return core.NewVector(0, 0, point.Z)
	}
}

// Bounds returns the cube itself.
func (c *Cube) Bounds() Bounds {
	return NewBounds(core.NewPoint(-1, -1, -1), core.NewPoint(1, 1, 1))
}

package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane is the infinite xz-plane through the origin.
type Plane struct {
	object
}

// NewPlane creates a plane with the default material and transform.
func NewPlane() *Plane {
	return &Plane{object: newObject()}
}

// LocalIntersect returns the single crossing of the xz-plane, or nothing for
// rays parallel to it (including coplanar rays).
func (p *Plane) LocalIntersect(ray core.Ray) Intersections {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}

	t := -ray.Origin.Y / ray.Direction.Y
	return Intersections{{T: t, Shape: p}}
}

// LocalNormalAt returns the constant up vector; a plane's normal is the same
// everywhere.
func (p *Plane) LocalNormalAt(core.Tuple) core.Tuple {
	return core.NewVector(0, 1, 0)
}

// Bounds returns a box infinite in x and z with zero thickness in y.
func (p *Plane) Bounds() Bounds {
	inf := math.Inf(1)
	return NewBounds(core.NewPoint(-inf, 0, -inf), core.NewPoint(inf, 0, inf))
}

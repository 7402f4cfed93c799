package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cylinder is a radius-1 cylinder around the y axis, by default infinite in
// y and open-ended. Minimum and Maximum truncate it; Closed adds end caps.
type Cylinder struct {
	object
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates an infinite open cylinder.
func NewCylinder() *Cylinder {
	return &Cylinder{
		object:  newObject(),
		Minimum: math.Inf(-1),
		Maximum: math.Inf(1),
	}
}

// NewBoundedCylinder creates a cylinder truncated to min < y < max. It
// returns core.ErrInvalidShapeParameters when min is not below max.
func NewBoundedCylinder(min, max float64, closed bool) (*Cylinder, error) {
	if min >= max {
		return nil, fmt.Errorf("cylinder bounds [%g, %g]: %w", min, max, core.ErrInvalidShapeParameters)
	}
	c := NewCylinder()
	c.Minimum = min
	c.Maximum = max
	c.Closed = closed
	return c, nil
}

// LocalIntersect solves the body quadratic in x and z, keeps roots whose y
// falls inside the truncation bounds, then tests the end caps.
func (c *Cylinder) LocalIntersect(ray core.Ray) Intersections {
	var xs Intersections

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z

	// A ray parallel to the y axis can only hit the caps.
	if math.Abs(a) >= core.Epsilon {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		cc := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		discriminant := b*b - 4*a*cc
		if discriminant < 0 {
			return nil
		}

		sqrtD := math.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		for _, t := range [2]float64{t0, t1} {
			y := ray.Origin.Y + t*ray.Direction.Y
			if c.Minimum < y && y < c.Maximum {
				xs = append(xs, Intersection{T: t, Shape: c})
			}
		}
	}

	xs = c.intersectCaps(ray, xs)
	xs.Sort()
	return xs
}

// intersectCaps adds hits on the end caps of a closed cylinder.
func (c *Cylinder) intersectCaps(ray core.Ray, xs Intersections) Intersections {
	if !c.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	for _, bound := range [2]float64{c.Minimum, c.Maximum} {
		t := (bound - ray.Origin.Y) / ray.Direction.Y
		if checkCap(ray, t, 1) {
			xs = append(xs, Intersection{T: t, Shape: c})
		}
	}
	return xs
}

// checkCap reports whether the point at t lies within the cap's radius.
func checkCap(ray core.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius*radius
}

// LocalNormalAt distinguishes the caps from the body by the point's y and
// its radial distance from the axis.
func (c *Cylinder) LocalNormalAt(point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	switch {
	case dist < 1 && point.Y >= c.Maximum-core.Epsilon:
		return core.NewVector(0, 1, 0)
	case dist < 1 && point.Y <= c.Minimum+core.Epsilon:
		return core.NewVector(0, -1, 0)
	default:
		return core.NewVector(point.X, 0, point.Z)
	}
}

// Bounds returns a unit-radius box spanning the truncation range in y.
func (c *Cylinder) Bounds() Bounds {
	return NewBounds(core.NewPoint(-1, c.Minimum, -1), core.NewPoint(1, c.Maximum, 1))
}

package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cone is a double-napped cone around the y axis with its apex at the
// origin; the radius at height y equals |y|. Like Cylinder it defaults to
// infinite extent and open ends.
type Cone struct {
	object
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates an infinite open double cone.
func NewCone() *Cone {
	return &Cone{
		object:  newObject(),
		Minimum: math.Inf(-1),
		Maximum: math.Inf(1),
	}
}

// NewBoundedCone creates a cone truncated to min < y < max. It returns
// core.ErrInvalidShapeParameters when min is not below max.
func NewBoundedCone(min, max float64, closed bool) (*Cone, error) {
	if min >= max {
		return nil, fmt.Errorf("cone bounds [%g, %g]: %w", min, max, core.ErrInvalidShapeParameters)
	}
	c := NewCone()
	c.Minimum = min
	c.Maximum = max
	c.Closed = closed
	return c, nil
}

// LocalIntersect solves the cone body equation. When the quadratic term
// vanishes the ray parallels one of the cone's halves and the equation
// degenerates to a single linear root.
func (c *Cone) LocalIntersect(ray core.Ray) Intersections {
	var xs Intersections

	d, o := ray.Direction, ray.Origin
	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	cc := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	switch {
	case math.Abs(a) < core.Epsilon && math.Abs(b) < core.Epsilon:
		// Ray misses both halves entirely.
	case math.Abs(a) < core.Epsilon:
		t := -cc / (2 * b)
		xs = c.appendBody(ray, xs, t)
	default:
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
		xs = c.appendBody(ray, xs, t0)
		xs = c.appendBody(ray, xs, t1)
	}

	xs = c.intersectCaps(ray, xs)
	xs.Sort()
	return xs
}

// appendBody keeps a body hit only when its y lies within the truncation
// bounds.
func (c *Cone) appendBody(ray core.Ray, xs Intersections, t float64) Intersections {
	y := ray.Origin.Y + t*ray.Direction.Y
	if c.Minimum < y && y < c.Maximum {
		xs = append(xs, Intersection{T: t, Shape: c})
	}
	return xs
}

// intersectCaps adds hits on the end caps; a cone's cap radius grows with
// |y| rather than staying fixed.
func (c *Cone) intersectCaps(ray core.Ray, xs Intersections) Intersections {
	if !c.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	for _, bound := range [2]float64{c.Minimum, c.Maximum} {
		t := (bound - ray.Origin.Y) / ray.Direction.Y
		if checkCap(ray, t, math.Abs(bound)) {
			xs = append(xs, Intersection{T: t, Shape: c})
		}
	}
	return xs
}

// LocalNormalAt derives the body normal from the radial distance, flipping
// its y component for the upper nappe; cap points use the cap normals.
func (c *Cone) LocalNormalAt(point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	switch {
	case c.Closed && dist < c.Maximum*c.Maximum && point.Y >= c.Maximum-core.Epsilon:
		return core.NewVector(0, 1, 0)
	case c.Closed && dist < c.Minimum*c.Minimum && point.Y <= c.Minimum+core.Epsilon:
		return core.NewVector(0, -1, 0)
	default:
		y := math.Sqrt(dist)
		if point.Y > 0 {
			y = -y
		}
		return core.NewVector(point.X, y, point.Z)
	}
}

// Bounds returns the box spanning the truncation range; the radius at each
// end equals the magnitude of the larger y bound.
func (c *Cone) Bounds() Bounds {
	limit := math.Max(math.Abs(c.Minimum), math.Abs(c.Maximum))
	return NewBounds(
		core.NewPoint(-limit, c.Minimum, -limit),
		core.NewPoint(limit, c.Maximum, limit),
	)
}

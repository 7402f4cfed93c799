package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere is the unit sphere centered at the origin. Position and size come
// from the shape's transform.
type Sphere struct {
	object
}

// NewSphere creates a unit sphere with the default material and transform.
func NewSphere() *Sphere {
	return &Sphere{object: newObject()}
}

// NewGlassSphere creates a unit sphere with a fully transparent glass
// material, a common fixture for refraction scenes.
func NewGlassSphere() *Sphere {
	s := NewSphere()
	m := material.Default()
	m.Transparency = 1.0
	m.RefractiveIndex = material.RefractiveGlass
	s.SetMaterial(m)
	return s
}

// LocalIntersect solves the quadratic |origin + t·direction|² = 1. A
// negative discriminant means the ray misses; otherwise both roots are
// returned, ordered ascending, even when equal (a tangent hit) or negative
// (the sphere is behind the ray).
func (s *Sphere) LocalIntersect(ray core.Ray) Intersections {
	sphereToRay := ray.Origin.Subtract(core.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	return Intersections{{T: t1, Shape: s}, {T: t2, Shape: s}}
}

// LocalNormalAt returns the normal at an object-space point: the vector from
// the origin to the point.
func (s *Sphere) LocalNormalAt(point core.Tuple) core.Tuple {
	return point.Subtract(core.NewPoint(0, 0, 0))
}

// Bounds returns the unit cube enclosing the sphere.
func (s *Sphere) Bounds() Bounds {
	return NewBounds(core.NewPoint(-1, -1, -1), core.NewPoint(1, 1, 1))
}

// Package world composes shapes and lights into a scene and implements the
// recursive shading algorithm: Phong lighting, shadow rays, and bounded
// reflection/refraction.
package world

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// DefaultMaxDepth bounds the recursive light transport: each reflection or
// refraction bounce decrements the remaining depth, and zero contributes
// black.
const DefaultMaxDepth = 5

// World is an ordered collection of shapes and point lights. It is treated
// as read-only during a render pass, which makes per-pixel work free to run
// concurrently.
type World struct {
	Shapes []geometry.Shape
	Lights []lights.PointLight
}

// New creates an empty world.
func New() *World {
	return &World{}
}

// AddShapes appends shapes to the world.
func (w *World) AddShapes(shapes ...geometry.Shape) {
	w.Shapes = append(w.Shapes, shapes...)
}

// Intersect tests the ray against every shape and returns all intersections
// sorted by t, negatives included.
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, shape := range w.Shapes {
		xs = append(xs, geometry.Intersect(shape, ray)...)
	}
	xs.Sort()
	return xs
}

// ColorAt returns the color seen along a ray, the entry point of the
// recursive tracer. A ray that escapes the scene yields black.
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return core.Black
	}

	comps := PrepareComputations(hit, ray, xs)
	return w.ShadeHit(comps, remaining)
}

// ShadeHit computes the final color at a prepared hit: the Phong local term
// summed over all lights, plus the reflected and refracted contributions,
// blended by the Schlick reflectance when the material is both reflective
// and transparent.
func (w *World) ShadeHit(comps Computations, remaining int) core.Color {
	m := *comps.Shape.Material()

	surface := core.Black
	for _, light := range w.Lights {
		shadowed := w.IsShadowed(comps.OverPoint, light.Position)
		surface = surface.Add(lights.Phong(m, comps.Shape, light, comps.OverPoint, comps.Eye, comps.Normal, shadowed))
	}

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := Schlick(comps)
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// IsShadowed reports whether any shape blocks the segment from the point to
// the light position.
func (w *World) IsShadowed(point, lightPosition core.Tuple) bool {
	toLight := lightPosition.Subtract(point)
	distance := toLight.Magnitude()
	ray := core.NewRay(point, toLight.Normalize())

	hit, ok := w.Intersect(ray).Hit()
	return ok && hit.T < distance
}

// ReflectedColor traces the mirror bounce off a reflective surface. A
// non-reflective material or exhausted depth contributes black.
func (w *World) ReflectedColor(comps Computations, remaining int) core.Color {
	m := comps.Shape.Material()
	if remaining <= 0 || m.Reflective == 0 {
		return core.Black
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.Reflect)
	color := w.ColorAt(reflectRay, remaining-1)
	return color.Multiply(m.Reflective)
}

// RefractedColor traces the ray bent through a transparent surface via
// Snell's law. Total internal reflection, an opaque material, or exhausted
// depth contributes black.
func (w *World) RefractedColor(comps Computations, remaining int) core.Color {
	m := comps.Shape.Material()
	if remaining <= 0 || m.Transparency == 0 {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.Eye.Dot(comps.Normal)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)

	// sin²(θt) > 1 is total internal reflection. A NaN here can only come
	// from degenerate grazing-angle float error; treat it the same way
	// rather than let it poison the color sum.
	if sin2T > 1 || math.IsNaN(sin2T) {
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.Normal.Multiply(nRatio*cosI - cosT).
		Subtract(comps.Eye.Multiply(nRatio))

	refractRay := core.NewRay(comps.UnderPoint, direction)
	color := w.ColorAt(refractRay, remaining-1)
	return color.Multiply(m.Transparency)
}

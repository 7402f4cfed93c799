// Package geometry defines the shape primitives, their ray intersection
// tests, and the object/world coordinate conversions through nested group
// transforms.
package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Shape is the capability set every primitive implements: a local-space
// intersection test, a local-space normal, and bounding geometry. Transform,
// material, and parent bookkeeping come from the embedded object base.
type Shape interface {
	// LocalIntersect tests a ray already transformed into object space and
	// returns the intersections tagged with this shape, sorted by t.
	LocalIntersect(ray core.Ray) Intersections

	// LocalNormalAt returns the surface normal at an object-space point.
	LocalNormalAt(point core.Tuple) core.Tuple

	// Bounds returns the shape's axis-aligned bounds in object space.
	Bounds() Bounds

	Transform() core.Matrix
	InverseTransform() core.Matrix
	SetTransform(m core.Matrix) error

	Material() *material.Material
	SetMaterial(m material.Material)

	Parent() *Group
	setParent(g *Group)

	// WorldToObject converts a world-space point into this shape's object
	// space through the chain of ancestor group transforms.
	WorldToObject(point core.Tuple) core.Tuple

	// NormalToWorld converts an object-space normal into world space,
	// re-zeroing w and renormalizing at each level to undo the distortion
	// of non-uniform scaling.
	NormalToWorld(normal core.Tuple) core.Tuple
}

// Intersect transforms the ray into the shape's object space and delegates
// to the local intersection test.
func Intersect(s Shape, ray core.Ray) Intersections {
	localRay := ray.Transform(s.InverseTransform())
	return s.LocalIntersect(localRay)
}

// NormalAt computes the world-space surface normal at a world-space point.
func NormalAt(s Shape, worldPoint core.Tuple) core.Tuple {
	localPoint := s.WorldToObject(worldPoint)
	localNormal := s.LocalNormalAt(localPoint)
	return s.NormalToWorld(localNormal)
}

// object holds the state common to every shape: its transform (with cached
// inverse and inverse-transpose), its material, and a non-owning reference
// to the group that contains it.
type object struct {
	transform        core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
	material         material.Material
	parent           *Group
}

func newObject() object {
	return object{
		transform:        core.Identity,
		inverse:          core.Identity,
		inverseTranspose: core.Identity,
		material:         material.Default(),
	}
}

func (o *object) Transform() core.Matrix        { return o.transform }
func (o *object) InverseTransform() core.Matrix { return o.inverse }

// SetTransform replaces the shape's transform and refreshes the cached
// inverses. A singular matrix is a malformed-scene precondition violation
// and returns core.ErrNonInvertibleTransform.
func (o *object) SetTransform(m core.Matrix) error {
	inverse, err := m.Inverse()
	if err != nil {
		return err
	}
	o.transform = m
	o.inverse = inverse
	o.inverseTranspose = inverse.Transpose()
	return nil
}

func (o *object) Material() *material.Material    { return &o.material }
func (o *object) SetMaterial(m material.Material) { o.material = m }
func (o *object) Parent() *Group                  { return o.parent }
func (o *object) setParent(g *Group)              { o.parent = g }

func (o *object) WorldToObject(point core.Tuple) core.Tuple {
	if o.parent != nil {
		point = o.parent.WorldToObject(point)
	}
	return o.inverse.MultiplyTuple(point)
}

func (o *object) NormalToWorld(normal core.Tuple) core.Tuple {
	normal = o.inverseTranspose.MultiplyTuple(normal)
	normal.W = 0
	normal = normal.Normalize()
	if o.parent != nil {
		normal = o.parent.NormalToWorld(normal)
	}
	return normal
}

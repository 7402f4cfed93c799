package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Group is a container shape with no geometry of its own. It owns its
// children; each child's parent reference points back at the group so that
// points and normals can be converted through the full transform chain.
type Group struct {
	object
	children []Shape
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{object: newObject()}
}

// AddChild adds a shape to the group and claims it: the child's parent
// reference is updated to this group.
func (g *Group) AddChild(shapes ...Shape) {
	for _, s := range shapes {
		s.setParent(g)
		g.children = append(g.children, s)
	}
}

// Children returns the group's children.
func (g *Group) Children() []Shape {
	return g.children
}

// LocalIntersect merges the intersections of every child, sorted by t. The
// group's bounds are checked first so that a ray missing the whole cluster
// skips the per-child tests.
func (g *Group) LocalIntersect(ray core.Ray) Intersections {
	if len(g.children) == 0 {
		return nil
	}
	if !g.Bounds().Intersects(ray) {
		return nil
	}

	var xs Intersections
	for _, child := range g.children {
		xs = append(xs, Intersect(child, ray)...)
	}
	xs.Sort()
	return xs
}

// LocalNormalAt panics: groups have no surface. Normals are always computed
// on concrete child shapes.
func (g *Group) LocalNormalAt(core.Tuple) core.Tuple {
	panic("geometry: group has no local normal")
}

// Bounds returns the union of the children's bounds, each transformed into
// the group's object space.
func (g *Group) Bounds() Bounds {
	bounds := emptyBounds()
	for _, child := range g.children {
		bounds = bounds.Merge(child.Bounds().Transform(child.Transform()))
	}
	return bounds
}

package geometry

import "sort"

// Intersection records where along a ray a shape was hit, in units of the
// ray's direction vector. Negative t values are hits behind the ray origin;
// they are excluded from hit resolution but kept for refraction bookkeeping.
type Intersection struct {
	T     float64
	Shape Shape
}

// Intersections is a collection of intersections for a single ray.
type Intersections []Intersection

// NewIntersections collects intersections and sorts them ascending by t.
func NewIntersections(xs ...Intersection) Intersections {
	result := Intersections(xs)
	result.Sort()
	return result
}

// Sort orders the intersections ascending by t.
func (xs Intersections) Sort() {
	sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}

// Hit returns the visible intersection: the one with the lowest positive t.
// The second return value is false when every intersection lies behind the
// ray origin, i.e. the ray escapes.
func (xs Intersections) Hit() (Intersection, bool) {
	for _, x := range xs {
		if x.T > 0 {
			return x, true
		}
	}
	return Intersection{}, false
}

package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Triangle is a flat triangle defined by three object-space vertices. Edges
// and the normal are precomputed at construction.
type Triangle struct {
	object
	P1, P2, P3 core.Tuple
	e1, e2     core.Tuple
	normal     core.Tuple
}

// NewTriangle creates a triangle from three points.
func NewTriangle(p1, p2, p3 core.Tuple) *Triangle {
	e1 := p2.Subtract(p1)
	e2 := p3.Subtract(p1)
	return &Triangle{
		object: newObject(),
		P1:     p1,
		P2:     p2,
		P3:     p3,
		e1:     e1,
		e2:     e2,
		normal: e2.Cross(e1).Normalize(),
	}
}

// LocalIntersect runs the Möller–Trumbore test: a near-zero determinant
// means the ray parallels the triangle's plane, and the barycentric
// coordinates u, v reject points outside the edges.
func (t *Triangle) LocalIntersect(ray core.Ray) Intersections {
	dirCrossE2 := ray.Direction.Cross(t.e2)
	det := t.e1.Dot(dirCrossE2)
	if math.Abs(det) < core.Epsilon {
		return nil
	}

	f := 1.0 / det
	p1ToOrigin := ray.Origin.Subtract(t.P1)
	u := f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return nil
	}

	originCrossE1 := p1ToOrigin.Cross(t.e1)
	v := f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return nil
	}

	return Intersections{{T: f * t.e2.Dot(originCrossE1), Shape: t}}
}

// LocalNormalAt returns the precomputed face normal.
func (t *Triangle) LocalNormalAt(core.Tuple) core.Tuple {
	return t.normal
}

// Bounds returns the box enclosing the three vertices.
func (t *Triangle) Bounds() Bounds {
	return emptyBounds().AddPoint(t.P1).AddPoint(t.P2).AddPoint(t.P3)
}

package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Bounds is an axis-aligned bounding box in a shape's object space. Extents
// may be infinite for unbounded shapes such as planes.
type Bounds struct {
	Min core.Tuple // Minimum corner
	Max core.Tuple // Maximum corner
}

// NewBounds creates bounds from min and max corners.
func NewBounds(min, max core.Tuple) Bounds {
	return Bounds{Min: min, Max: max}
}

// emptyBounds returns an inverted box that any merge will replace.
func emptyBounds() Bounds {
	inf := math.Inf(1)
	return Bounds{
		Min: core.NewPoint(inf, inf, inf),
		Max: core.NewPoint(-inf, -inf, -inf),
	}
}

// AddPoint returns the bounds extended to contain the given point.
func (b Bounds) AddPoint(p core.Tuple) Bounds {
	return Bounds{
		Min: core.NewPoint(
			math.Min(b.Min.X, p.X),
			math.Min(b.Min.Y, p.Y),
			math.Min(b.Min.Z, p.Z),
		),
		Max: core.NewPoint(
			math.Max(b.Max.X, p.X),
			math.Max(b.Max.Y, p.Y),
			math.Max(b.Max.Z, p.Z),
		),
	}
}

// Merge returns the union of two bounds.
func (b Bounds) Merge(other Bounds) Bounds {
	return b.AddPoint(other.Min).AddPoint(other.Max)
}

// IsFinite reports whether every extent of the bounds is finite.
func (b Bounds) IsFinite() bool {
	for _, v := range [6]float64{b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// Transform returns the bounds containing all eight transformed corners of
// this box. The result stays axis-aligned, so it may be looser than the
// transformed shape itself. Infinite bounds stay infinite on every axis:
// multiplying an infinite corner through a matrix would produce NaNs.
func (b Bounds) Transform(m core.Matrix) Bounds {
	if !b.IsFinite() {
		inf := math.Inf(1)
		return NewBounds(core.NewPoint(-inf, -inf, -inf), core.NewPoint(inf, inf, inf))
	}

	corners := [8]core.Tuple{
		core.NewPoint(b.Min.X, b.Min.Y, b.Min.Z),
		core.NewPoint(b.Min.X, b.Min.Y, b.Max.Z),
		core.NewPoint(b.Min.X, b.Max.Y, b.Min.Z),
		core.NewPoint(b.Min.X, b.Max.Y, b.Max.Z),
		core.NewPoint(b.Max.X, b.Min.Y, b.Min.Z),
		core.NewPoint(b.Max.X, b.Min.Y, b.Max.Z),
		core.NewPoint(b.Max.X, b.Max.Y, b.Min.Z),
		core.NewPoint(b.Max.X, b.Max.Y, b.Max.Z),
	}

	result := emptyBounds()
	for _, corner := range corners {
		result = result.AddPoint(m.MultiplyTuple(corner))
	}
	return result
}

// Intersects tests whether a ray hits the box, using the slab method per
// axis. Infinite extents fall out of IEEE division naturally.
func (b Bounds) Intersects(ray core.Ray) bool {
	xtmin, xtmax := checkAxis(ray.Origin.X, ray.Direction.X, b.Min.X, b.Max.X)
	ytmin, ytmax := checkAxis(ray.Origin.Y, ray.Direction.Y, b.Min.Y, b.Max.Y)
	ztmin, ztmax := checkAxis(ray.Origin.Z, ray.Direction.Z, b.Min.Z, b.Max.Z)

	tmin := math.Max(xtmin, math.Max(ytmin, ztmin))
	tmax := math.Min(xtmax, math.Min(ytmax, ztmax))

	// A box entirely behind the ray origin exits at negative t and is a miss.
	return tmin <= tmax && tmax >= 0
}

// checkAxis computes the entry/exit parameters for one slab. A near-zero
// direction component yields ±Inf bounds when the origin is inside the slab
// and an empty interval when outside.
func checkAxis(origin, direction, min, max float64) (tmin, tmax float64) {
	tminNumerator := min - origin
	tmaxNumerator := max - origin

	if math.Abs(direction) >= core.Epsilon {
		tmin = tminNumerator / direction
		tmax = tmaxNumerator / direction
	} else {
		tmin = tminNumerator * math.Inf(1)
		tmax = tmaxNumerator * math.Inf(1)
	}

	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}

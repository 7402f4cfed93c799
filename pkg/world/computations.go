package world

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// Computations carries everything the shading routines need about one hit:
// the surface point with its shadow/refraction offsets, the eye, normal and
// reflection vectors, and the refractive indices either side of the surface.
type Computations struct {
	T          float64
	Shape      geometry.Shape
	Point      core.Tuple
	OverPoint  core.Tuple // nudged along the normal, for shadow rays
	UnderPoint core.Tuple // nudged against the normal, for refraction rays
	Eye        core.Tuple
	Normal     core.Tuple
	Reflect    core.Tuple
	Inside     bool
	N1, N2     float64 // refractive indices of the exited and entered media
}

// PrepareComputations resolves the hit's geometry and, from the full sorted
// intersection list, the refractive indices on both sides of the surface.
// The containment list tracks which shapes the ray is currently inside,
// ordered by nesting: entering a shape pushes it, exiting pops it.
func PrepareComputations(hit geometry.Intersection, ray core.Ray, xs geometry.Intersections) Computations {
	comps := Computations{
		T:     hit.T,
		Shape: hit.Shape,
		N1:    1.0,
		N2:    1.0,
	}

	comps.Point = ray.Position(hit.T)
	comps.Eye = ray.Direction.Negate()
	comps.Normal = geometry.NormalAt(hit.Shape, comps.Point)

	if comps.Normal.Dot(comps.Eye) < 0 {
		comps.Inside = true
		comps.Normal = comps.Normal.Negate()
	}

	comps.Reflect = ray.Direction.Reflect(comps.Normal)

	offset := comps.Normal.Multiply(core.Epsilon)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.Subtract(offset)

	var containers []geometry.Shape
	for _, x := range xs {
		if x == hit {
			if len(containers) == 0 {
				comps.N1 = 1.0
			} else {
				comps.N1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		if idx := indexOf(containers, x.Shape); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Shape)
		}

		if x == hit {
			if len(containers) == 0 {
				comps.N2 = 1.0
			} else {
				comps.N2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			break
		}
	}

	return comps
}

func indexOf(shapes []geometry.Shape, s geometry.Shape) int {
	for i, candidate := range shapes {
		if candidate == s {
			return i
		}
	}
	return -1
}

// Schlick approximates the Fresnel reflectance at the hit: the fraction of
// light that reflects rather than refracts. Total internal reflection
// returns 1.
func Schlick(comps Computations) float64 {
	cos := comps.Eye.Dot(comps.Normal)

	if comps.N1 > comps.N2 {
		n := comps.N1 / comps.N2
		sin2T := n * n * (1.0 - cos*cos)
		if sin2T > 1.0 {
			return 1.0
		}
		// Use cos(θt) when the ray exits into a less dense medium.
		cos = math.Sqrt(1.0 - sin2T)
	}

	r0 := (comps.N1 - comps.N2) / (comps.N1 + comps.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}

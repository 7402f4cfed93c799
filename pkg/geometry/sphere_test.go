package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestSphere_LocalIntersect(t *testing.T) {
	tests := []struct {
		name string
		ray  core.Ray
		ts   []float64
	}{
		{
			name: "through the center",
			ray:  core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1)),
			ts:   []float64{4, 6},
		},
		{
			name: "at a tangent",
			ray:  core.NewRay(core.NewPoint(0, 1, -5), core.NewVector(0, 0, 1)),
			ts:   []float64{5, 5},
		},
		{
			name: "miss",
			ray:  core.NewRay(core.NewPoint(0, 2, -5), core.NewVector(0, 0, 1)),
			ts:   nil,
		},
		{
			name: "originating inside",
			ray:  core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1)),
			ts:   []float64{-1, 1},
		},
		{
			name: "sphere behind the ray",
			ray:  core.NewRay(core.NewPoint(0, 0, 5), core.NewVector(0, 0, 1)),
			ts:   []float64{-6, -4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSphere()
			xs := s.LocalIntersect(tt.ray)
			intersectionTs(t, xs, tt.ts...)
			for _, x := range xs {
				if x.Shape != s {
					t.Error("Intersection must be tagged with the sphere")
				}
			}
		})
	}
}

func TestSphere_Intersect_Transformed(t *testing.T) {
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))

	scaled := NewSphere()
	mustSetTransform(t, scaled, core.Scaling(2, 2, 2))
	intersectionTs(t, Intersect(scaled, ray), 3, 7)

	translated := NewSphere()
	mustSetTransform(t, translated, core.Translation(5, 0, 0))
	intersectionTs(t, Intersect(translated, ray))
}

func TestSphere_LocalNormalAt(t *testing.T) {
	s := NewSphere()
	sqrt3over3 := math.Sqrt(3) / 3

	tests := []struct {
		name  string
		point core.Tuple
		want  core.Tuple
	}{
		{"on the x axis", core.NewPoint(1, 0, 0), core.NewVector(1, 0, 0)},
		{"on the y axis", core.NewPoint(0, 1, 0), core.NewVector(0, 1, 0)},
		{"on the z axis", core.NewPoint(0, 0, 1), core.NewVector(0, 0, 1)},
		{
			"at a nonaxial point",
			core.NewPoint(sqrt3over3, sqrt3over3, sqrt3over3),
			core.NewVector(sqrt3over3, sqrt3over3, sqrt3over3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.LocalNormalAt(tt.point)
			tuplesEqual(t, got, tt.want)
			tuplesEqual(t, got, got.Normalize())
		})
	}
}

func TestSphere_NormalAt_Transformed(t *testing.T) {
	t.Run("translated sphere", func(t *testing.T) {
		s := NewSphere()
		mustSetTransform(t, s, core.Translation(0, 1, 0))
		got := NormalAt(s, core.NewPoint(0, 1.70711, -0.70711))
		tuplesEqual(t, got, core.NewVector(0, 0.70711, -0.70711))
	})

	t.Run("scaled and rotated sphere", func(t *testing.T) {
		s := NewSphere()
		mustSetTransform(t, s, core.Scaling(1, 0.5, 1).Multiply(core.RotationZ(math.Pi/5)))
		got := NormalAt(s, core.NewPoint(0, math.Sqrt2/2, -math.Sqrt2/2))
		tuplesEqual(t, got, core.NewVector(0, 0.97014, -0.24254))
	})
}

func TestSphere_Defaults(t *testing.T) {
	s := NewSphere()
	if !s.Transform().Equal(core.Identity) {
		t.Error("Expected identity transform by default")
	}
	if s.Parent() != nil {
		t.Error("Expected no parent by default")
	}

	glass := NewGlassSphere()
	if glass.Material().Transparency != 1.0 {
		t.Errorf("Expected transparency 1.0, got %f", glass.Material().Transparency)
	}
	if glass.Material().RefractiveIndex != 1.52 {
		t.Errorf("Expected refractive index 1.52, got %f", glass.Material().RefractiveIndex)
	}
}

package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCone_LocalIntersect_Body(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		t0, t1    float64
	}{
		{"straight through", core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1), 5, 5},
		{"at an angle", core.NewPoint(0, 0, -5), core.NewVector(1, 1, 1), 8.66025, 8.66025},
		{"hitting both nappes", core.NewPoint(1, 1, -5), core.NewVector(-0.5, -1, 1), 4.55006, 49.44994},
	}

	c := NewCone()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction.Normalize())
			intersectionTs(t, c.LocalIntersect(ray), tt.t0, tt.t1)
		})
	}
}

func TestCone_LocalIntersect_ParallelToHalf(t *testing.T) {
	// A ray parallel to one half still hits the other in a single point.
	c := NewCone()
	ray := core.NewRay(core.NewPoint(0, 0, -1), core.NewVector(0, 1, 1).Normalize())
	intersectionTs(t, c.LocalIntersect(ray), 0.35355)
}

func TestCone_Capped(t *testing.T) {
	tests := []struct {
		origin    core.Tuple
		direction core.Tuple
		count     int
	}{
		{core.NewPoint(0, 0, -5), core.NewVector(0, 1, 0), 0},
		{core.NewPoint(0, 0, -0.25), core.NewVector(0, 1, 1), 2},
		{core.NewPoint(0, 0, -0.25), core.NewVector(0, 1, 0), 4},
	}

	c, err := NewBoundedCone(-0.5, 0.5, true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, tt := range tests {
		ray := core.NewRay(tt.origin, tt.direction.Normalize())
		if xs := c.LocalIntersect(ray); len(xs) != tt.count {
			t.Errorf("Ray %v: expected %d intersections, got %d", ray, tt.count, len(xs))
		}
	}
}

func TestCone_LocalNormalAt(t *testing.T) {
	tests := []struct {
		point core.Tuple
		want  core.Tuple
	}{
		{core.NewPoint(0, 0, 0), core.NewVector(0, 0, 0)},
		{core.NewPoint(1, 1, 1), core.NewVector(1, -math.Sqrt2, 1)},
		{core.NewPoint(-1, -1, 0), core.NewVector(-1, 1, 0)},
	}

	c := NewCone()
	for _, tt := range tests {
		tuplesEqual(t, c.LocalNormalAt(tt.point), tt.want)
	}
}

func TestNewBoundedCone_InvalidBounds(t *testing.T) {
	if _, err := NewBoundedCone(0.5, -0.5, true); !errors.Is(err, core.ErrInvalidShapeParameters) {
		t.Errorf("Expected ErrInvalidShapeParameters, got %v", err)
	}
}

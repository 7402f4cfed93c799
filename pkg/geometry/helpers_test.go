package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func tuplesEqual(t *testing.T, got, want core.Tuple) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

// tuplesClose compares against reference constants rounded to fewer digits
// than core.Epsilon resolves.
func tuplesClose(t *testing.T, got, want core.Tuple, tolerance float64) {
	t.Helper()
	if math.Abs(got.X-want.X) > tolerance ||
		math.Abs(got.Y-want.Y) > tolerance ||
		math.Abs(got.Z-want.Z) > tolerance ||
		math.Abs(got.W-want.W) > tolerance {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func intersectionTs(t *testing.T, xs Intersections, want ...float64) {
	t.Helper()
	if len(xs) != len(want) {
		t.Fatalf("Expected %d intersections, got %d (%v)", len(want), len(xs), xs)
	}
	for i, w := range want {
		if !core.FloatEqual(xs[i].T, w) {
			t.Errorf("Intersection %d: expected t=%f, got t=%f", i, w, xs[i].T)
		}
	}
}

func mustSetTransform(t *testing.T, s Shape, m core.Matrix) {
	t.Helper()
	if err := s.SetTransform(m); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
}

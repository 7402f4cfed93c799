package geometry

import "testing"

func TestIntersections_Hit(t *testing.T) {
	s := NewSphere()

	tests := []struct {
		name   string
		xs     Intersections
		wantT  float64
		wantOK bool
	}{
		{
			name:   "all positive t",
			xs:     NewIntersections(Intersection{T: 1, Shape: s}, Intersection{T: 2, Shape: s}),
			wantT:  1,
			wantOK: true,
		},
		{
			name:   "some negative t",
			xs:     NewIntersections(Intersection{T: -1, Shape: s}, Intersection{T: 1, Shape: s}),
			wantT:  1,
			wantOK: true,
		},
		{
			name:   "all negative t",
			xs:     NewIntersections(Intersection{T: -2, Shape: s}, Intersection{T: -1, Shape: s}),
			wantOK: false,
		},
		{
			name: "lowest nonnegative wins",
			xs: NewIntersections(
				Intersection{T: 5, Shape: s},
				Intersection{T: 7, Shape: s},
				Intersection{T: -3, Shape: s},
				Intersection{T: 2, Shape: s},
			),
			wantT:  2,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := tt.xs.Hit()
			if ok != tt.wantOK {
				t.Fatalf("Expected ok=%t, got %t", tt.wantOK, ok)
			}
			if ok && hit.T != tt.wantT {
				t.Errorf("Expected hit at t=%f, got t=%f", tt.wantT, hit.T)
			}
		})
	}
}

func TestNewIntersections_Sorts(t *testing.T) {
	s := NewSphere()
	xs := NewIntersections(
		Intersection{T: 3, Shape: s},
		Intersection{T: 1, Shape: s},
		Intersection{T: 2, Shape: s},
	)
	intersectionTs(t, xs, 1, 2, 3)
}

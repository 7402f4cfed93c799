package core

import "testing"

func TestRay_Position(t *testing.T) {
	r := NewRay(NewPoint(2, 3, 4), NewVector(1, 0, 0))

	tuplesEqual(t, r.Position(0), NewPoint(2, 3, 4))
	tuplesEqual(t, r.Position(1), NewPoint(3, 3, 4))
	tuplesEqual(t, r.Position(-1), NewPoint(1, 3, 4))
	tuplesEqual(t, r.Position(2.5), NewPoint(4.5, 3, 4))
}

func TestRay_Transform(t *testing.T) {
	r := NewRay(NewPoint(1, 2, 3), NewVector(0, 1, 0))

	translated := r.Transform(Translation(3, 4, 5))
	tuplesEqual(t, translated.Origin, NewPoint(4, 6, 8))
	tuplesEqual(t, translated.Direction, NewVector(0, 1, 0))

	scaled := r.Transform(Scaling(2, 3, 4))
	tuplesEqual(t, scaled.Origin, NewPoint(2, 6, 12))
	tuplesEqual(t, scaled.Direction, NewVector(0, 3, 0))
}

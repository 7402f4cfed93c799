package core

import "math"

// Epsilon is the tolerance used for approximate float comparisons throughout
// the tracer. Accumulated floating-point error makes exact equality useless
// for geometric predicates.
const Epsilon = 1e-5

// FloatEqual reports whether two floats are equal within Epsilon.
func FloatEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Tuple is a homogeneous 4-component value. W=1 marks a point, W=0 a vector.
// Operations preserve this invariant: subtracting two points yields a vector,
// adding a vector to a point yields a point.
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a tuple with explicit components.
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// NewPoint creates a point (w = 1).
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a vector (w = 0).
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether the tuple is a point.
func (t Tuple) IsPoint() bool {
	return t.W == 1.0
}

// IsVector reports whether the tuple is a vector.
func (t Tuple) IsVector() bool {
	return t.W == 0.0
}

// Add returns the component-wise sum of two tuples.
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference of two tuples.
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with all components negated.
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar.
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar.
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Magnitude returns the length of the tuple.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit tuple in the same direction. A zero-length tuple
// normalizes to the zero vector; callers validating user-supplied directions
// should use CheckedNormalize instead.
func (t Tuple) Normalize() Tuple {
	mag := t.Magnitude()
	if mag == 0 {
		return Tuple{}
	}
	return t.Divide(mag)
}

// CheckedNormalize returns a unit tuple in the same direction, or
// ErrDegenerateVector if the tuple has zero length.
func (t Tuple) CheckedNormalize() (Tuple, error) {
	mag := t.Magnitude()
	if mag == 0 {
		return Tuple{}, ErrDegenerateVector
	}
	return t.Divide(mag), nil
}

// Dot returns the dot product of two tuples.
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors (w = 0).
func (t Tuple) Cross(other Tuple) Tuple {
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect returns the tuple reflected about the given normal.
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// Equal reports whether two tuples are equal within Epsilon.
func (t Tuple) Equal(other Tuple) bool {
	return FloatEqual(t.X, other.X) &&
		FloatEqual(t.Y, other.Y) &&
		FloatEqual(t.Z, other.Z) &&
		FloatEqual(t.W, other.W)
}

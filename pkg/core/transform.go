package core

import "math"

// Translation returns a transform that moves points by (x, y, z). Vectors
// (w = 0) are unaffected.
func Translation(x, y, z float64) Matrix {
	m := Identity
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// Scaling returns a transform that scales each axis independently.
func Scaling(x, y, z float64) Matrix {
	m := Identity
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// RotationX returns a rotation about the x axis by the given radians.
func RotationX(radians float64) Matrix {
	sin, cos := math.Sin(radians), math.Cos(radians)
	m := Identity
	m[1][1] = cos
	m[1][2] = -sin
	m[2][1] = sin
	m[2][2] = cos
	return m
}

// RotationY returns a rotation about the y axis by the given radians.
func RotationY(radians float64) Matrix {
	sin, cos := math.Sin(radians), math.Cos(radians)
	m := Identity
	m[0][0] = cos
	m[0][2] = sin
	m[2][0] = -sin
	m[2][2] = cos
	return m
}

// RotationZ returns a rotation about the z axis by the given radians.
func RotationZ(radians float64) Matrix {
	sin, cos := math.Sin(radians), math.Cos(radians)
	m := Identity
	m[0][0] = cos
	m[0][1] = -sin
	m[1][0] = sin
	m[1][1] = cos
	return m
}

// Shearing returns a shear transform where each component moves in
// proportion to the other two: xy is x moved in proportion to y, and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	m := Identity
	m[0][1] = xy
	m[0][2] = xz
	m[1][0] = yx
	m[1][2] = yz
	m[2][0] = zx
	m[2][1] = zy
	return m
}

// ViewTransform returns the world-to-camera transform for an eye at from,
// looking toward to, with the given approximate up direction.
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := Matrix{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}

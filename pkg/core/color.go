package core

// Color is an RGB triple with unclamped float components. Values outside
// [0,1] are legal during shading; serialization clamps to display range.
type Color struct {
	R, G, B float64
}

// NewColor creates a new color.
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Common colors.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// Add returns the component-wise sum of two colors.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the component-wise difference of two colors.
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar.
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Hadamard returns the component-wise product of two colors, used to blend a
// surface color with a light's intensity.
func (c Color) Hadamard(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equal reports whether two colors are equal within Epsilon.
func (c Color) Equal(other Color) bool {
	return FloatEqual(c.R, other.R) && FloatEqual(c.G, other.G) && FloatEqual(c.B, other.B)
}

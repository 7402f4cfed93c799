package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Pattern is a procedural color source evaluated in pattern space. Each
// pattern carries its own transform, composed with the owning shape's
// transform to map world-space hit points into pattern space.
type Pattern interface {
	// At returns the pattern's color at a pattern-space point.
	At(point core.Tuple) core.Color
	// Transform returns the pattern's transform.
	Transform() core.Matrix
	// InverseTransform returns the cached inverse of the pattern's transform.
	InverseTransform() core.Matrix
	// SetTransform replaces the pattern's transform. It returns
	// core.ErrNonInvertibleTransform if the matrix is singular.
	SetTransform(m core.Matrix) error
}

// TransformedObject converts world-space points into its own object space.
// Satisfied by geometry shapes; kept minimal to avoid a dependency on the
// geometry package.
type TransformedObject interface {
	WorldToObject(point core.Tuple) core.Tuple
}

// AtObject samples a pattern at a world-space point on the given object:
// world space → object space → pattern space, then the pattern rule.
func AtObject(p Pattern, object TransformedObject, worldPoint core.Tuple) core.Color {
	objectPoint := object.WorldToObject(worldPoint)
	patternPoint := p.InverseTransform().MultiplyTuple(objectPoint)
	return p.At(patternPoint)
}

// basePattern provides the transform bookkeeping shared by all patterns.
type basePattern struct {
	transform core.Matrix
	inverse   core.Matrix
}

func newBasePattern() basePattern {
	return basePattern{transform: core.Identity, inverse: core.Identity}
}

func (b *basePattern) Transform() core.Matrix        { return b.transform }
func (b *basePattern) InverseTransform() core.Matrix { return b.inverse }

func (b *basePattern) SetTransform(m core.Matrix) error {
	inverse, err := m.Inverse()
	if err != nil {
		return err
	}
	b.transform = m
	b.inverse = inverse
	return nil
}

// sampleSub evaluates a nested sub-pattern at a point in the parent's
// pattern space, applying the sub-pattern's own inverse transform first.
func sampleSub(sub Pattern, point core.Tuple) core.Color {
	return sub.At(sub.InverseTransform().MultiplyTuple(point))
}

// SolidPattern is a constant color, the leaf of nested pattern trees.
type SolidPattern struct {
	basePattern
	Color core.Color
}

// NewSolidPattern creates a pattern that is the same color everywhere.
func NewSolidPattern(color core.Color) *SolidPattern {
	return &SolidPattern{basePattern: newBasePattern(), Color: color}
}

// At returns the solid color regardless of position.
func (p *SolidPattern) At(core.Tuple) core.Color { return p.Color }

// StripePattern alternates between two sub-patterns in one-unit bands
// along the x axis.
type StripePattern struct {
	basePattern
	A, B Pattern
}

// NewStripePattern creates a stripe pattern alternating between a and b.
func NewStripePattern(a, b Pattern) *StripePattern {
	return &StripePattern{basePattern: newBasePattern(), A: a, B: b}
}

// NewStripeColors creates a stripe pattern from two solid colors.
func NewStripeColors(a, b core.Color) *StripePattern {
	return NewStripePattern(NewSolidPattern(a), NewSolidPattern(b))
}

// At returns a for even floor(x) and b for odd.
func (p *StripePattern) At(point core.Tuple) core.Color {
	if int(math.Floor(point.X))%2 == 0 {
		return sampleSub(p.A, point)
	}
	return sampleSub(p.B, point)
}

// GradientPattern linearly interpolates between two sub-patterns over the
// fractional part of x.
type GradientPattern struct {
	basePattern
	A, B Pattern
}

// NewGradientPattern creates a gradient blending from a to b.
func NewGradientPattern(a, b Pattern) *GradientPattern {
	return &GradientPattern{basePattern: newBasePattern(), A: a, B: b}
}

// NewGradientColors creates a gradient pattern from two solid colors.
func NewGradientColors(a, b core.Color) *GradientPattern {
	return NewGradientPattern(NewSolidPattern(a), NewSolidPattern(b))
}

// At interpolates between the two sub-patterns by the fractional x distance.
func (p *GradientPattern) At(point core.Tuple) core.Color {
	a := sampleSub(p.A, point)
	b := sampleSub(p.B, point)
	fraction := point.X - math.Floor(point.X)
	return a.Add(b.Subtract(a).Multiply(fraction))
}

// RingPattern alternates two sub-patterns in concentric rings around the y
// axis, measured in the xz plane.
type RingPattern struct {
	basePattern
	A, B Pattern
}

// NewRingPattern creates a ring pattern alternating between a and b.
func NewRingPattern(a, b Pattern) *RingPattern {
	return &RingPattern{basePattern: newBasePattern(), A: a, B: b}
}

// NewRingColors creates a ring pattern from two solid colors.
func NewRingColors(a, b core.Color) *RingPattern {
	return NewRingPattern(NewSolidPattern(a), NewSolidPattern(b))
}

// At picks a sub-pattern by the parity of the radial distance in xz.
func (p *RingPattern) At(point core.Tuple) core.Color {
	distance := math.Sqrt(point.X*point.X + point.Z*point.Z)
	if int(math.Floor(distance))%2 == 0 {
		return sampleSub(p.A, point)
	}
	return sampleSub(p.B, point)
}

// CheckersPattern tiles space with alternating unit cubes of two
// sub-patterns.
type CheckersPattern struct {
	basePattern
	A, B Pattern
}

// NewCheckersPattern creates a 3D checkers pattern alternating a and b.
func NewCheckersPattern(a, b Pattern) *CheckersPattern {
	return &CheckersPattern{basePattern: newBasePattern(), A: a, B: b}
}

// NewCheckersColors creates a checkers pattern from two solid colors.
func NewCheckersColors(a, b core.Color) *CheckersPattern {
	return NewCheckersPattern(NewSolidPattern(a), NewSolidPattern(b))
}

// At picks a sub-pattern by the parity of floor(x)+floor(y)+floor(z).
func (p *CheckersPattern) At(point core.Tuple) core.Color {
	sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
	if int(sum)%2 == 0 {
		return sampleSub(p.A, point)
	}
	return sampleSub(p.B, point)
}

// Package lights defines light sources and the Phong lighting evaluation.
package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PointLight is a light source with no size, radiating equally in all
// directions from a single position.
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a point light at the given position.
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

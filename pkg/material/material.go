// Package material defines surface appearance: Phong coefficients,
// reflection/refraction parameters, and procedural color patterns.
package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Common refractive indices for transparent materials.
const (
	RefractiveVacuum  = 1.0
	RefractiveAir     = 1.00029
	RefractiveWater   = 1.333
	RefractiveGlass   = 1.52
	RefractiveDiamond = 2.417
)

// Material holds the Phong shading coefficients plus reflection and
// refraction parameters for a surface. Coefficients are non-negative;
// ambient/diffuse/specular typically sit in [0,1] but are not clamped.
type Material struct {
	Color           core.Color
	Pattern         Pattern // optional; overrides Color when set
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
}

// Default returns the default material: white, matte, opaque.
func Default() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		Reflective:      0.0,
		Transparency:    0.0,
		RefractiveIndex: RefractiveVacuum,
	}
}

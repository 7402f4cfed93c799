package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Phong evaluates the Phong reflection model for one light at a surface
// point. The ambient term always contributes; diffuse and specular are
// dropped when the point is shadowed or the light is behind the surface.
func Phong(m material.Material, object material.TransformedObject, light PointLight, point, eye, normal core.Tuple, inShadow bool) core.Color {
	color := m.Color
	if m.Pattern != nil {
		color = material.AtObject(m.Pattern, object, point)
	}

	// Blend the surface color with the light's intensity.
	effectiveColor := color.Hadamard(light.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient)

	if inShadow {
		return ambient
	}

	lightV := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightV.Dot(normal)
	if lightDotNormal < 0 {
		// Light is on the other side of the surface.
		return ambient
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectV := lightV.Negate().Reflect(normal)
	reflectDotEye := reflectV.Dot(eye)
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}

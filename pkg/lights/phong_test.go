package lights

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// identityObject stands in for a shape with no transform.
type identityObject struct{}

func (identityObject) WorldToObject(p core.Tuple) core.Tuple { return p }

func TestPhong(t *testing.T) {
	m := material.Default()
	position := core.NewPoint(0, 0, 0)
	sqrt2over2 := math.Sqrt2 / 2

	tests := []struct {
		name     string
		eye      core.Tuple
		normal   core.Tuple
		light    PointLight
		inShadow bool
		want     core.Color
	}{
		{
			name:   "eye between light and surface",
			eye:    core.NewVector(0, 0, -1),
			normal: core.NewVector(0, 0, -1),
			light:  NewPointLight(core.NewPoint(0, 0, -10), core.White),
			want:   core.NewColor(1.9, 1.9, 1.9),
		},
		{
			name:   "eye offset 45 degrees",
			eye:    core.NewVector(0, sqrt2over2, -sqrt2over2),
			normal: core.NewVector(0, 0, -1),
			light:  NewPointLight(core.NewPoint(0, 0, -10), core.White),
			want:   core.NewColor(1.0, 1.0, 1.0),
		},
		{
			name:   "light offset 45 degrees",
			eye:    core.NewVector(0, 0, -1),
			normal: core.NewVector(0, 0, -1),
			light:  NewPointLight(core.NewPoint(0, 10, -10), core.White),
			want:   core.NewColor(0.7364, 0.7364, 0.7364),
		},
		{
			name:   "eye in the reflection path",
			eye:    core.NewVector(0, -sqrt2over2, -sqrt2over2),
			normal: core.NewVector(0, 0, -1),
			light:  NewPointLight(core.NewPoint(0, 10, -10), core.White),
			want:   core.NewColor(1.6364, 1.6364, 1.6364),
		},
		{
			name:   "light behind the surface",
			eye:    core.NewVector(0, 0, -1),
			normal: core.NewVector(0, 0, -1),
			light:  NewPointLight(core.NewPoint(0, 0, 10), core.White),
			want:   core.NewColor(0.1, 0.1, 0.1),
		},
		{
			name:     "surface in shadow",
			eye:      core.NewVector(0, 0, -1),
			normal:   core.NewVector(0, 0, -1),
			light:    NewPointLight(core.NewPoint(0, 0, -10), core.White),
			inShadow: true,
			want:     core.NewColor(0.1, 0.1, 0.1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Phong(m, identityObject{}, tt.light, position, tt.eye, tt.normal, tt.inShadow)
			if !got.Equal(tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPhong_WithPattern(t *testing.T) {
	m := material.Default()
	m.Pattern = material.NewStripeColors(core.White, core.Black)
	m.Ambient = 1
	m.Diffuse = 0
	m.Specular = 0

	eye := core.NewVector(0, 0, -1)
	normal := core.NewVector(0, 0, -1)
	light := NewPointLight(core.NewPoint(0, 0, -10), core.White)

	c1 := Phong(m, identityObject{}, light, core.NewPoint(0.9, 0, 0), eye, normal, false)
	c2 := Phong(m, identityObject{}, light, core.NewPoint(1.1, 0, 0), eye, normal, false)

	if !c1.Equal(core.White) {
		t.Errorf("Expected white at x=0.9, got %v", c1)
	}
	if !c2.Equal(core.Black) {
		t.Errorf("Expected black at x=1.1, got %v", c2)
	}
}

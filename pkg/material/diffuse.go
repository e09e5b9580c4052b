package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Diffuse is a Lambertian surface with a Blinn-Phong highlight. It spawns
// no secondary rays; all its light arrives via shadow-tested direct
// illumination plus the ambient term.
type Diffuse struct {
	BlinnPhong
}

// NewDiffuse creates a diffuse material
func NewDiffuse(ambient, diffuse, specular core.Vec3, phongExponent float64) *Diffuse {
	return &Diffuse{BlinnPhong{
		AmbientRef:    ambient,
		DiffuseRef:    diffuse,
		SpecularRef:   specular,
		PhongExponent: phongExponent,
	}}
}

// NewLambertian creates a matte material with no specular highlight
func NewLambertian(ambient, diffuse core.Vec3) *Diffuse {
	return NewDiffuse(ambient, diffuse, core.NewVec3(0, 0, 0), 1)
}

package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material provides the local illumination terms of a surface. Materials
// are defined once per scene, indexed by shapes, and shared read-only
// across render workers.
type Material interface {
	// Ambient returns the ambient reflectance coefficient; it is weighted
	// by the scene's single ambient radiance, once per shading call.
	Ambient() core.Vec3

	// Diffuse returns the Lambertian term kd * max(0, n·wi) for a unit
	// light direction wi and unit normal n.
	Diffuse(wi, n core.Vec3) core.Vec3

	// Specular returns the Blinn-Phong term ks * max(0, n·h)^p, where h is
	// the half vector between the unit view direction wo and wi.
	Specular(wo, wi, n core.Vec3) core.Vec3
}

// ScatteredRay is one secondary ray produced by a specular material,
// with the weight its returned radiance is scaled by.
type ScatteredRay struct {
	Ray         core.Ray
	Attenuation core.Vec3
}

// Scatterer is implemented by materials that spawn secondary rays
// (mirrors, dielectrics, conductors). Scatter returns zero, one or two
// rays; Fresnel terms shared between the reflection and refraction
// branches are computed exactly once per call.
type Scatterer interface {
	Scatter(rayIn core.Ray, hit *core.HitRecord, epsilon float64) []ScatteredRay
}

// BlinnPhong holds the reflectance coefficients common to every material
// variant. Concrete materials embed it by value, keeping per-variant data
// colocated without a type hierarchy.
type BlinnPhong struct {
	AmbientRef    core.Vec3
	DiffuseRef    core.Vec3
	SpecularRef   core.Vec3
	PhongExponent float64
}

// Ambient returns the ambient reflectance coefficient
func (b BlinnPhong) Ambient() core.Vec3 {
	return b.AmbientRef
}

// Diffuse returns the Lambertian reflectance for light direction wi
func (b BlinnPhong) Diffuse(wi, n core.Vec3) core.Vec3 {
	cosTheta := math.Max(0, wi.Dot(n))
	return b.DiffuseRef.Multiply(cosTheta)
}

// Specular returns the Blinn-Phong highlight for view wo and light wi
func (b BlinnPhong) Specular(wo, wi, n core.Vec3) core.Vec3 {
	half := wi.Add(wo).Normalize()
	cosAlpha := math.Max(0, n.Dot(half))
	return b.SpecularRef.Multiply(math.Pow(cosAlpha, b.PhongExponent))
}

// reflect returns the mirror reflection of direction d about unit normal n:
// r = d - 2*(d·n)*n
func reflect(d, n core.Vec3) core.Vec3 {
	return d.Subtract(n.Multiply(2 * d.Dot(n)))
}

package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Conductor is a metal: it reflects with an angle-dependent conductor
// Fresnel term and transmits nothing.
type Conductor struct {
	BlinnPhong
	MirrorRef       core.Vec3
	RefractionIndex float64
	AbsorptionIndex float64
}

// NewConductor creates a metallic material
func NewConductor(ambient, diffuse, specular, mirrorRef core.Vec3, phongExponent, refractionIndex, absorptionIndex float64) *Conductor {
	return &Conductor{
		BlinnPhong: BlinnPhong{
			AmbientRef:    ambient,
			DiffuseRef:    diffuse,
			SpecularRef:   specular,
			PhongExponent: phongExponent,
		},
		MirrorRef:       mirrorRef,
		RefractionIndex: refractionIndex,
		AbsorptionIndex: absorptionIndex,
	}
}

// Fresnel evaluates the conductor reflectance for a unit incoming
// direction. Conductors absorb rather than transmit, so there is no
// refraction branch to share terms with.
func (c *Conductor) Fresnel(direction core.Vec3, hit *core.HitRecord) float64 {
	cosTheta := hit.Normal.Dot(direction.Negate())
	cosTheta = math.Min(cosTheta, 1.0)

	n2 := c.RefractionIndex
	k2 := c.AbsorptionIndex

	sumNK := n2*n2 + k2*k2
	twoNCos := 2 * n2 * cosTheta
	cosSquared := cosTheta * cosTheta

	rs := (sumNK - twoNCos + cosSquared) / (sumNK + twoNCos + cosSquared)
	rp := (sumNK*cosSquared - twoNCos + 1) / (sumNK*cosSquared + twoNCos + 1)

	return 0.5 * (rs + rp)
}

// Scatter reflects the incoming ray, scaled by the conductor Fresnel term
func (c *Conductor) Scatter(rayIn core.Ray, hit *core.HitRecord, epsilon float64) []ScatteredRay {
	direction := rayIn.Direction.Normalize()
	fr := c.Fresnel(direction, hit)
	if fr <= 0 {
		return nil
	}

	reflected := reflect(direction, hit.Normal)
	origin := hit.Point.Add(hit.Normal.Multiply(epsilon))
	return []ScatteredRay{{
		Ray:         core.NewRay(origin, reflected),
		Attenuation: c.MirrorRef.Multiply(fr),
	}}
}

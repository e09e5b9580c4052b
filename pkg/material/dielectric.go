package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// FresnelTerms holds the result of a single Fresnel evaluation at a
// dielectric interface, shared between the reflection and refraction
// branches of the same shading call.
type FresnelTerms struct {
	CosTheta float64 // Incidence angle cosine, n·(-d)
	CosPhi   float64 // Transmission angle cosine (meaningless under TIR)
	Ratio    float64 // n1/n2 for the crossing direction
	Reflect  float64 // Fresnel reflectance Fr
	Transmit float64 // 1 - Fr, zero under total internal reflection
	TIR      bool    // Total internal reflection occurred
}

// Dielectric is a transparent material like glass. Energy splits between a
// reflected and a refracted ray by the exact (unpolarized) Fresnel
// equations; light travelling inside the medium is attenuated by
// Beer-Lambert absorption over the interior path length.
type Dielectric struct {
	BlinnPhong
	MirrorRef       core.Vec3
	RefractionIndex float64
	Absorption      core.Vec3 // Beer-Lambert absorption coefficient per channel
}

// NewDielectric creates a glass-like material
func NewDielectric(ambient, mirrorRef core.Vec3, refractionIndex float64, absorption core.Vec3) *Dielectric {
	return &Dielectric{
		BlinnPhong: BlinnPhong{
			AmbientRef:    ambient,
			PhongExponent: 1,
		},
		MirrorRef:       mirrorRef,
		RefractionIndex: refractionIndex,
		Absorption:      absorption,
	}
}

// Fresnel evaluates the exact dielectric Fresnel equations for a unit
// incoming direction against the oriented surface normal. The index ratio
// swaps when the ray exits rather than enters the medium, tracked by the
// hit's front-face flag. Reflect + Transmit is exactly 1 unless total
// internal reflection forces Reflect to 1.
func (d *Dielectric) Fresnel(direction core.Vec3, hit *core.HitRecord) FresnelTerms {
	cosTheta := hit.Normal.Dot(direction.Negate())
	cosTheta = math.Min(cosTheta, 1.0)

	n1, n2 := 1.0, d.RefractionIndex
	if !hit.FrontFace {
		n1, n2 = n2, n1
	}
	ratio := n1 / n2

	// Snell's law: sin²φ = (n1/n2)² * (1 - cos²θ)
	insideSqrt := 1.0 - ratio*ratio*(1.0-cosTheta*cosTheta)
	if insideSqrt < 0 {
		return FresnelTerms{CosTheta: cosTheta, Ratio: ratio, Reflect: 1.0, TIR: true}
	}
	cosPhi := math.Sqrt(insideSqrt)

	rParallel := (n2*cosTheta - n1*cosPhi) / (n2*cosTheta + n1*cosPhi)
	rPerpendicular := (n1*cosTheta - n2*cosPhi) / (n1*cosTheta + n2*cosPhi)
	fr := 0.5 * (rParallel*rParallel + rPerpendicular*rPerpendicular)

	return FresnelTerms{
		CosTheta: cosTheta,
		CosPhi:   cosPhi,
		Ratio:    ratio,
		Reflect:  fr,
		Transmit: 1.0 - fr,
	}
}

// Scatter computes the Fresnel terms once and spawns the reflection and
// refraction rays from that single evaluation. Under total internal
// reflection only the reflected ray exists, with full weight.
func (d *Dielectric) Scatter(rayIn core.Ray, hit *core.HitRecord, epsilon float64) []ScatteredRay {
	direction := rayIn.Direction.Normalize()
	fresnel := d.Fresnel(direction, hit)

	rays := make([]ScatteredRay, 0, 2)

	if fresnel.Reflect > 0 {
		reflected := reflect(direction, hit.Normal)
		origin := hit.Point.Add(hit.Normal.Multiply(epsilon))
		rays = append(rays, ScatteredRay{
			Ray:         core.NewRay(origin, reflected),
			Attenuation: d.MirrorRef.Multiply(fresnel.Reflect),
		})
	}

	if !fresnel.TIR {
		// Snell refraction: bend (d + n*cosθ) by the index ratio, then push
		// through the surface along -n by cosφ
		refracted := direction.Add(hit.Normal.Multiply(fresnel.CosTheta)).
			Multiply(fresnel.Ratio).
			Subtract(hit.Normal.Multiply(fresnel.CosPhi))
		origin := hit.Point.Subtract(hit.Normal.Multiply(epsilon))

		attenuation := core.NewVec3(fresnel.Transmit, fresnel.Transmit, fresnel.Transmit)
		if !hit.FrontFace {
			// Ray exits the medium: attenuate by the distance it travelled
			// inside, from the entry point to this hit
			distance := rayIn.Origin.Subtract(hit.Point).Length()
			attenuation = attenuation.MultiplyVec(d.beerLambert(distance))
		}

		rays = append(rays, ScatteredRay{
			Ray:         core.NewRay(origin, refracted),
			Attenuation: attenuation,
		})
	}

	return rays
}

// beerLambert returns e^(-absorption * distance) per channel
func (d *Dielectric) beerLambert(distance float64) core.Vec3 {
	return d.Absorption.Multiply(distance).NegExp()
}

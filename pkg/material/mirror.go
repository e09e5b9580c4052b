package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Mirror is a perfectly specular reflector. On top of its local
// Blinn-Phong shading it casts one reflection ray scaled by the mirror
// reflectance coefficient.
type Mirror struct {
	BlinnPhong
	MirrorRef core.Vec3
}

// NewMirror creates a mirror material
func NewMirror(ambient, diffuse, specular, mirrorRef core.Vec3, phongExponent float64) *Mirror {
	return &Mirror{
		BlinnPhong: BlinnPhong{
			AmbientRef:    ambient,
			DiffuseRef:    diffuse,
			SpecularRef:   specular,
			PhongExponent: phongExponent,
		},
		MirrorRef: mirrorRef,
	}
}

// Scatter reflects the incoming ray about the surface normal. The origin
// is offset by epsilon along the normal before any further transform, so
// the reflection never re-hits its own surface.
func (m *Mirror) Scatter(rayIn core.Ray, hit *core.HitRecord, epsilon float64) []ScatteredRay {
	reflected := reflect(rayIn.Direction, hit.Normal)
	origin := hit.Point.Add(hit.Normal.Multiply(epsilon))
	return []ScatteredRay{{
		Ray:         core.NewRay(origin, reflected),
		Attenuation: m.MirrorRef,
	}}
}

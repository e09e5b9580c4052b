package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// WhittedIntegrator computes radiance along a ray by classic recursive
// Whitted ray tracing: ambient light, shadow-tested direct illumination
// from every light, and recursive reflection/refraction for specular
// materials. It holds no mutable state and is safe to share.
type WhittedIntegrator struct {
	scene *scene.Scene
}

// NewWhittedIntegrator creates an integrator over a preprocessed scene
func NewWhittedIntegrator(s *scene.Scene) *WhittedIntegrator {
	return &WhittedIntegrator{scene: s}
}

// RayColor returns the radiance arriving along the ray. depth counts
// specular bounces; primary rays start at 0. A miss returns the scene
// background exactly, at any depth.
func (wi *WhittedIntegrator) RayColor(ray core.Ray, depth int) core.Vec3 {
	s := wi.scene

	hit, isHit := s.HitWorld(ray, s.IntersectionEpsilon, math.Inf(1))
	if !isHit {
		return s.Background
	}

	mat := s.Materials[hit.MaterialIndex]

	// Ambient term, once per shading call, not per light
	color := mat.Ambient().MultiplyVec(s.Ambient)

	color = color.Add(wi.directLighting(ray, hit, mat))

	// Specular recursion terminates by contributing nothing past MaxDepth
	if scatterer, ok := mat.(material.Scatterer); ok && depth < s.MaxDepth {
		for _, scattered := range scatterer.Scatter(ray, hit, s.ShadowEpsilon) {
			if scattered.Attenuation.IsNearZero(1e-9) {
				continue
			}
			color = color.Add(scattered.Attenuation.MultiplyVec(wi.RayColor(scattered.Ray, depth+1)))
		}
	}

	return color
}

// directLighting sums the shadow-gated diffuse and specular contributions
// of every light at the hit point.
func (wi *WhittedIntegrator) directLighting(ray core.Ray, hit *core.HitRecord, mat material.Material) core.Vec3 {
	s := wi.scene
	color := core.NewVec3(0, 0, 0)
	wo := ray.Direction.Normalize().Negate()

	// Offset along the normal so the shadow ray cannot re-hit its own
	// surface. The offset is applied here, in world space, before any
	// instance inverse-transform sees the ray.
	origin := hit.Point.Add(hit.Normal.Multiply(s.ShadowEpsilon))

	for _, light := range s.Lights {
		direction, distance := light.ShadowRay(origin)
		if distance == 0 {
			continue
		}

		shadowRay := core.NewRay(origin, direction)
		if s.HitAny(shadowRay, s.IntersectionEpsilon, distance) {
			continue
		}

		irradiance := light.Irradiance(direction, distance)
		color = color.Add(mat.Diffuse(direction, hit.Normal).MultiplyVec(irradiance))
		color = color.Add(mat.Specular(wo, direction, hit.Normal).MultiplyVec(irradiance))
	}

	return color
}

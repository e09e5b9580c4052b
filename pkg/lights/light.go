package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Light is a shadow-rayable light source. The ambient term is not a Light:
// it is a single constant vector owned by the scene.
type Light interface {
	// ShadowRay returns the unit direction from the (already epsilon-offset)
	// shadow ray origin toward the light, and the distance to it. Any
	// occluder with t in (0, distance) blocks the light.
	ShadowRay(origin core.Vec3) (direction core.Vec3, distance float64)

	// Irradiance returns the radiance arriving at a point the given
	// distance from the light along direction.
	Irradiance(direction core.Vec3, distance float64) core.Vec3
}

// PointLight radiates intensity in all directions; irradiance falls off
// with the square of the distance.
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// NewPointLight creates a point light
func NewPointLight(position, intensity core.Vec3) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

// ShadowRay returns the direction and distance to the light position
func (l *PointLight) ShadowRay(origin core.Vec3) (core.Vec3, float64) {
	toLight := l.Position.Subtract(origin)
	distance := toLight.Length()
	if distance == 0 {
		return core.NewVec3(0, 0, 0), 0
	}
	return toLight.Multiply(1.0 / distance), distance
}

// Irradiance applies inverse-square falloff
func (l *PointLight) Irradiance(_ core.Vec3, distance float64) core.Vec3 {
	return l.Intensity.Multiply(1.0 / (distance * distance))
}

// DirectionalLight arrives from a fixed direction at constant radiance,
// as if infinitely far away. Shadow rays use an unbounded interval.
type DirectionalLight struct {
	Direction core.Vec3 // Unit direction the light travels in
	Radiance  core.Vec3
}

// NewDirectionalLight creates a directional light; direction is the way
// the light travels, not the way to the light
func NewDirectionalLight(direction, radiance core.Vec3) *DirectionalLight {
	return &DirectionalLight{Direction: direction.Normalize(), Radiance: radiance}
}

// ShadowRay points opposite the travel direction, infinitely far
func (l *DirectionalLight) ShadowRay(core.Vec3) (core.Vec3, float64) {
	return l.Direction.Negate(), math.Inf(1)
}

// Irradiance is constant regardless of distance
func (l *DirectionalLight) Irradiance(core.Vec3, float64) core.Vec3 {
	return l.Radiance
}

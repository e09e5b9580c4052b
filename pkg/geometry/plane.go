package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane is an infinite plane through a point with a given normal. It has no
// finite bounding box, so the scene keeps planes out of the BVH and tests
// them linearly after traversal.
type Plane struct {
	Point         core.Vec3
	Normal        core.Vec3 // Unit normal
	MaterialIndex int
}

// NewPlane creates a new infinite plane
func NewPlane(point, normal core.Vec3, materialIndex int) *Plane {
	return &Plane{
		Point:         point,
		Normal:        normal.Normalize(),
		MaterialIndex: materialIndex,
	}
}

// Hit tests if a ray intersects the plane. Rays parallel to the plane
// (denominator near zero) report no hit instead of producing Inf/NaN.
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	denom := ray.Direction.Dot(p.Normal)
	if math.Abs(denom) < 1e-12 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denom
	if t < tMin || t > tMax {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:             t,
		Point:         ray.At(t),
		MaterialIndex: p.MaterialIndex,
	}
	hitRecord.SetFaceNormal(ray, p.Normal)

	return hitRecord, true
}

// BoundingBox returns an unbounded box; planes are never put in the BVH
func (p *Plane) BoundingBox() core.AABB {
	inf := math.Inf(1)
	return core.NewAABB(core.NewVec3(-inf, -inf, -inf), core.NewVec3(inf, inf, inf))
}

// MaterialIndexes returns the material table entries this plane references
func (p *Plane) MaterialIndexes() []int {
	return []int{p.MaterialIndex}
}

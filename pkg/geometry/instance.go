package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Instance is a shape defined by applying a transform to a shared base
// shape. It holds no geometry of its own: the ray is taken into object
// space with the cached inverse transform, intersected against the base
// shape, and the hit is brought back to world space. The inverse and
// inverse-transpose are computed once at construction, never per query.
type Instance struct {
	base      core.Shape
	transform core.Transform
	bbox      core.AABB // World-space bounds, precomputed for the BVH
}

// NewInstance creates an instanced shape from a base shape and a transform
func NewInstance(base core.Shape, transform core.Transform) *Instance {
	return &Instance{
		base:      base,
		transform: transform,
		bbox:      transform.ApplyAABB(base.BoundingBox()),
	}
}

// Hit intersects the ray with the transformed shape.
//
// The incoming world-space ray (including any epsilon offset already applied
// to its origin by the caller) is transformed into object space: the origin
// as a point, the direction as a vector. The direction is not renormalized,
// so the object-space t is the world-space t and the [tMin, tMax] interval
// carries over unchanged. Hit point and normal transform back with the
// forward matrix and the inverse-transpose respectively.
func (inst *Instance) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	objectRay := core.NewRay(
		inst.transform.InversePoint(ray.Origin),
		inst.transform.InverseVector(ray.Direction),
	)

	hit, isHit := inst.base.Hit(objectRay, tMin, tMax)
	if !isHit {
		return nil, false
	}

	hit.Point = inst.transform.ApplyPoint(hit.Point)
	worldNormal := inst.transform.ApplyNormal(hit.Normal)
	if !hit.FrontFace {
		// SetFaceNormal already flipped in object space; re-orienting
		// against the world ray keeps back-face hits consistent
		worldNormal = worldNormal.Multiply(-1)
	}
	hit.SetFaceNormal(ray, worldNormal)

	return hit, true
}

// BoundingBox returns the precomputed world-space bounding box
func (inst *Instance) BoundingBox() core.AABB {
	return inst.bbox
}

// Transform returns the instance's transform
func (inst *Instance) Transform() core.Transform {
	return inst.transform
}

// MaterialIndexes delegates to the base shape when it reports references
func (inst *Instance) MaterialIndexes() []int {
	if referencer, ok := inst.base.(interface{ MaterialIndexes() []int }); ok {
		return referencer.MaterialIndexes()
	}
	return nil
}

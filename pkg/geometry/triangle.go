package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// degenerateEpsilon rejects determinants of rays parallel to the triangle
// plane and of degenerate (zero-area) triangles before any division happens
const degenerateEpsilon = 1e-12

// Triangle represents a single triangle defined by three vertices.
// Vertex normals are optional; when present the shading normal is
// interpolated by barycentric weights (smooth shading).
type Triangle struct {
	V0, V1, V2    core.Vec3
	N0, N1, N2    core.Vec3 // Per-vertex normals, only read when smooth
	Smooth        bool
	MaterialIndex int

	normal core.Vec3 // Cached geometric normal
	bbox   core.AABB // Cached bounding box
}

// NewTriangle creates a new flat-shaded triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, materialIndex int) *Triangle {
	t := &Triangle{
		V0:            v0,
		V1:            v1,
		V2:            v2,
		MaterialIndex: materialIndex,
	}
	t.computeNormal()
	t.computeBoundingBox()
	return t
}

// NewSmoothTriangle creates a triangle with per-vertex normals for
// barycentric normal interpolation
func NewSmoothTriangle(v0, v1, v2, n0, n1, n2 core.Vec3, materialIndex int) *Triangle {
	t := &Triangle{
		V0:            v0,
		V1:            v1,
		V2:            v2,
		N0:            n0.Normalize(),
		N1:            n1.Normalize(),
		N2:            n2.Normalize(),
		Smooth:        true,
		MaterialIndex: materialIndex,
	}
	t.computeNormal()
	t.computeBoundingBox()
	return t
}

func (t *Triangle) computeNormal() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	t.normal = edge1.Cross(edge2).Normalize()
}

func (t *Triangle) computeBoundingBox() {
	t.bbox = core.NewAABBFromPoints(t.V0, t.V1, t.V2)
}

// Hit tests if a ray intersects the triangle using the Möller-Trumbore
// algorithm. Degenerate triangles have a near-zero determinant for every
// ray and therefore never report a hit.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)

	if det > -degenerateEpsilon && det < degenerateEpsilon {
		return nil, false
	}

	invDet := 1.0 / det
	s := ray.Origin.Subtract(t.V0)
	u := invDet * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := invDet * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tParam := invDet * edge2.Dot(q)
	if tParam < tMin || tParam > tMax {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:             tParam,
		Point:         ray.At(tParam),
		MaterialIndex: t.MaterialIndex,
	}
	hitRecord.SetFaceNormal(ray, t.shadingNormal(u, v))

	return hitRecord, true
}

// shadingNormal returns the interpolated vertex normal for smooth triangles
// and the geometric normal otherwise
func (t *Triangle) shadingNormal(u, v float64) core.Vec3 {
	if !t.Smooth {
		return t.normal
	}
	w := 1.0 - u - v
	n := t.N0.Multiply(w).Add(t.N1.Multiply(u)).Add(t.N2.Multiply(v))
	if n.IsNearZero(degenerateEpsilon) {
		// Opposing vertex normals cancelled out; the geometric normal is
		// always well defined
		return t.normal
	}
	return n.Normalize()
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// GeometricNormal returns the triangle's face normal
func (t *Triangle) GeometricNormal() core.Vec3 {
	return t.normal
}

// MaterialIndexes returns the material table entries this triangle references
func (t *Triangle) MaterialIndexes() []int {
	return []int{t.MaterialIndex}
}

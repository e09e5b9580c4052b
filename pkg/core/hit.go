package core

// HitRecord contains information about a ray-object intersection.
// It is stack-scoped to a single intersection query and never stored.
type HitRecord struct {
	T             float64 // Parameter t along the ray
	Point         Vec3    // Point of intersection, world space
	Normal        Vec3    // Unit surface normal, oriented against the ray
	FrontFace     bool    // Whether the ray hit the front face
	MaterialIndex int     // Index into the scene's material table
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// Shape is the interface for objects that can be hit by rays
type Shape interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
	BoundingBox() AABB
}

// Logger is the minimal logging interface used across the renderer
type Logger interface {
	Printf(format string, args ...interface{})
}

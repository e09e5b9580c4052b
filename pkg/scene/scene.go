package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// CameraConfig describes the camera in scene terms. The renderer derives
// the orthonormal basis and near-plane extents from it.
type CameraConfig struct {
	Position core.Vec3
	Gaze     core.Vec3 // Gaze direction; ignored when LookAt is set
	LookAt   *core.Vec3
	Up       core.Vec3

	// Explicit near-plane extents; ignored when FovY > 0, in which case
	// the extents derive from the vertical field of view (degrees) and
	// the image aspect ratio.
	Left, Right, Bottom, Top float64
	FovY                     float64

	NearDistance float64
	Width        int
	Height       int
	NumSamples   int // Rays per pixel; 1 disables jitter
}

// Scene aggregates everything the renderer reads: primitives, the material
// table, lights, the ambient term, camera and global render parameters.
// It is constructed once, validated, preprocessed, and read-only afterwards,
// so render workers share it without locking.
type Scene struct {
	Camera    CameraConfig
	Shapes    []core.Shape
	Materials []material.Material
	Lights    []lights.Light

	Ambient    core.Vec3 // Single ambient radiance constant
	Background core.Vec3

	MaxDepth            int
	ShadowEpsilon       float64
	IntersectionEpsilon float64

	bvh       *core.BVH
	unbounded []core.Shape // Shapes without a finite bounding box (planes)
}

// MaterialReferencer is implemented by shapes that can report which
// material table entries they reference, for fail-fast validation.
type MaterialReferencer interface {
	MaterialIndexes() []int
}

// Validate checks the scene for construction errors before any rendering
// happens. An invalid scene is refused with a diagnostic naming the
// offending shape or parameter rather than producing undefined pixels.
func (s *Scene) Validate() error {
	if s.Camera.Width <= 0 || s.Camera.Height <= 0 {
		return fmt.Errorf("scene: invalid resolution %dx%d", s.Camera.Width, s.Camera.Height)
	}
	if s.Camera.NumSamples < 1 {
		return fmt.Errorf("scene: samples per pixel must be >= 1, got %d", s.Camera.NumSamples)
	}
	if s.MaxDepth < 0 {
		return fmt.Errorf("scene: max recursion depth must be >= 0, got %d", s.MaxDepth)
	}
	if s.ShadowEpsilon <= 0 || s.IntersectionEpsilon <= 0 {
		return fmt.Errorf("scene: epsilons must be positive (shadow=%g, intersection=%g)",
			s.ShadowEpsilon, s.IntersectionEpsilon)
	}

	for i, shape := range s.Shapes {
		referencer, ok := shape.(MaterialReferencer)
		if !ok {
			continue
		}
		for _, idx := range referencer.MaterialIndexes() {
			if idx < 0 || idx >= len(s.Materials) {
				return fmt.Errorf("scene: shape %d references material %d, scene has %d materials",
					i, idx, len(s.Materials))
			}
		}
	}

	return nil
}

// Preprocess validates the scene and builds the acceleration structure.
// Shapes without a finite bounding box are kept aside and tested linearly
// after BVH traversal, as there is no meaningful box to sort them into.
func (s *Scene) Preprocess() error {
	if err := s.Validate(); err != nil {
		return err
	}

	bounded := make([]core.Shape, 0, len(s.Shapes))
	s.unbounded = nil
	for _, shape := range s.Shapes {
		if isBounded(shape.BoundingBox()) {
			bounded = append(bounded, shape)
		} else {
			s.unbounded = append(s.unbounded, shape)
		}
	}

	s.bvh = core.NewBVH(bounded)
	return nil
}

func isBounded(box core.AABB) bool {
	return !math.IsInf(box.Min.X, 0) && !math.IsInf(box.Max.X, 0) &&
		!math.IsInf(box.Min.Y, 0) && !math.IsInf(box.Max.Y, 0) &&
		!math.IsInf(box.Min.Z, 0) && !math.IsInf(box.Max.Z, 0)
}

// HitWorld returns the nearest intersection of the ray with the whole
// primitive set within [tMin, tMax], or false if everything is missed.
// Preprocess must have been called.
func (s *Scene) HitWorld(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	closest, hitAnything := s.bvh.Hit(ray, tMin, tMax)
	closestSoFar := tMax
	if hitAnything {
		closestSoFar = closest.T
	}

	for _, shape := range s.unbounded {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, hitAnything
}

// HitAny reports whether anything occludes the ray in [tMin, tMax].
// Used by shadow tests, which do not care about the nearest hit.
func (s *Scene) HitAny(ray core.Ray, tMin, tMax float64) bool {
	if s.bvh.HitAny(ray, tMin, tMax) {
		return true
	}
	for _, shape := range s.unbounded {
		if _, isHit := shape.Hit(ray, tMin, tMax); isHit {
			return true
		}
	}
	return false
}

// PrimitiveCount returns the number of top-level shapes in the scene
func (s *Scene) PrimitiveCount() int {
	return len(s.Shapes)
}

package core

import "sort"

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox AABB
	Left        *BVHNode
	Right       *BVHNode
	Shapes      []Shape // Leaf shapes (nil for internal nodes)
}

// BVH is a Bounding Volume Hierarchy for fast ray-object intersection.
// It is built once over the flattened primitive list and is read-only
// afterwards, so it can be shared across render workers without locking.
type BVH struct {
	Root *BVHNode
}

// Leaf threshold: nodes with this many or fewer shapes become leaves
const leafThreshold = 4

// Depth cap: pathological scenes (e.g. many coincident bounding boxes)
// stop splitting here and fall back to a linear scan over the leaf.
const maxBuildDepth = 64

// NewBVH constructs a BVH from a slice of shapes
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{Root: nil}
	}

	// Copy so sorting during the build never mutates the caller's slice
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	return &BVH{Root: buildBVH(shapesCopy, 0)}
}

// buildBVH recursively builds the tree by median split along the longest axis
func buildBVH(shapes []Shape, depth int) *BVHNode {
	boundingBox := shapes[0].BoundingBox()
	for i := 1; i < len(shapes); i++ {
		boundingBox = boundingBox.Union(shapes[i].BoundingBox())
	}

	if len(shapes) <= leafThreshold || depth >= maxBuildDepth {
		return &BVHNode{
			BoundingBox: boundingBox,
			Shapes:      shapes,
		}
	}

	axis := boundingBox.LongestAxis()
	sortShapesByAxis(shapes, axis)

	mid := len(shapes) / 2
	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(shapes[:mid], depth+1),
		Right:       buildBVH(shapes[mid:], depth+1),
	}
}

// sortShapesByAxis sorts shapes by bounding box center along the given axis
func sortShapesByAxis(shapes []Shape, axis int) {
	sort.Slice(shapes, func(i, j int) bool {
		return shapes[i].BoundingBox().Center().Axis(axis) < shapes[j].BoundingBox().Center().Axis(axis)
	})
}

// Hit returns the globally nearest hit within [tMin, tMax], or false if the
// ray misses every shape. Ties at equal t resolve to the shape encountered
// first in traversal order, which is deterministic for a given build.
func (bvh *BVH) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return bvh.hitNode(bvh.Root, ray, tMin, tMax)
}

// HitAny reports whether anything intersects the ray in [tMin, tMax].
// Used for shadow rays, which only need occlusion, not the nearest hit.
func (bvh *BVH) HitAny(ray Ray, tMin, tMax float64) bool {
	if bvh.Root == nil {
		return false
	}
	return bvh.hitAnyNode(bvh.Root, ray, tMin, tMax)
}

func (bvh *BVH) hitNode(node *BVHNode, ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if node.Shapes != nil {
		var closestHit *HitRecord
		hitAnything := false
		closestSoFar := tMax

		for _, shape := range node.Shapes {
			if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
				hitAnything = true
				closestSoFar = hit.T
				closestHit = hit
			}
		}

		return closestHit, hitAnything
	}

	// Visit the child whose box the ray enters first; a close hit there can
	// prune the far child entirely
	first, second := node.Left, node.Right
	hitFirst, tFirst := first.BoundingBox.HitInterval(ray, tMin, tMax)
	hitSecond, tSecond := second.BoundingBox.HitInterval(ray, tMin, tMax)
	if hitFirst && hitSecond && tSecond < tFirst {
		first, second = second, first
	}

	var closestHit *HitRecord
	hitAnything := false
	closestSoFar := tMax

	if hit, isHit := bvh.hitNode(first, ray, tMin, closestSoFar); isHit {
		hitAnything = true
		closestSoFar = hit.T
		closestHit = hit
	}
	if hit, isHit := bvh.hitNode(second, ray, tMin, closestSoFar); isHit {
		hitAnything = true
		closestHit = hit
	}

	return closestHit, hitAnything
}

func (bvh *BVH) hitAnyNode(node *BVHNode, ray Ray, tMin, tMax float64) bool {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return false
	}

	if node.Shapes != nil {
		for _, shape := range node.Shapes {
			if _, isHit := shape.Hit(ray, tMin, tMax); isHit {
				return true
			}
		}
		return false
	}

	return bvh.hitAnyNode(node.Left, ray, tMin, tMax) || bvh.hitAnyNode(node.Right, ray, tMin, tMax)
}

// WorldBounds returns the bounding box of the whole hierarchy
func (bvh *BVH) WorldBounds() AABB {
	if bvh.Root == nil {
		return AABB{}
	}
	return bvh.Root.BoundingBox
}

package geometry

import (
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Leaf threshold: if we have this many or fewer objects, store them in a leaf node
const leafThreshold = 8

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Objects     []Hittable // Leaf members (nil for internal nodes)
}

// BVH is a bounding volume hierarchy over a set of hittables. It reports the
// same closest hit as a HittableList over the same objects.
type BVH struct {
	Root *BVHNode
}

// BVHStats describes the shape of a built hierarchy
type BVHStats struct {
	Nodes    int
	Leaves   int
	MaxDepth int
	Objects  int
}

// NewBVH constructs a BVH from a slice of hittables
func NewBVH(objects []Hittable) *BVH {
	if len(objects) == 0 {
		return &BVH{}
	}

	// Building reorders the slice, so work on a copy
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	return &BVH{Root: buildBVH(objectsCopy)}
}

// buildBVH recursively splits at the median along the longest axis
func buildBVH(objects []Hittable) *BVHNode {
	box := objects[0].BoundingBox()
	for _, object := range objects[1:] {
		box = box.Union(object.BoundingBox())
	}

	if len(objects) <= leafThreshold {
		return &BVHNode{BoundingBox: box, Objects: objects}
	}

	axis := box.LongestAxis()
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].BoundingBox().Center().Axis(axis) < objects[j].BoundingBox().Center().Axis(axis)
	})

	mid := len(objects) / 2
	return &BVHNode{
		BoundingBox: box,
		Left:        buildBVH(objects[:mid]),
		Right:       buildBVH(objects[mid:]),
	}
}

// Hit tests if a ray intersects any object in the BVH
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	hit := hitNode(bvh.Root, ray, tMin, tMax)
	return hit, hit != nil
}

// BoundingBox returns the root bounds
func (bvh *BVH) BoundingBox() core.AABB {
	if bvh.Root == nil {
		return core.AABB{}
	}
	return bvh.Root.BoundingBox
}

func hitNode(node *BVHNode, ray core.Ray, tMin, tMax float64) *material.HitRecord {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return nil
	}

	var closestHit *material.HitRecord
	closestSoFar := tMax

	if node.Objects != nil {
		for _, object := range node.Objects {
			if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
				closestSoFar = hit.T
				closestHit = hit
			}
		}
		return closestHit
	}

	if hit := hitNode(node.Left, ray, tMin, closestSoFar); hit != nil {
		closestSoFar = hit.T
		closestHit = hit
	}
	if hit := hitNode(node.Right, ray, tMin, closestSoFar); hit != nil {
		closestHit = hit
	}
	return closestHit
}

// Stats walks the hierarchy and reports its shape
func (bvh *BVH) Stats() BVHStats {
	var stats BVHStats
	if bvh.Root != nil {
		collectStats(bvh.Root, 0, &stats)
	}
	return stats
}

func collectStats(node *BVHNode, depth int, stats *BVHStats) {
	stats.Nodes++
	stats.MaxDepth = max(stats.MaxDepth, depth)

	if node.Objects != nil {
		stats.Leaves++
		stats.Objects += len(node.Objects)
		return
	}
	collectStats(node.Left, depth+1, stats)
	collectStats(node.Right, depth+1, stats)
}

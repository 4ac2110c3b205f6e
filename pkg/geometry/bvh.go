package geometry

import (
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Leaf threshold: if we have this many or fewer objects, store them in a leaf node
const leafThreshold = 2

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Objects     []Object // Objects for leaf nodes (nil for internal nodes)
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// It is itself an Object and can be nested inside other objects.
type BVH struct {
	Root     *BVHNode
	Exposure core.Interval
}

// bvhEntry pairs an object with its box so that boxes are computed only once
type bvhEntry struct {
	object Object
	box    core.AABB
}

// NewBVH constructs a BVH over objects, bounding each one over the exposure interval.
// An empty slice yields a BVH that never hits.
func NewBVH(objects []Object, exposure core.Interval) *BVH {
	if len(objects) == 0 {
		return &BVH{Root: nil, Exposure: exposure}
	}

	// Work on a copy so the caller's slice order is left untouched
	entries := make([]bvhEntry, len(objects))
	for i, object := range objects {
		entries[i] = bvhEntry{object: object, box: object.BoundingBox(exposure)}
	}

	return &BVH{
		Root:     buildBVH(entries),
		Exposure: exposure,
	}
}

// buildBVH recursively builds the BVH with a median split along the longest axis
func buildBVH(entries []bvhEntry) *BVHNode {
	boundingBox := entries[0].box
	for _, e := range entries[1:] {
		boundingBox = boundingBox.Union(e.box)
	}

	// Base case: few objects - create leaf node
	if len(entries) <= leafThreshold {
		objects := make([]Object, len(entries))
		for i, e := range entries {
			objects[i] = e.object
		}
		return &BVHNode{
			BoundingBox: boundingBox,
			Objects:     objects,
		}
	}

	axis := boundingBox.LongestAxis()
	sortEntriesByAxis(entries, axis)

	// Split in the middle
	mid := len(entries) / 2
	left := buildBVH(entries[:mid])
	right := buildBVH(entries[mid:])

	return &BVHNode{
		BoundingBox: left.BoundingBox.Union(right.BoundingBox),
		Left:        left,
		Right:       right,
	}
}

// sortEntriesByAxis sorts entries by their bounding box center along the specified axis
func sortEntriesByAxis(entries []bvhEntry, axis core.Axis) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].box.Center().Index(axis) < entries[j].box.Center().Index(axis)
	})
}

// Hit tests if a ray intersects any object in the BVH
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return bvh.hitNode(bvh.Root, ray, tMin, tMax, sampler)
}

// hitNode recursively tests ray intersection with BVH nodes
func (bvh *BVH) hitNode(node *BVHNode, ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	// First check if ray hits the bounding box
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	// If this is a leaf node, test against all objects using linear search
	if node.Objects != nil {
		return ObjectList(node.Objects).Hit(ray, tMin, tMax, sampler)
	}

	// Internal node - left first, then right within the narrowed range
	var closestHit *material.HitRecord
	hitAnything := false
	closestSoFar := tMax

	if hit, isHit := bvh.hitNode(node.Left, ray, tMin, closestSoFar, sampler); isHit {
		hitAnything = true
		closestSoFar = hit.T
		closestHit = hit
	}

	if hit, isHit := bvh.hitNode(node.Right, ray, tMin, closestSoFar, sampler); isHit {
		hitAnything = true
		closestHit = hit
	}

	return closestHit, hitAnything
}

// BoundingBox returns the root box. The exposure was fixed at build time.
func (bvh *BVH) BoundingBox(exposure core.Interval) core.AABB {
	if bvh.Root == nil {
		return core.EmptyAABB()
	}
	return bvh.Root.BoundingBox
}

func (*BVH) isObject() {}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes   int
	LeafNodes    int
	MaxDepth     int
	AvgDepth     float64
	TotalObjects int
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() BVHStats {
	if bvh.Root == nil {
		return BVHStats{}
	}

	stats := BVHStats{}
	bvh.collectStats(bvh.Root, 0, &stats)

	// Calculate average depth after collecting all data
	if stats.LeafNodes > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafNodes)
	}

	return stats
}

// collectStats recursively collects statistics about the BVH
func (bvh *BVH) collectStats(node *BVHNode, depth int, stats *BVHStats) {
	stats.TotalNodes++

	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	if node.Objects != nil {
		stats.LeafNodes++
		stats.TotalObjects += len(node.Objects)
		stats.AvgDepth += float64(depth) // Accumulate depth for average calculation
		return
	}

	bvh.collectStats(node.Left, depth+1, stats)
	bvh.collectStats(node.Right, depth+1, stats)
}

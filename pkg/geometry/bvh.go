package geometry

import (
	"sort"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/material"
)

// BVHNode represents a node in the Bounding Volume Hierarchy. Children are
// either further nodes or the primitives themselves; a node built from a single
// object holds it as both children.
type BVHNode struct {
	Left        Hittable
	Right       Hittable
	boundingBox core.AABB
	single      bool // Left and Right are the same object
}

// NewBVH constructs a BVH over a copy of objects, leaving the caller's slice untouched.
// The sampler picks the split axis of each node, so a seeded sampler gives a reproducible tree.
// It panics if objects is empty.
func NewBVH(objects []Hittable, sampler core.Sampler) *BVHNode {
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)
	return NewBVHNode(objectsCopy, sampler)
}

// NewBVHNode recursively builds a BVH, reordering objects in place.
// It panics if objects is empty.
func NewBVHNode(objects []Hittable, sampler core.Sampler) *BVHNode {
	var left, right Hittable

	switch len(objects) {
	case 0:
		panic("geometry: cannot build a BVH node from an empty object list")
	case 1:
		left, right = objects[0], objects[0]
	case 2:
		left, right = objects[0], objects[1]
	default:
		axis := randomAxis(sampler)
		sortObjectsByAxis(objects, axis)

		mid := len(objects) / 2
		left = NewBVHNode(objects[:mid], sampler)
		right = NewBVHNode(objects[mid:], sampler)
	}

	return &BVHNode{
		Left:        left,
		Right:       right,
		boundingBox: left.BoundingBox().Union(right.BoundingBox()),
		single:      len(objects) == 1,
	}
}

// randomAxis picks 0, 1 or 2 with equal probability
func randomAxis(sampler core.Sampler) int {
	return min(int(sampler.Get1D()*3), 2)
}

// sortObjectsByAxis sorts objects by the minimum of their bounding box along the axis
func sortObjectsByAxis(objects []Hittable, axis int) {
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].BoundingBox().AxisInterval(axis).Min <
			objects[j].BoundingBox().AxisInterval(axis).Min
	})
}

// Hit tests if a ray intersects any object in the subtree
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if !n.boundingBox.Hit(ray, rayT) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, rayT)

	// The right subtree only has to beat the left's closest hit
	rightT := rayT
	if hitLeft {
		rightT.Max = leftHit.T
	}
	if rightHit, hitRight := n.Right.Hit(ray, rightT); hitRight {
		return rightHit, true
	}

	return leftHit, hitLeft
}

// BoundingBox returns the box enclosing both children
func (n *BVHNode) BoundingBox() core.AABB {
	return n.boundingBox
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes  int // Interior nodes
	Primitives  int // Leaf references, counting a duplicated single child once
	MaxDepth    int // Depth of the deepest primitive, the root's children being at depth 1
	AvgDepth    float64
	Collections int // Nested collections encountered as leaves
}

// Stats walks the tree and returns statistics about its shape
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	n.collectStats(1, &stats)
	if stats.Primitives > 0 {
		stats.AvgDepth /= float64(stats.Primitives)
	}
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++

	children := []Hittable{n.Left}
	if !n.single {
		children = append(children, n.Right)
	}

	for _, child := range children {
		switch c := child.(type) {
		case *BVHNode:
			c.collectStats(depth+1, stats)
		case *Collection:
			stats.Collections++
			stats.addLeaf(depth)
		default:
			stats.addLeaf(depth)
		}
	}
}

func (s *BVHStats) addLeaf(depth int) {
	s.Primitives++
	s.AvgDepth += float64(depth)
	s.MaxDepth = max(s.MaxDepth, depth)
}

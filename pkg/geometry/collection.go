package geometry

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/material"
)

// Collection is a flat list of hittables tested one by one. It is the
// brute-force baseline and the input to BVH construction.
type Collection struct {
	objects []Hittable
	bbox    core.AABB
}

// NewCollection creates a collection holding the given objects
func NewCollection(objects ...Hittable) *Collection {
	c := &Collection{bbox: core.EmptyAABB}
	for _, object := range objects {
		c.Add(object)
	}
	return c
}

// Add appends an object and grows the bounding box to cover it
func (c *Collection) Add(object Hittable) {
	if len(c.objects) == 0 {
		c.bbox = object.BoundingBox()
	} else {
		c.bbox = c.bbox.Union(object.BoundingBox())
	}
	c.objects = append(c.objects, object)
}

// Objects returns the collection's members
func (c *Collection) Objects() []Hittable {
	return c.objects
}

// Len returns the number of members
func (c *Collection) Len() int {
	return len(c.objects)
}

// Hit returns the closest hit among all members
func (c *Collection) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := rayT.Max

	for _, object := range c.objects {
		if hit, isHit := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all members' boxes
func (c *Collection) BoundingBox() core.AABB {
	if len(c.objects) == 0 {
		return core.EmptyAABB
	}
	return c.bbox
}

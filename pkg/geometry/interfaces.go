package geometry

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/material"
)

// Hittable is anything a ray can be intersected with: a *Sphere, a *Collection
// or a *BVHNode. Hittables are immutable once built and safe for concurrent reads.
type Hittable interface {
	// Hit returns the closest intersection with parameter t strictly inside rayT
	Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)
	// BoundingBox returns a box enclosing the object at every ray time
	BoundingBox() core.AABB
}

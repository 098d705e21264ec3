package geometry

import (
	"math"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/material"
)

// Sphere represents a sphere shape. A moving sphere travels linearly from its
// center at time 0 to its center at time 1.
type Sphere struct {
	Center   core.Ray // Center at time 0 and displacement until time 1
	Radius   float64
	Material material.Material
	bbox     core.AABB
}

// NewSphere creates a new stationary sphere. Negative radii are clamped to zero.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	radius = math.Max(0, radius)
	return &Sphere{
		Center:   core.NewRay(center, core.Vec3{}),
		Radius:   radius,
		Material: mat,
		bbox:     sphereBox(center, radius),
	}
}

// NewMovingSphere creates a sphere centered at center0 at time 0 and center1 at time 1
func NewMovingSphere(center0, center1 core.Vec3, radius float64, mat material.Material) *Sphere {
	radius = math.Max(0, radius)
	return &Sphere{
		Center:   core.NewRay(center0, center1.Subtract(center0)),
		Radius:   radius,
		Material: mat,
		bbox:     sphereBox(center0, radius).Union(sphereBox(center1, radius)),
	}
}

func sphereBox(center core.Vec3, radius float64) core.AABB {
	r := core.NewVec3(radius, radius, radius)
	return core.NewAABBFromPoints(center.Subtract(r), center.Add(r))
}

// CenterAt returns the sphere's center at the given ray time
func (s *Sphere) CenterAt(time float64) core.Vec3 {
	return s.Center.At(time)
}

// IsMoving reports whether the sphere changes position over the shutter interval
func (s *Sphere) IsMoving() bool {
	return !s.Center.Direction.Equals(core.Vec3{})
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	center := s.CenterAt(ray.Time)
	oc := center.Subtract(ray.Origin)

	// Half-b form of the quadratic: a t² - 2h t + c = 0.
	// c and the discriminant use fused multiply-adds.
	a := ray.Direction.LengthSquared()
	h := oc.Dot(ray.Direction)
	c := math.FMA(-s.Radius, s.Radius, oc.LengthSquared())

	discriminant := math.FMA(h, h, -(a * c))
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hitRecord.Point.Subtract(center).Divide(s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

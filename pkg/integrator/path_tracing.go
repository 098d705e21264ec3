package integrator

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
)

// PathTracingIntegrator implements unidirectional path tracing: every hit asks
// the material for one scattered ray and multiplies its attenuation into the
// color found along that ray.
type PathTracingIntegrator struct {
	Sky SkyGradient
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(sky SkyGradient) *PathTracingIntegrator {
	return &PathTracingIntegrator{Sky: sky}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, hitRange())
	if !isHit {
		return pt.Sky.Color(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, world, depth-1, sampler))
}

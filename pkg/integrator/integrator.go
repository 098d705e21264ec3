package integrator

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
)

// HitEpsilon is the smallest ray parameter accepted as a hit. Starting above zero
// keeps a scattered ray from re-hitting the surface it just left.
const HitEpsilon = 0.001

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color carried back along ray. depth is the remaining
	// bounce budget; a depth of zero contributes no light.
	RayColor(ray core.Ray, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3
}

// SkyGradient is the background seen by rays that escape the scene. It blends
// linearly from Bottom to Top with the ray direction's vertical component.
type SkyGradient struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// DefaultSky returns the white-to-blue sky
func DefaultSky() SkyGradient {
	return SkyGradient{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Color returns the background color for a ray that hit nothing
func (s SkyGradient) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	a := 0.5 * (unitDirection.Y + 1.0)
	return s.Bottom.Multiply(1.0 - a).Add(s.Top.Multiply(a))
}

// hitRange is the search interval for every trace: [HitEpsilon, +Inf)
func hitRange() core.Interval {
	return core.NewInterval(HitEpsilon, core.UniverseInterval.Max)
}

package integrator

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
)

// NormalIntegrator shades each hit by its surface normal, mapping components
// from [-1,1] to [0,1]. Materials are ignored and rays never bounce, which
// makes it useful for checking geometry and camera setup.
type NormalIntegrator struct {
	Sky SkyGradient
}

// NewNormalIntegrator creates a new normal-shading integrator
func NewNormalIntegrator(sky SkyGradient) *NormalIntegrator {
	return &NormalIntegrator{Sky: sky}
}

// RayColor returns 0.5*(normal+1) at the closest hit, or the sky on a miss
func (ni *NormalIntegrator) RayColor(ray core.Ray, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, hitRange())
	if !isHit {
		return ni.Sky.Color(ray)
	}

	return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}

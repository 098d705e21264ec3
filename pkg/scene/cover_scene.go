package scene

import (
	"github.com/samber/lo"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/integrator"
	"github.com/df07/go-bvh-raytracer/pkg/material"
	"github.com/df07/go-bvh-raytracer/pkg/renderer"
)

// coverGrid holds the cell coordinates -11..10 of the small-sphere field
var coverGrid = lo.RangeFrom(-11, 22)

// coverClearing is kept free of small spheres so the big metal sphere stays visible
var coverClearing = core.NewVec3(4, 0.2, 0)

// NewCoverScene creates a field of small random spheres around three large
// ones (glass, diffuse, metal). The sampler decides sphere placement and
// materials, so a seeded sampler gives the same field every time.
func NewCoverScene(sampler core.Sampler, cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:          core.NewVec3(13, 2, 3),
		LookAt:          core.NewVec3(0, 0, 0),
		Up:              core.NewVec3(0, 1, 0),
		Width:           1200,
		AspectRatio:     16.0 / 9.0,
		VFov:            20.0,
		SamplesPerPixel: 500,
		MaxDepth:        50,
		DefocusAngle:    0.6,
		FocusDistance:   10.0,
	}

	s := &Scene{
		Name:         "cover",
		CameraConfig: applyOverrides(defaultCameraConfig, cameraOverrides),
		Integrator:   integrator.NewPathTracingIntegrator(integrator.DefaultSky()),
	}
	s.Shapes = append(s.Shapes, sphereField(sampler, false)...)
	return s
}

// NewBouncingSpheresScene is the cover scene with every diffuse sphere moving
// upward during the shutter interval
func NewBouncingSpheresScene(sampler core.Sampler, cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:          core.NewVec3(13, 2, 3),
		LookAt:          core.NewVec3(0, 0, 0),
		Up:              core.NewVec3(0, 1, 0),
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		VFov:            20.0,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		DefocusAngle:    0.6,
		FocusDistance:   10.0,
		MotionBlur:      true,
	}

	return &Scene{
		Name:         "bouncing-spheres",
		CameraConfig: applyOverrides(defaultCameraConfig, cameraOverrides),
		Shapes:       sphereField(sampler, true),
		Integrator:   integrator.NewPathTracingIntegrator(integrator.DefaultSky()),
	}
}

// sphereField builds the ground, the small random spheres and the three large spheres
func sphereField(sampler core.Sampler, bouncing bool) []geometry.Hittable {
	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	shapes := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
	}

	for _, a := range coverGrid {
		for _, b := range coverGrid {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				0.2,
				float64(b)+0.9*sampler.Get1D(),
			)

			if center.Subtract(coverClearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := randomColor(sampler).MultiplyVec(randomColor(sampler))
				mat := material.NewLambertian(albedo)
				if bouncing {
					center2 := center.Add(core.NewVec3(0, randomRange(sampler, 0, 0.5), 0))
					shapes = append(shapes, geometry.NewMovingSphere(center, center2, 0.2, mat))
				} else {
					shapes = append(shapes, geometry.NewSphere(center, 0.2, mat))
				}
			case chooseMat < 0.95:
				albedo := randomColorRange(sampler, 0.5, 1)
				fuzz := randomRange(sampler, 0, 0.5)
				shapes = append(shapes, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				shapes = append(shapes, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	return append(shapes,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)
}

// randomRange returns a value in [low, high)
func randomRange(sampler core.Sampler, low, high float64) float64 {
	return low + (high-low)*sampler.Get1D()
}

// randomColor returns a color with each channel in [0, 1)
func randomColor(sampler core.Sampler) core.Vec3 {
	return sampler.Get3D()
}

// randomColorRange returns a color with each channel in [low, high)
func randomColorRange(sampler core.Sampler, low, high float64) core.Vec3 {
	c := sampler.Get3D()
	return core.NewVec3(
		low+(high-low)*c.X,
		low+(high-low)*c.Y,
		low+(high-low)*c.Z,
	)
}

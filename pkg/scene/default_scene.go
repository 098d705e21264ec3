package scene

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/integrator"
	"github.com/df07/go-bvh-raytracer/pkg/material"
	"github.com/df07/go-bvh-raytracer/pkg/renderer"
)

// NewNormalsScene creates the preview scene: a small sphere resting on a huge
// ground sphere, shaded by surface normal
func NewNormalsScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:          core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		VFov:            90.0,
		SamplesPerPixel: 10,
		MaxDepth:        10,
	}

	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	return &Scene{
		Name:         "normals",
		CameraConfig: applyOverrides(defaultCameraConfig, cameraOverrides),
		Shapes: []geometry.Hittable{
			geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray),
			geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, gray),
		},
		Integrator: integrator.NewNormalIntegrator(integrator.DefaultSky()),
	}
}

// NewDefaultScene creates three spheres of different materials on a ground
// sphere: diffuse in the middle, a hollow glass bubble on the left and fuzzy
// gold on the right, viewed from above with a shallow depth of field
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:          core.NewVec3(-2, 2, 1), // Up and to the left
		LookAt:          core.NewVec3(0, 0, -1), // Center sphere
		Up:              core.NewVec3(0, 1, 0),
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		VFov:            20.0,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		DefocusAngle:    10.0,
		FocusDistance:   3.4,
	}

	groundMaterial := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	centerMaterial := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	airBubble := material.NewDielectric(1.0 / 1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	return &Scene{
		Name:         "default",
		CameraConfig: applyOverrides(defaultCameraConfig, cameraOverrides),
		Shapes: []geometry.Hittable{
			geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, groundMaterial),
			geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, centerMaterial),
			geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
			geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4, airBubble),
			geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
		},
		Integrator: integrator.NewPathTracingIntegrator(integrator.DefaultSky()),
	}
}

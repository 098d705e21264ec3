package renderer

import (
	"fmt"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/integrator"
	"github.com/df07/go-bvh-raytracer/pkg/material"
)

// InspectResult describes what the center ray of one pixel hits
type InspectResult struct {
	X            int                    `json:"x"`
	Y            int                    `json:"y"`
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// Inspect traces the un-jittered ray through the center of pixel (x, y) at
// time 0 and reports the closest hit in world
func Inspect(camera *Camera, world geometry.Hittable, x, y int) InspectResult {
	result := InspectResult{X: x, Y: y}

	ray := camera.CenterRay(x, y)
	hit, isHit := world.Hit(ray, core.NewInterval(integrator.HitEpsilon, core.UniverseInterval.Max))
	if !isHit {
		return result
	}

	result.Hit = true
	result.Point = toArray(hit.Point)
	result.Normal = toArray(hit.Normal)
	result.Distance = hit.T * ray.Direction.Length()
	result.FrontFace = hit.FrontFace
	result.MaterialType, result.Properties = describeMaterial(hit.Material)
	return result
}

// describeMaterial extracts the material kind and its parameters
func describeMaterial(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["albedo"] = toArray(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = toArray(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		properties["fuzzness"] = m.Fuzzness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		return "dielectric", properties

	case nil:
		return "none", properties

	default:
		return fmt.Sprintf("%T", mat), properties
	}
}

func toArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// hexColor formats a linear color the way it would be written to the image
func hexColor(c core.Vec3) string {
	rgba := ToRGBA(c)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

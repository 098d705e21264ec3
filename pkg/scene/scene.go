package scene

import (
	"github.com/pkg/errors"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/integrator"
	"github.com/df07/go-bvh-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	CameraConfig renderer.CameraConfig
	Shapes       []geometry.Hittable   // Objects in the scene
	Integrator   integrator.Integrator // Light transport used to shade camera rays
	World        geometry.Hittable     // Set by Preprocess: a BVH or a flat collection over Shapes
	BVHStats     *geometry.BVHStats    // Set by Preprocess when a BVH was built
}

// Preprocess builds the acceleration structure over the scene's shapes. With
// useBVH false the world is a flat collection tested object by object.
func (s *Scene) Preprocess(useBVH bool, sampler core.Sampler, logger core.Logger) error {
	if s.GetPrimitiveCount() == 0 {
		return errors.Errorf("scene %q has no shapes", s.Name)
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	if !useBVH {
		s.World = geometry.NewCollection(s.Shapes...)
		s.BVHStats = nil
		logger.Infof("Using flat collection of %d objects", s.GetPrimitiveCount())
		return nil
	}

	done := core.TimeScope(logger, "BVH::new")
	bvh := geometry.NewBVH(s.Shapes, sampler)
	done()

	stats := bvh.Stats()
	logger.Infof("BVH over %d objects: %d nodes, %d primitives, max depth %d, avg depth %.2f",
		s.GetPrimitiveCount(), stats.TotalNodes, stats.Primitives, stats.MaxDepth, stats.AvgDepth)

	s.World = bvh
	s.BVHStats = &stats
	return nil
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// applyOverrides merges the first override, if any, into the scene's defaults
func applyOverrides(defaults renderer.CameraConfig, overrides []renderer.CameraConfig) renderer.CameraConfig {
	if len(overrides) == 0 {
		return defaults
	}
	return renderer.MergeCameraConfig(defaults, overrides[0])
}

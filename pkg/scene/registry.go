package scene

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/renderer"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type sceneEntry struct {
	description string
	build       func(sampler core.Sampler, overrides ...renderer.CameraConfig) *Scene
}

var builtinScenes = map[string]sceneEntry{
	"normals": {
		description: "Two spheres shaded by surface normal",
		build: func(_ core.Sampler, overrides ...renderer.CameraConfig) *Scene {
			return NewNormalsScene(overrides...)
		},
	},
	"default": {
		description: "Diffuse, hollow glass and fuzzy metal spheres with depth of field",
		build: func(_ core.Sampler, overrides ...renderer.CameraConfig) *Scene {
			return NewDefaultScene(overrides...)
		},
	},
	"cover": {
		description: "Field of random small spheres around three large ones",
		build:       NewCoverScene,
	},
	"bouncing-spheres": {
		description: "Cover scene with moving diffuse spheres and motion blur",
		build:       NewBouncingSpheresScene,
	},
}

// NewScene builds the named scene. Random scene content is drawn from a
// generator seeded with seed.
func NewScene(name string, seed int64, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	entry, ok := builtinScenes[name]
	if !ok {
		return nil, errors.Errorf("unknown scene %q (available: %v)", name, SceneNames())
	}
	return entry.build(core.NewSeededSampler(seed), cameraOverrides...), nil
}

// SceneNames returns the names of all built-in scenes in sorted order
func SceneNames() []string {
	names := lo.Keys(builtinScenes)
	sort.Strings(names)
	return names
}

// ListScenes returns every built-in scene sorted by name
func ListScenes() []SceneInfo {
	return lo.Map(SceneNames(), func(name string, _ int) SceneInfo {
		return SceneInfo{Name: name, Description: builtinScenes[name].description}
	})
}
